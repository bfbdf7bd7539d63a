// Copyright 2021 The FuseQuery Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package process holds the per-worker execution context. A process owns
// its allocator, its scratch registers and the wait channels that feed a
// merge pipeline; workers never share a process.
package process

import (
	"context"

	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/guest"
)

const (
	// DefaultBatchRows is the row ceiling of a batch produced by a
	// reader. Sized to keep a handful of int64 columns inside L2 while
	// amortizing per-batch overhead.
	DefaultBatchRows = 8192
)

// WaitRegister is the channel over which a source pipeline hands its
// partition-local result to the merge pipeline. A nil message marks the
// end of the producer's stream.
type WaitRegister struct {
	Ch chan interface{}
}

// Register carries operator-to-operator state inside one pipeline.
type Register struct {
	// Ax holds the batch produced by the previous operator.
	Ax interface{}
	// Ts caches free vectors for reuse.
	Ts []interface{}
	// Ws are the producer channels drained by merge operators.
	Ws []*WaitRegister
}

type Limitation struct {
	// Size caps the memory of this process.
	Size int64
	// BatchRows caps the rows of a single batch.
	BatchRows int64
	// PartitionRows caps the rows assigned to one partition.
	PartitionRows int64
}

type Process struct {
	Id     string
	Reg    Register
	Lim    Limitation
	Gm     *guest.Mmu
	Mp     *mempool.Mempool
	Ctx    context.Context
	Cancel context.CancelFunc
}

func New(gm *guest.Mmu, mp *mempool.Mempool) *Process {
	ctx, cancel := context.WithCancel(context.Background())
	return &Process{
		Gm:     gm,
		Mp:     mp,
		Ctx:    ctx,
		Cancel: cancel,
	}
}

// NewChild derives a worker process sharing the parent's guest limit and
// cancellation scope but owning its registers and pool.
func (p *Process) NewChild(id string) *Process {
	gm := guest.New(p.Gm.Limit, p.Gm.Mmu)
	proc := &Process{
		Id:     id,
		Gm:     gm,
		Mp:     mempool.New(),
		Lim:    p.Lim,
		Ctx:    p.Ctx,
		Cancel: p.Cancel,
	}
	return proc
}

// Alloc returns a slab holding size payload bytes after the reference
// count header. The payload starts at mempool.CountSize.
func (p *Process) Alloc(size int64) ([]byte, error) {
	data := p.Mp.Alloc(int(size))
	if err := p.Gm.Alloc(int64(cap(data))); err != nil {
		p.Mp.Free(data)
		return nil, err
	}
	return data, nil
}

// Free drops one reference to the slab, releasing its accounting when the
// last holder lets go.
func (p *Process) Free(data []byte) {
	if data == nil {
		return
	}
	if p.Mp.Free(data) {
		p.Gm.Free(int64(cap(data)))
	}
}

func (p *Process) Size() int64 {
	return p.Gm.Size()
}

func (p *Process) HostSize() int64 {
	return p.Gm.HostSize()
}
