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

// Package guest accounts memory for a single worker process against the
// host-wide budget. A worker that crosses its limit fails its query
// instead of taking the whole process down.
package guest

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
)

type Mmu struct {
	size  int64
	Limit int64
	Mmu   *host.Mmu
}

func New(limit int64, m *host.Mmu) *Mmu {
	return &Mmu{Limit: limit, Mmu: m}
}

func (m *Mmu) Size() int64 {
	return m.size
}

func (m *Mmu) HostSize() int64 {
	return m.Mmu.Size()
}

func (m *Mmu) Alloc(size int64) error {
	if m.size+size > m.Limit {
		return moerr.NewOutOfRange("memory limit %v exceeded by alloc of %v bytes", m.Limit, size)
	}
	if hsize := m.Mmu.Size(); hsize+size > m.Mmu.Limit {
		return moerr.NewOutOfRange("host memory limit %v exceeded by alloc of %v bytes", m.Mmu.Limit, size)
	}
	m.size += size
	m.Mmu.Alloc(size)
	return nil
}

// Free releases size bytes. Batches routinely travel between worker and
// merge processes, so the bytes may have been charged to another guest;
// the host total is always repaid in full, while the local total only
// clamps at zero.
func (m *Mmu) Free(size int64) {
	if size == 0 {
		return
	}
	m.Mmu.Free(size)
	m.size -= size
	if m.size < 0 {
		m.size = 0
	}
}
