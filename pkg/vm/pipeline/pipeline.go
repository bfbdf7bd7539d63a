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

// Package pipeline drives an instruction list to completion. A source
// pipeline pulls batches from one partition reader; a merge pipeline
// drains the wait registers its producers feed, in partition order, so
// results are reproducible run to run.
package pipeline

import (
	"bytes"

	"github.com/datafusedev/fuse-query/pkg/vm"
	"github.com/datafusedev/fuse-query/pkg/vm/engine"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

type Pipeline struct {
	cs    []uint64
	attrs []string
	ins   vm.Instructions
}

func New(cs []uint64, attrs []string, ins vm.Instructions) *Pipeline {
	return &Pipeline{
		cs:    cs,
		attrs: attrs,
		ins:   ins,
	}
}

func (p *Pipeline) String() string {
	var buf bytes.Buffer

	buf.WriteString("scan -> ")
	vm.String(p.ins, &buf)
	return buf.String()
}

// Run exhausts the reader through the instruction list. After the reader
// runs dry the pass is repeated with a nil batch until the tail operator
// reports the end, which lets buffering operators flush.
func (p *Pipeline) Run(r engine.Reader, proc *process.Process) (bool, error) {
	defer register.FreeRegisters(proc)
	if err := vm.Prepare(p.ins, proc); err != nil {
		return false, err
	}
	for {
		if proc.Ctx.Err() != nil {
			return true, nil
		}
		bat, err := r.Read(proc, p.cs, p.attrs)
		if err != nil {
			return false, err
		}
		// A typed nil in the register would defeat the operators' end-of
		// -stream check; the register holds either a live batch or nil.
		if bat == nil {
			proc.Reg.Ax = nil
		} else {
			if err := bat.Check(); err != nil {
				bat.Free(proc)
				return false, err
			}
			proc.Reg.Ax = bat
		}
		end, err := vm.Run(p.ins, proc)
		if end || err != nil {
			return end, err
		}
	}
}

// RunMerge consumes the producer channels one after another in partition
// index order, then flushes. A nil message retires its producer.
func (p *Pipeline) RunMerge(proc *process.Process) (bool, error) {
	defer register.FreeRegisters(proc)
	if err := vm.Prepare(p.ins, proc); err != nil {
		return false, err
	}
	for _, reg := range proc.Reg.Ws {
		for {
			var v interface{}
			select {
			case <-proc.Ctx.Done():
				// A producer failed or the query was abandoned; the
				// caller inspects the worker errors.
				return true, nil
			case v = <-reg.Ch:
			}
			if v == nil {
				break
			}
			proc.Reg.Ax = v
			end, err := vm.Run(p.ins, proc)
			if err != nil {
				return end, err
			}
			if end {
				return true, nil
			}
		}
	}
	for {
		proc.Reg.Ax = nil
		end, err := vm.Run(p.ins, proc)
		if end || err != nil {
			return end, err
		}
	}
}
