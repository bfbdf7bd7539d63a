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

// Package register recycles scratch vectors inside one pipeline so the
// expression kernels do not allocate per batch.
package register

import (
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

// Get returns a vector whose slab holds at least size payload bytes,
// reusing a parked scratch vector when one fits.
func Get(proc *process.Process, size int64, typ types.Type) (*vector.Vector, error) {
	for i, t := range proc.Reg.Ts {
		v := t.(*vector.Vector)
		if int64(cap(v.Data))-mempool.CountSize >= size {
			proc.Reg.Ts[i] = proc.Reg.Ts[len(proc.Reg.Ts)-1]
			proc.Reg.Ts = proc.Reg.Ts[:len(proc.Reg.Ts)-1]
			vec := vector.New(typ)
			vec.Data = v.Data[:mempool.CountSize+size]
			copy(vec.Data, mempool.OneCount)
			return vec, nil
		}
	}
	data, err := proc.Alloc(size)
	if err != nil {
		return nil, err
	}
	vec := vector.New(typ)
	vec.Data = data
	return vec, nil
}

// Put parks a scratch vector for reuse.
func Put(proc *process.Process, vec *vector.Vector) {
	proc.Reg.Ts = append(proc.Reg.Ts, vec)
}

// FreeRegisters releases every parked vector.
func FreeRegisters(proc *process.Process) {
	for _, t := range proc.Reg.Ts {
		vec := t.(*vector.Vector)
		vec.Free(proc)
	}
	proc.Reg.Ts = proc.Reg.Ts[:0]
}
