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

// The maximum over zero non-NULL rows is NULL.
package max

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	vmax "github.com/datafusedev/fuse-query/pkg/vectorize/max"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type int64Max struct {
	cnt int64
	v   int64
	typ types.Type
}

func NewInt64(typ types.Type) aggregation.Aggregation {
	return &int64Max{typ: typ}
}

func (a *int64Max) Reset() {
	a.cnt = 0
	a.v = 0
}

func (a *int64Max) Type() types.Type {
	return a.typ
}

func (a *int64Max) Dup() aggregation.Aggregation {
	return &int64Max{typ: a.typ}
}

func (a *int64Max) Fill(sels []int64, vec *vector.Vector) error {
	vs := vec.Col.([]int64)
	switch {
	case len(sels) > 0:
		if vec.Nsp.Any() {
			for _, sel := range sels {
				if !vec.Nsp.Contains(uint64(sel)) {
					a.set(vs[sel])
				}
			}
			return nil
		}
		a.set(vmax.Int64MaxSels(vs, sels))
		a.cnt += int64(len(sels)) - 1
	case vec.Nsp.Any():
		for i, v := range vs {
			if !vec.Nsp.Contains(uint64(i)) {
				a.set(v)
			}
		}
	default:
		if len(vs) == 0 {
			return nil
		}
		a.set(vmax.Int64Max(vs))
		a.cnt += int64(len(vs)) - 1
	}
	return nil
}

func (a *int64Max) set(v int64) {
	if a.cnt == 0 || v > a.v {
		a.v = v
	}
	a.cnt++
}

func (a *int64Max) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*int64Max)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	if b.cnt > 0 {
		if a.cnt == 0 || b.v > a.v {
			a.v = b.v
		}
		a.cnt += b.cnt
	}
	return nil
}

func (a *int64Max) Eval() interface{} {
	if a.cnt == 0 {
		return nil
	}
	return []int64{a.v}
}

func (a *int64Max) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeInt64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.v
	vec := vector.New(a.typ)
	if a.cnt == 0 {
		vs[0] = 0
		vec.Nsp.Add(0)
	}
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}

type uint64Max struct {
	cnt int64
	v   uint64
	typ types.Type
}

func NewUint64(typ types.Type) aggregation.Aggregation {
	return &uint64Max{typ: typ}
}

func (a *uint64Max) Reset() {
	a.cnt = 0
	a.v = 0
}

func (a *uint64Max) Type() types.Type {
	return a.typ
}

func (a *uint64Max) Dup() aggregation.Aggregation {
	return &uint64Max{typ: a.typ}
}

func (a *uint64Max) Fill(sels []int64, vec *vector.Vector) error {
	vs := vec.Col.([]uint64)
	switch {
	case len(sels) > 0:
		if vec.Nsp.Any() {
			for _, sel := range sels {
				if !vec.Nsp.Contains(uint64(sel)) {
					a.set(vs[sel])
				}
			}
			return nil
		}
		a.set(vmax.Uint64MaxSels(vs, sels))
		a.cnt += int64(len(sels)) - 1
	case vec.Nsp.Any():
		for i, v := range vs {
			if !vec.Nsp.Contains(uint64(i)) {
				a.set(v)
			}
		}
	default:
		if len(vs) == 0 {
			return nil
		}
		a.set(vmax.Uint64Max(vs))
		a.cnt += int64(len(vs)) - 1
	}
	return nil
}

func (a *uint64Max) set(v uint64) {
	if a.cnt == 0 || v > a.v {
		a.v = v
	}
	a.cnt++
}

func (a *uint64Max) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*uint64Max)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	if b.cnt > 0 {
		if a.cnt == 0 || b.v > a.v {
			a.v = b.v
		}
		a.cnt += b.cnt
	}
	return nil
}

func (a *uint64Max) Eval() interface{} {
	if a.cnt == 0 {
		return nil
	}
	return []uint64{a.v}
}

func (a *uint64Max) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeUint64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.v
	vec := vector.New(a.typ)
	if a.cnt == 0 {
		vs[0] = 0
		vec.Nsp.Add(0)
	}
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}

type float64Max struct {
	cnt int64
	v   float64
	typ types.Type
}

func NewFloat64(typ types.Type) aggregation.Aggregation {
	return &float64Max{typ: typ}
}

func (a *float64Max) Reset() {
	a.cnt = 0
	a.v = 0
}

func (a *float64Max) Type() types.Type {
	return a.typ
}

func (a *float64Max) Dup() aggregation.Aggregation {
	return &float64Max{typ: a.typ}
}

func (a *float64Max) Fill(sels []int64, vec *vector.Vector) error {
	vs := vec.Col.([]float64)
	switch {
	case len(sels) > 0:
		if vec.Nsp.Any() {
			for _, sel := range sels {
				if !vec.Nsp.Contains(uint64(sel)) {
					a.set(vs[sel])
				}
			}
			return nil
		}
		a.set(vmax.Float64MaxSels(vs, sels))
		a.cnt += int64(len(sels)) - 1
	case vec.Nsp.Any():
		for i, v := range vs {
			if !vec.Nsp.Contains(uint64(i)) {
				a.set(v)
			}
		}
	default:
		if len(vs) == 0 {
			return nil
		}
		a.set(vmax.Float64Max(vs))
		a.cnt += int64(len(vs)) - 1
	}
	return nil
}

func (a *float64Max) set(v float64) {
	if a.cnt == 0 || v > a.v {
		a.v = v
	}
	a.cnt++
}

func (a *float64Max) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*float64Max)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	if b.cnt > 0 {
		if a.cnt == 0 || b.v > a.v {
			a.v = b.v
		}
		a.cnt += b.cnt
	}
	return nil
}

func (a *float64Max) Eval() interface{} {
	if a.cnt == 0 {
		return nil
	}
	return []float64{a.v}
}

func (a *float64Max) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeFloat64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.v
	vec := vector.New(a.typ)
	if a.cnt == 0 {
		vs[0] = 0
		vec.Nsp.Add(0)
	}
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}
