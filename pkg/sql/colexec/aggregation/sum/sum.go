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

// NULL rows do not contribute to a sum; integer sums wrap on overflow.
package sum

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	vsum "github.com/datafusedev/fuse-query/pkg/vectorize/sum"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type int64Sum struct {
	cnt int64
	sum int64
	typ types.Type
}

func NewInt64(typ types.Type) aggregation.Aggregation {
	return &int64Sum{typ: typ}
}

func (a *int64Sum) Reset() {
	a.cnt = 0
	a.sum = 0
}

func (a *int64Sum) Type() types.Type {
	return a.typ
}

func (a *int64Sum) Dup() aggregation.Aggregation {
	return &int64Sum{typ: a.typ}
}

func (a *int64Sum) Fill(sels []int64, vec *vector.Vector) error {
	vs := vec.Col.([]int64)
	switch {
	case len(sels) > 0:
		if vec.Nsp.Any() {
			for _, sel := range sels {
				if !vec.Nsp.Contains(uint64(sel)) {
					a.sum += vs[sel]
					a.cnt++
				}
			}
			return nil
		}
		a.sum += vsum.Int64SumSels(vs, sels)
		a.cnt += int64(len(sels))
	case vec.Nsp.Any():
		for i, v := range vs {
			if !vec.Nsp.Contains(uint64(i)) {
				a.sum += v
				a.cnt++
			}
		}
	default:
		a.sum += vsum.Int64Sum(vs)
		a.cnt += int64(len(vs))
	}
	return nil
}

func (a *int64Sum) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*int64Sum)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	a.sum += b.sum
	a.cnt += b.cnt
	return nil
}

// The sum over zero rows is zero, not NULL.
func (a *int64Sum) Eval() interface{} {
	return []int64{a.sum}
}

func (a *int64Sum) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeInt64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.sum
	vec := vector.New(a.typ)
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}

type uint64Sum struct {
	cnt int64
	sum uint64
	typ types.Type
}

func NewUint64(typ types.Type) aggregation.Aggregation {
	return &uint64Sum{typ: typ}
}

func (a *uint64Sum) Reset() {
	a.cnt = 0
	a.sum = 0
}

func (a *uint64Sum) Type() types.Type {
	return a.typ
}

func (a *uint64Sum) Dup() aggregation.Aggregation {
	return &uint64Sum{typ: a.typ}
}

func (a *uint64Sum) Fill(sels []int64, vec *vector.Vector) error {
	vs := vec.Col.([]uint64)
	switch {
	case len(sels) > 0:
		if vec.Nsp.Any() {
			for _, sel := range sels {
				if !vec.Nsp.Contains(uint64(sel)) {
					a.sum += vs[sel]
					a.cnt++
				}
			}
			return nil
		}
		a.sum += vsum.Uint64SumSels(vs, sels)
		a.cnt += int64(len(sels))
	case vec.Nsp.Any():
		for i, v := range vs {
			if !vec.Nsp.Contains(uint64(i)) {
				a.sum += v
				a.cnt++
			}
		}
	default:
		a.sum += vsum.Uint64Sum(vs)
		a.cnt += int64(len(vs))
	}
	return nil
}

func (a *uint64Sum) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*uint64Sum)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	a.sum += b.sum
	a.cnt += b.cnt
	return nil
}

// The sum over zero rows is zero, not NULL.
func (a *uint64Sum) Eval() interface{} {
	return []uint64{a.sum}
}

func (a *uint64Sum) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeUint64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.sum
	vec := vector.New(a.typ)
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}

type float64Sum struct {
	cnt int64
	sum float64
	typ types.Type
}

func NewFloat64(typ types.Type) aggregation.Aggregation {
	return &float64Sum{typ: typ}
}

func (a *float64Sum) Reset() {
	a.cnt = 0
	a.sum = 0
}

func (a *float64Sum) Type() types.Type {
	return a.typ
}

func (a *float64Sum) Dup() aggregation.Aggregation {
	return &float64Sum{typ: a.typ}
}

func (a *float64Sum) Fill(sels []int64, vec *vector.Vector) error {
	vs := vec.Col.([]float64)
	switch {
	case len(sels) > 0:
		if vec.Nsp.Any() {
			for _, sel := range sels {
				if !vec.Nsp.Contains(uint64(sel)) {
					a.sum += vs[sel]
					a.cnt++
				}
			}
			return nil
		}
		a.sum += vsum.Float64SumSels(vs, sels)
		a.cnt += int64(len(sels))
	case vec.Nsp.Any():
		for i, v := range vs {
			if !vec.Nsp.Contains(uint64(i)) {
				a.sum += v
				a.cnt++
			}
		}
	default:
		a.sum += vsum.Float64Sum(vs)
		a.cnt += int64(len(vs))
	}
	return nil
}

func (a *float64Sum) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*float64Sum)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	a.sum += b.sum
	a.cnt += b.cnt
	return nil
}

// The sum over zero rows is zero, not NULL.
func (a *float64Sum) Eval() interface{} {
	return []float64{a.sum}
}

func (a *float64Sum) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeFloat64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.sum
	vec := vector.New(a.typ)
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}
