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

// The state carries the running sum and count separately; the quotient
// is taken only at finalization, so merging partitions never averages
// averages. The average over zero non-NULL rows is NULL.
package avg

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/vectorize/sum"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type avg struct {
	cnt int64
	sum float64
	typ types.Type
}

func New(typ types.Type) aggregation.Aggregation {
	return &avg{typ: typ}
}

func (a *avg) Reset() {
	a.cnt = 0
	a.sum = 0
}

func (a *avg) Type() types.Type {
	return a.typ
}

func (a *avg) Dup() aggregation.Aggregation {
	return &avg{typ: a.typ}
}

func (a *avg) Fill(sels []int64, vec *vector.Vector) error {
	switch vs := vec.Col.(type) {
	case []int64:
		switch {
		case len(sels) > 0:
			if vec.Nsp.Any() {
				for _, sel := range sels {
					if !vec.Nsp.Contains(uint64(sel)) {
						a.sum += float64(vs[sel])
						a.cnt++
					}
				}
				return nil
			}
			a.sum += float64(sum.Int64SumSels(vs, sels))
			a.cnt += int64(len(sels))
		case vec.Nsp.Any():
			for i, v := range vs {
				if !vec.Nsp.Contains(uint64(i)) {
					a.sum += float64(v)
					a.cnt++
				}
			}
		default:
			a.sum += float64(sum.Int64Sum(vs))
			a.cnt += int64(len(vs))
		}
	case []uint64:
		switch {
		case len(sels) > 0:
			if vec.Nsp.Any() {
				for _, sel := range sels {
					if !vec.Nsp.Contains(uint64(sel)) {
						a.sum += float64(vs[sel])
						a.cnt++
					}
				}
				return nil
			}
			a.sum += float64(sum.Uint64SumSels(vs, sels))
			a.cnt += int64(len(sels))
		case vec.Nsp.Any():
			for i, v := range vs {
				if !vec.Nsp.Contains(uint64(i)) {
					a.sum += float64(v)
					a.cnt++
				}
			}
		default:
			a.sum += float64(sum.Uint64Sum(vs))
			a.cnt += int64(len(vs))
		}
	case []float64:
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
			a.sum += sum.Float64SumSels(vs, sels)
			a.cnt += int64(len(sels))
		case vec.Nsp.Any():
			for i, v := range vs {
				if !vec.Nsp.Contains(uint64(i)) {
					a.sum += v
					a.cnt++
				}
			}
		default:
			a.sum += sum.Float64Sum(vs)
			a.cnt += int64(len(vs))
		}
	default:
		return moerr.NewTypeMismatch("avg on %s vector", vec.Typ)
	}
	return nil
}

func (a *avg) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*avg)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	a.sum += b.sum
	a.cnt += b.cnt
	return nil
}

func (a *avg) Eval() interface{} {
	if a.cnt == 0 {
		return nil
	}
	return []float64{a.sum / float64(a.cnt)}
}

func (a *avg) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeFloat64Slice(data[mempool.CountSize:])[:1]
	vec := vector.New(a.typ)
	if a.cnt == 0 {
		vs[0] = 0
		vec.Nsp.Add(0)
	} else {
		vs[0] = a.sum / float64(a.cnt)
	}
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}
