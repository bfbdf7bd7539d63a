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

package overload

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/nulls"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/vectorize/div"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

func init() {
	BinOps[Div] = []*BinOp{
		{
			LeftType:   types.T_int64,
			RightType:  types.T_int64,
			ReturnType: types.T_int64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]int64), rv.Col.([]int64)
				for _, y := range rvs {
					if y == 0 {
						return nil, moerr.NewDivByZero()
					}
				}
				switch {
				case lc && rc:
					vec := vector.New(lv.Typ)
					vec.SetCol([]int64{lvs[0] / rvs[0]})
					return vec, nil
				case lc:
					if rv.Ref == 0 {
						div.Int64DivScalar(lvs[0], rvs, rvs)
						return rv, nil
					}
					vec, err := register.Get(proc, int64(len(rvs))*8, rv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(rvs)]
					vec.Nsp.Set(rv.Nsp)
					vec.SetCol(div.Int64DivScalar(lvs[0], rvs, rs))
					return vec, nil
				case rc:
					if lv.Ref == 0 {
						div.Int64DivByScalar(rvs[0], lvs, lvs)
						return lv, nil
					}
					vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
					vec.Nsp.Set(lv.Nsp)
					vec.SetCol(div.Int64DivByScalar(rvs[0], lvs, rs))
					return vec, nil
				}
				if lv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, lv.Nsp)
					div.Int64Div(lvs, rvs, lvs)
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return lv, nil
				}
				if rv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, rv.Nsp)
					div.Int64Div(lvs, rvs, rvs)
					return rv, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
				nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
				vec.SetCol(div.Int64Div(lvs, rvs, rs))
				return vec, nil
			},
		},
		{
			LeftType:   types.T_uint64,
			RightType:  types.T_uint64,
			ReturnType: types.T_uint64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]uint64), rv.Col.([]uint64)
				for _, y := range rvs {
					if y == 0 {
						return nil, moerr.NewDivByZero()
					}
				}
				switch {
				case lc && rc:
					vec := vector.New(lv.Typ)
					vec.SetCol([]uint64{lvs[0] / rvs[0]})
					return vec, nil
				case lc:
					if rv.Ref == 0 {
						div.Uint64DivScalar(lvs[0], rvs, rvs)
						return rv, nil
					}
					vec, err := register.Get(proc, int64(len(rvs))*8, rv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeUint64Slice(vec.Data[mempool.CountSize:])[:len(rvs)]
					vec.Nsp.Set(rv.Nsp)
					vec.SetCol(div.Uint64DivScalar(lvs[0], rvs, rs))
					return vec, nil
				case rc:
					if lv.Ref == 0 {
						div.Uint64DivByScalar(rvs[0], lvs, lvs)
						return lv, nil
					}
					vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeUint64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
					vec.Nsp.Set(lv.Nsp)
					vec.SetCol(div.Uint64DivByScalar(rvs[0], lvs, rs))
					return vec, nil
				}
				if lv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, lv.Nsp)
					div.Uint64Div(lvs, rvs, lvs)
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return lv, nil
				}
				if rv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, rv.Nsp)
					div.Uint64Div(lvs, rvs, rvs)
					return rv, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeUint64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
				nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
				vec.SetCol(div.Uint64Div(lvs, rvs, rs))
				return vec, nil
			},
		},
		{
			LeftType:   types.T_float64,
			RightType:  types.T_float64,
			ReturnType: types.T_float64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]float64), rv.Col.([]float64)
				switch {
				case lc && rc:
					vec := vector.New(lv.Typ)
					vec.SetCol([]float64{lvs[0] / rvs[0]})
					return vec, nil
				case lc:
					if rv.Ref == 0 {
						div.Float64DivScalar(lvs[0], rvs, rvs)
						return rv, nil
					}
					vec, err := register.Get(proc, int64(len(rvs))*8, rv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(rvs)]
					vec.Nsp.Set(rv.Nsp)
					vec.SetCol(div.Float64DivScalar(lvs[0], rvs, rs))
					return vec, nil
				case rc:
					if lv.Ref == 0 {
						div.Float64DivByScalar(rvs[0], lvs, lvs)
						return lv, nil
					}
					vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
					vec.Nsp.Set(lv.Nsp)
					vec.SetCol(div.Float64DivByScalar(rvs[0], lvs, rs))
					return vec, nil
				}
				if lv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, lv.Nsp)
					div.Float64Div(lvs, rvs, lvs)
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return lv, nil
				}
				if rv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, rv.Nsp)
					div.Float64Div(lvs, rvs, rvs)
					return rv, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
				nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
				vec.SetCol(div.Float64Div(lvs, rvs, rs))
				return vec, nil
			},
		},
		// Mixed-width division promotes to float64 and follows the float
		// policy throughout, zero divisors included. This is what makes a
		// finalized sum (unsigned) divisible by a finalized count (signed).
		{
			LeftType:   types.T_uint64,
			RightType:  types.T_int64,
			ReturnType: types.T_float64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]uint64), rv.Col.([]int64)
				return divPromoted(lv, rv, proc, lc, rc, func(rs []float64) {
					switch {
					case lc:
						for i, y := range rvs {
							rs[i] = float64(lvs[0]) / float64(y)
						}
					case rc:
						for i, x := range lvs {
							rs[i] = float64(x) / float64(rvs[0])
						}
					default:
						for i, x := range lvs {
							rs[i] = float64(x) / float64(rvs[i])
						}
					}
				})
			},
		},
		{
			LeftType:   types.T_int64,
			RightType:  types.T_uint64,
			ReturnType: types.T_float64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]int64), rv.Col.([]uint64)
				return divPromoted(lv, rv, proc, lc, rc, func(rs []float64) {
					switch {
					case lc:
						for i, y := range rvs {
							rs[i] = float64(lvs[0]) / float64(y)
						}
					case rc:
						for i, x := range lvs {
							rs[i] = float64(x) / float64(rvs[0])
						}
					default:
						for i, x := range lvs {
							rs[i] = float64(x) / float64(rvs[i])
						}
					}
				})
			},
		},
	}
}

// divPromoted allocates the float64 result for a mixed-width division
// and recycles any scratch operands; stealing is impossible since the
// result type differs from both inputs.
func divPromoted(lv, rv *vector.Vector, proc *process.Process, lc, rc bool, fill func([]float64)) (*vector.Vector, error) {
	n := lv.Length()
	if lc {
		n = rv.Length()
	}
	typ := types.New(types.T_float64)
	if lc && rc {
		rs := make([]float64, 1)
		fill(rs)
		vec := vector.New(typ)
		vec.SetCol(rs)
		return vec, nil
	}
	vec, err := register.Get(proc, int64(n)*8, typ)
	if err != nil {
		return nil, err
	}
	rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:n]
	fill(rs)
	nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
	vec.SetCol(rs)
	if !lc && lv.Ref == 0 {
		register.Put(proc, lv)
	}
	if !rc && rv.Ref == 0 {
		register.Put(proc, rv)
	}
	return vec, nil
}
