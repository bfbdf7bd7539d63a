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
	"github.com/datafusedev/fuse-query/pkg/container/nulls"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/vectorize/mul"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

func init() {
	BinOps[Mult] = []*BinOp{
		{
			LeftType:   types.T_int64,
			RightType:  types.T_int64,
			ReturnType: types.T_int64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]int64), rv.Col.([]int64)
				switch {
				case lc && rc:
					vec := vector.New(lv.Typ)
					vec.SetCol([]int64{lvs[0] * rvs[0]})
					return vec, nil
				case lc:
					if rv.Ref == 0 {
						mul.Int64MulScalar(lvs[0], rvs, rvs)
						return rv, nil
					}
					vec, err := register.Get(proc, int64(len(rvs))*8, rv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(rvs)]
					vec.Nsp.Set(rv.Nsp)
					vec.SetCol(mul.Int64MulScalar(lvs[0], rvs, rs))
					return vec, nil
				case rc:
					if lv.Ref == 0 {
						mul.Int64MulScalar(rvs[0], lvs, lvs)
						return lv, nil
					}
					vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
					vec.Nsp.Set(lv.Nsp)
					vec.SetCol(mul.Int64MulScalar(rvs[0], lvs, rs))
					return vec, nil
				}
				if lv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, lv.Nsp)
					mul.Int64Mul(lvs, rvs, lvs)
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return lv, nil
				}
				if rv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, rv.Nsp)
					mul.Int64Mul(lvs, rvs, rvs)
					return rv, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
				nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
				vec.SetCol(mul.Int64Mul(lvs, rvs, rs))
				return vec, nil
			},
		},
		{
			LeftType:   types.T_uint64,
			RightType:  types.T_uint64,
			ReturnType: types.T_uint64,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]uint64), rv.Col.([]uint64)
				switch {
				case lc && rc:
					vec := vector.New(lv.Typ)
					vec.SetCol([]uint64{lvs[0] * rvs[0]})
					return vec, nil
				case lc:
					if rv.Ref == 0 {
						mul.Uint64MulScalar(lvs[0], rvs, rvs)
						return rv, nil
					}
					vec, err := register.Get(proc, int64(len(rvs))*8, rv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeUint64Slice(vec.Data[mempool.CountSize:])[:len(rvs)]
					vec.Nsp.Set(rv.Nsp)
					vec.SetCol(mul.Uint64MulScalar(lvs[0], rvs, rs))
					return vec, nil
				case rc:
					if lv.Ref == 0 {
						mul.Uint64MulScalar(rvs[0], lvs, lvs)
						return lv, nil
					}
					vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeUint64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
					vec.Nsp.Set(lv.Nsp)
					vec.SetCol(mul.Uint64MulScalar(rvs[0], lvs, rs))
					return vec, nil
				}
				if lv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, lv.Nsp)
					mul.Uint64Mul(lvs, rvs, lvs)
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return lv, nil
				}
				if rv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, rv.Nsp)
					mul.Uint64Mul(lvs, rvs, rvs)
					return rv, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeUint64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
				nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
				vec.SetCol(mul.Uint64Mul(lvs, rvs, rs))
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
					vec.SetCol([]float64{lvs[0] * rvs[0]})
					return vec, nil
				case lc:
					if rv.Ref == 0 {
						mul.Float64MulScalar(lvs[0], rvs, rvs)
						return rv, nil
					}
					vec, err := register.Get(proc, int64(len(rvs))*8, rv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(rvs)]
					vec.Nsp.Set(rv.Nsp)
					vec.SetCol(mul.Float64MulScalar(lvs[0], rvs, rs))
					return vec, nil
				case rc:
					if lv.Ref == 0 {
						mul.Float64MulScalar(rvs[0], lvs, lvs)
						return lv, nil
					}
					vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
					vec.Nsp.Set(lv.Nsp)
					vec.SetCol(mul.Float64MulScalar(rvs[0], lvs, rs))
					return vec, nil
				}
				if lv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, lv.Nsp)
					mul.Float64Mul(lvs, rvs, lvs)
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return lv, nil
				}
				if rv.Ref == 0 {
					nulls.Or(lv.Nsp, rv.Nsp, rv.Nsp)
					mul.Float64Mul(lvs, rvs, rvs)
					return rv, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, lv.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(lvs)]
				nulls.Or(lv.Nsp, rv.Nsp, vec.Nsp)
				vec.SetCol(mul.Float64Mul(lvs, rvs, rs))
				return vec, nil
			},
		},
	}
}
