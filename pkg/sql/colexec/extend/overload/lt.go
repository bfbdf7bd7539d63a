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
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/vectorize/gt"
	"github.com/datafusedev/fuse-query/pkg/vectorize/lt"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

func init() {
	BinOps[LT] = []*BinOp{
		{
			LeftType:   types.T_int64,
			RightType:  types.T_int64,
			ReturnType: types.T_sel,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]int64), rv.Col.([]int64)
				switch {
				case lc && rc:
					vec := vector.New(types.New(types.T_sel))
					if lvs[0] < rvs[0] {
						vec.SetCol([]int64{0})
					} else {
						vec.SetCol([]int64{})
					}
					return vec, nil
				case lc:
					vec, err := register.Get(proc, int64(len(rvs))*8, types.New(types.T_sel))
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
					vec.SetCol(dropNulls(gt.Int64GtScalar(lvs[0], rvs, rs), rv.Nsp))
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return vec, nil
				case rc:
					vec, err := register.Get(proc, int64(len(lvs))*8, types.New(types.T_sel))
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
					vec.SetCol(dropNulls(lt.Int64LtScalar(rvs[0], lvs, rs), lv.Nsp))
					if lv.Ref == 0 {
						register.Put(proc, lv)
					}
					return vec, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, types.New(types.T_sel))
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
				rs = dropNulls(lt.Int64Lt(lvs, rvs, rs), lv.Nsp)
				vec.SetCol(dropNulls(rs, rv.Nsp))
				if lv.Ref == 0 {
					register.Put(proc, lv)
				}
				if rv.Ref == 0 {
					register.Put(proc, rv)
				}
				return vec, nil
			},
		},
		{
			LeftType:   types.T_uint64,
			RightType:  types.T_uint64,
			ReturnType: types.T_sel,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]uint64), rv.Col.([]uint64)
				switch {
				case lc && rc:
					vec := vector.New(types.New(types.T_sel))
					if lvs[0] < rvs[0] {
						vec.SetCol([]int64{0})
					} else {
						vec.SetCol([]int64{})
					}
					return vec, nil
				case lc:
					vec, err := register.Get(proc, int64(len(rvs))*8, types.New(types.T_sel))
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
					vec.SetCol(dropNulls(gt.Uint64GtScalar(lvs[0], rvs, rs), rv.Nsp))
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return vec, nil
				case rc:
					vec, err := register.Get(proc, int64(len(lvs))*8, types.New(types.T_sel))
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
					vec.SetCol(dropNulls(lt.Uint64LtScalar(rvs[0], lvs, rs), lv.Nsp))
					if lv.Ref == 0 {
						register.Put(proc, lv)
					}
					return vec, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, types.New(types.T_sel))
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
				rs = dropNulls(lt.Uint64Lt(lvs, rvs, rs), lv.Nsp)
				vec.SetCol(dropNulls(rs, rv.Nsp))
				if lv.Ref == 0 {
					register.Put(proc, lv)
				}
				if rv.Ref == 0 {
					register.Put(proc, rv)
				}
				return vec, nil
			},
		},
		{
			LeftType:   types.T_float64,
			RightType:  types.T_float64,
			ReturnType: types.T_sel,
			Fn: func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error) {
				lvs, rvs := lv.Col.([]float64), rv.Col.([]float64)
				switch {
				case lc && rc:
					vec := vector.New(types.New(types.T_sel))
					if lvs[0] < rvs[0] {
						vec.SetCol([]int64{0})
					} else {
						vec.SetCol([]int64{})
					}
					return vec, nil
				case lc:
					vec, err := register.Get(proc, int64(len(rvs))*8, types.New(types.T_sel))
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
					vec.SetCol(dropNulls(gt.Float64GtScalar(lvs[0], rvs, rs), rv.Nsp))
					if rv.Ref == 0 {
						register.Put(proc, rv)
					}
					return vec, nil
				case rc:
					vec, err := register.Get(proc, int64(len(lvs))*8, types.New(types.T_sel))
					if err != nil {
						return nil, err
					}
					rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
					vec.SetCol(dropNulls(lt.Float64LtScalar(rvs[0], lvs, rs), lv.Nsp))
					if lv.Ref == 0 {
						register.Put(proc, lv)
					}
					return vec, nil
				}
				vec, err := register.Get(proc, int64(len(lvs))*8, types.New(types.T_sel))
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:0]
				rs = dropNulls(lt.Float64Lt(lvs, rvs, rs), lv.Nsp)
				vec.SetCol(dropNulls(rs, rv.Nsp))
				if lv.Ref == 0 {
					register.Put(proc, lv)
				}
				if rv.Ref == 0 {
					register.Put(proc, rv)
				}
				return vec, nil
			},
		},
	}
}
