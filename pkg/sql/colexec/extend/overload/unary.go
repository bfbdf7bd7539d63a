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
	"github.com/datafusedev/fuse-query/pkg/vectorize/sub"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

// Unary minus is defined for signed and float types only; negating an
// unsigned column is a type error rather than a silent reinterpretation.
func init() {
	UnaryOps[UnaryMinus] = []*UnaryOp{
		{
			Typ:        types.T_int64,
			ReturnType: types.T_int64,
			Fn: func(v *vector.Vector, proc *process.Process, c bool) (*vector.Vector, error) {
				vs := v.Col.([]int64)
				if c {
					vec := vector.New(v.Typ)
					vec.SetCol([]int64{-vs[0]})
					return vec, nil
				}
				if v.Ref == 0 {
					sub.Int64SubScalar(0, vs, vs)
					return v, nil
				}
				vec, err := register.Get(proc, int64(len(vs))*8, v.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeInt64Slice(vec.Data[mempool.CountSize:])[:len(vs)]
				vec.Nsp.Set(v.Nsp)
				vec.SetCol(sub.Int64SubScalar(0, vs, rs))
				return vec, nil
			},
		},
		{
			Typ:        types.T_float64,
			ReturnType: types.T_float64,
			Fn: func(v *vector.Vector, proc *process.Process, c bool) (*vector.Vector, error) {
				vs := v.Col.([]float64)
				if c {
					vec := vector.New(v.Typ)
					vec.SetCol([]float64{-vs[0]})
					return vec, nil
				}
				if v.Ref == 0 {
					sub.Float64SubScalar(0, vs, vs)
					return v, nil
				}
				vec, err := register.Get(proc, int64(len(vs))*8, v.Typ)
				if err != nil {
					return nil, err
				}
				rs := encoding.DecodeFloat64Slice(vec.Data[mempool.CountSize:])[:len(vs)]
				vec.Nsp.Set(v.Nsp)
				vec.SetCol(sub.Float64SubScalar(0, vs, rs))
				return vec, nil
			},
		},
	}
}
