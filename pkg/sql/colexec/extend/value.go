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

package extend

import (
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func NewValue(v *vector.Vector) *ValueExtend {
	return &ValueExtend{V: v}
}

// NewInt64Value builds a length-one constant column.
func NewInt64Value(v int64) *ValueExtend {
	vec := vector.New(types.New(types.T_int64))
	vec.Ref = 1
	vec.SetCol([]int64{v})
	return &ValueExtend{V: vec}
}

func NewUint64Value(v uint64) *ValueExtend {
	vec := vector.New(types.New(types.T_uint64))
	vec.Ref = 1
	vec.SetCol([]uint64{v})
	return &ValueExtend{V: vec}
}

func NewFloat64Value(v float64) *ValueExtend {
	vec := vector.New(types.New(types.T_float64))
	vec.Ref = 1
	vec.SetCol([]float64{v})
	return &ValueExtend{V: vec}
}

func (e *ValueExtend) Eval(_ *batch.Batch, _ *process.Process) (*vector.Vector, types.T, error) {
	return e.V, e.V.Typ.Oid, nil
}

func (e *ValueExtend) Eq(v Extend) bool {
	if b, ok := v.(*ValueExtend); ok {
		return e.V.String() == b.V.String()
	}
	return false
}

func (e *ValueExtend) IsConstant() bool {
	return true
}

func (e *ValueExtend) ReturnType() types.T {
	return e.V.Typ.Oid
}

func (e *ValueExtend) Attributes() []string {
	return nil
}

func (e *ValueExtend) String() string {
	return e.V.String()
}
