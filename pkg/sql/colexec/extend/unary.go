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
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend/overload"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func (e *UnaryExtend) Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, types.T, error) {
	v, typ, err := e.E.Eval(bat, proc)
	if err != nil {
		return nil, 0, err
	}
	vec, err := overload.UnaryEval(e.Op, typ, e.E.IsConstant(), v, proc)
	if err != nil {
		return nil, 0, err
	}
	return vec, vec.Typ.Oid, nil
}

func (e *UnaryExtend) Eq(v Extend) bool {
	if b, ok := v.(*UnaryExtend); ok {
		return e.Op == b.Op && e.E.Eq(b.E)
	}
	return false
}

func (e *UnaryExtend) IsConstant() bool {
	return e.E.IsConstant()
}

func (e *UnaryExtend) ReturnType() types.T {
	return overload.GetUnaryOpReturnType(e.Op, e.E.ReturnType())
}

func (e *UnaryExtend) Attributes() []string {
	return e.E.Attributes()
}

func (e *UnaryExtend) String() string {
	return fmt.Sprintf("%s%s", overload.OpName[e.Op], e.E)
}
