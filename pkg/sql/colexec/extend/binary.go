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

func (e *BinaryExtend) Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, types.T, error) {
	lv, ltyp, err := e.Left.Eval(bat, proc)
	if err != nil {
		return nil, 0, err
	}
	rv, rtyp, err := e.Right.Eval(bat, proc)
	if err != nil {
		return nil, 0, err
	}
	vec, err := overload.BinaryEval(e.Op, ltyp, rtyp, e.Left.IsConstant(), e.Right.IsConstant(), lv, rv, proc)
	if err != nil {
		return nil, 0, err
	}
	return vec, vec.Typ.Oid, nil
}

func (e *BinaryExtend) Eq(v Extend) bool {
	if b, ok := v.(*BinaryExtend); ok {
		return e.Op == b.Op && e.Left.Eq(b.Left) && e.Right.Eq(b.Right)
	}
	return false
}

func (e *BinaryExtend) IsConstant() bool {
	return e.Left.IsConstant() && e.Right.IsConstant()
}

func (e *BinaryExtend) ReturnType() types.T {
	return overload.GetBinOpReturnType(e.Op, e.Left.ReturnType(), e.Right.ReturnType())
}

func (e *BinaryExtend) Attributes() []string {
	return append(e.Left.Attributes(), e.Right.Attributes()...)
}

func (e *BinaryExtend) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, overload.OpName[e.Op], e.Right)
}
