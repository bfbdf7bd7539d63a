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
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func (e *ParenExtend) Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, types.T, error) {
	return e.E.Eval(bat, proc)
}

func (e *ParenExtend) Eq(v Extend) bool {
	if b, ok := v.(*ParenExtend); ok {
		return e.E.Eq(b.E)
	}
	return false
}

func (e *ParenExtend) IsConstant() bool {
	return e.E.IsConstant()
}

func (e *ParenExtend) ReturnType() types.T {
	return e.E.ReturnType()
}

func (e *ParenExtend) Attributes() []string {
	return e.E.Attributes()
}

func (e *ParenExtend) String() string {
	return fmt.Sprintf("(%s)", e.E)
}
