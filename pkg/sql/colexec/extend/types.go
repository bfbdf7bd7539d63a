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

// Package extend models scalar expression trees evaluated column-wise
// over batches.
package extend

import (
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type Extend interface {
	Eq(Extend) bool
	String() string
	IsConstant() bool
	ReturnType() types.T
	Attributes() []string
	// Eval produces the expression's column for the batch. The result
	// vector may be a stolen input buffer (Ref 0 scratch) or a vector of
	// the batch itself; the caller must not free it independently.
	Eval(bat *batch.Batch, proc *process.Process) (*vector.Vector, types.T, error)
}

type UnaryExtend struct {
	Op int
	E  Extend
}

type BinaryExtend struct {
	Op          int
	Left, Right Extend
}

type ParenExtend struct {
	E Extend
}

type Attribute struct {
	Name string
	Type types.T
}

type ValueExtend struct {
	V *vector.Vector
}
