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

// Package overload dispatches expression operators to typed columnar
// kernels. Operand types must match exactly: the evaluator never
// coerces across types, a mismatch fails the query.
package overload

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

const (
	UnaryMinus = iota
	EQ
	NE
	LT
	LE
	GT
	GE
	Plus
	Minus
	Mult
	Div
	Mod
)

var OpName = [...]string{
	UnaryMinus: "-",
	EQ:         "=",
	NE:         "<>",
	LT:         "<",
	LE:         "<=",
	GT:         ">",
	GE:         ">=",
	Plus:       "+",
	Minus:      "-",
	Mult:       "*",
	Div:        "/",
	Mod:        "%",
}

type BinOp struct {
	LeftType   types.T
	RightType  types.T
	ReturnType types.T
	Fn         func(lv, rv *vector.Vector, proc *process.Process, lc, rc bool) (*vector.Vector, error)
}

type UnaryOp struct {
	Typ        types.T
	ReturnType types.T
	Fn         func(v *vector.Vector, proc *process.Process, c bool) (*vector.Vector, error)
}

// BinOps contains the binary operations indexed by operator.
var BinOps = map[int][]*BinOp{}

// UnaryOps contains the unary operations indexed by operator.
var UnaryOps = map[int][]*UnaryOp{}

func BinaryEval(op int, ltyp, rtyp types.T, lc, rc bool, lv, rv *vector.Vector, proc *process.Process) (*vector.Vector, error) {
	for _, o := range BinOps[op] {
		if o.LeftType == ltyp && o.RightType == rtyp {
			return o.Fn(lv, rv, proc, lc, rc)
		}
	}
	return nil, moerr.NewTypeMismatch("'%s' not supported between %s and %s", OpName[op], ltyp, rtyp)
}

func UnaryEval(op int, typ types.T, c bool, v *vector.Vector, proc *process.Process) (*vector.Vector, error) {
	for _, o := range UnaryOps[op] {
		if o.Typ == typ {
			return o.Fn(v, proc, c)
		}
	}
	return nil, moerr.NewTypeMismatch("'%s' not supported for %s", OpName[op], typ)
}

func GetBinOpReturnType(op int, l, r types.T) types.T {
	for _, o := range BinOps[op] {
		if o.LeftType == l && o.RightType == r {
			return o.ReturnType
		}
	}
	return types.T_any
}

func GetUnaryOpReturnType(op int, t types.T) types.T {
	for _, o := range UnaryOps[op] {
		if o.Typ == t {
			return o.ReturnType
		}
	}
	return types.T_any
}
