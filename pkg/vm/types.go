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

// Package vm executes operator instruction lists over a process's
// register. Operators communicate through Reg.Ax; a nil Ax fed into a
// pass means the stream has ended and pending state must flush.
package vm

const (
	Top = iota
	Limit
	Group
	Output
	Restrict
	Summarize
	Projection
	Connector
	MergeTop
	MergeSum
	MergeGroup
)

type Instruction struct {
	// Op selects the operator; Arg is its operator-specific argument.
	Op  int
	Arg interface{}
}

type Instructions []Instruction
