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

package compile

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/top"
	"github.com/datafusedev/fuse-query/pkg/vm"
	"github.com/datafusedev/fuse-query/pkg/vm/engine"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

// Aggregate names one aggregate term of the select list. The argument
// is either the bare column Name or, when E is set, an expression
// evaluated per batch before the state folds it in.
type Aggregate struct {
	Op    int // aggregation.Avg, .Sum, ...
	Name  string
	E     extend.Extend
	Alias string
}

// Query is the physical description of one query over a relation:
// which partitioned source to scan, what to filter, project, aggregate,
// group and order, and how many partitions to run.
type Query struct {
	Relation string
	Args     []uint64
	// Where filters rows before any other processing; it must evaluate
	// to a selection.
	Where extend.Extend
	// Es and As are the select expressions and their output names. With
	// aggregates present they instead run once on the merge side, over
	// the finalized aggregate row.
	Es []extend.Extend
	As []string
	// Aggs are the aggregate terms; with Gs empty they collapse the
	// query to a single row.
	Aggs []Aggregate
	// Gs and GAs are the group-by expressions and their output names.
	Gs  []extend.Extend
	GAs []string
	// Fs orders the output; it requires a limit.
	Fs       []top.Field
	Limit    uint64
	HasLimit bool
	// Parallel is the partition count; zero means one.
	Parallel int
}

// Scope is one partition pipeline bound to its reader and worker
// process.
type Scope struct {
	Proc   *process.Process
	Reader engine.Reader
	Ins    vm.Instructions
}

// Exec is a compiled query ready to run. Operator state lives in the
// instruction arguments, so an Exec runs at most once; compile the
// query again to re-run it.
type Exec struct {
	cs       []uint64
	attrs    []string
	scopes   []*Scope
	mergeIns vm.Instructions
	proc     *process.Process
	pool     *ants.Pool

	mu   sync.Mutex
	errs []error
}

// Compile binds an engine and a root process to build executions from
// queries.
type Compile struct {
	e    engine.Engine
	proc *process.Process
	pool *ants.Pool
}

func New(e engine.Engine, proc *process.Process, pool *ants.Pool) *Compile {
	return &Compile{
		e:    e,
		proc: proc,
		pool: pool,
	}
}
