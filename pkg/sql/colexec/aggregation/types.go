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

// Package aggregation defines the closed set of aggregate functions and
// their partial-state contract. A state is created per partition, filled
// batch by batch, merged across partitions with an associative and
// commutative combiner, and finalized exactly once.
package aggregation

import (
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

const (
	Avg = iota
	Max
	Min
	Sum
	Count
	// StarCount is count(*): rows are counted whether or not they are
	// NULL in any particular column.
	StarCount
)

var AggName = [...]string{
	Avg:       "avg",
	Max:       "max",
	Min:       "min",
	Sum:       "sum",
	Count:     "count",
	StarCount: "starCount",
}

// Extend binds an aggregate function to its argument column.
type Extend struct {
	Op    int
	Name  string // attribute holding the argument
	Alias string // attribute of the result
	Agg   Aggregation
}

// Aggregation is the partial-state contract. Fill folds rows of one
// batch into the state; Merge folds another partition's state in; Eval
// finalizes. Merge must be associative and commutative so partition
// count and completion order never change the result.
type Aggregation interface {
	Reset()
	Type() types.Type
	Dup() Aggregation
	Fill(sels []int64, vec *vector.Vector) error
	Merge(agg Aggregation) error
	Eval() interface{}
	EvalCopy(proc *process.Process) (*vector.Vector, error)
}
