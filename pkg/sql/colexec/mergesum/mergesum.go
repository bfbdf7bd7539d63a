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

// Package mergesum combines the partial aggregation states produced by
// the partition pipelines and finalizes them into the single result row.
package mergesum

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString("γ̄(")
	for i, e := range n.Es {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s(%s) -> %s", aggregation.AggName[e.Op], e.Name, e.Alias))
	}
	buf.WriteString(")")
}

func Prepare(_ *process.Process, _ interface{}) error {
	return nil
}

func Call(proc *process.Process, arg interface{}) (bool, error) {
	n := arg.(*Argument)
	if proc.Reg.Ax == nil {
		if n.Flushed {
			return false, nil
		}
		n.Flushed = true
		rbat := batch.New(true, make([]string, len(n.Es)))
		for i, e := range n.Es {
			vec, err := e.Agg.EvalCopy(proc)
			if err != nil {
				rbat.Free(proc)
				return false, err
			}
			vec.Ref = 1
			rbat.Attrs[i] = e.Alias
			rbat.Vecs[i] = vec
		}
		proc.Reg.Ax = rbat
		return false, nil
	}
	bat := proc.Reg.Ax.(*batch.Batch)
	if len(bat.Aggs) != len(n.Es) {
		bat.Free(proc)
		proc.Reg.Ax = nil
		return false, moerr.NewInternal("partial state count mismatch: %v != %v", len(bat.Aggs), len(n.Es))
	}
	for i, e := range n.Es {
		if err := e.Agg.Merge(bat.Aggs[i]); err != nil {
			bat.Free(proc)
			proc.Reg.Ax = nil
			return false, err
		}
	}
	bat.Free(proc)
	proc.Reg.Ax = nil
	return false, nil
}
