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

// Package mergegroup unifies the partial group tables of the partition
// pipelines. Keys are re-hashed with the same byte encoding, states of
// matching keys are merged, and the flush materializes the final batch:
// key columns followed by finalized aggregate columns.
package mergegroup

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/group"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString("γ̄([")
	for i, a := range n.As {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(a)
	}
	buf.WriteString("], [")
	for i, e := range n.Es {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s(%s) -> %s", aggregation.AggName[e.Op], e.Name, e.Alias))
	}
	buf.WriteString("])")
}

func Prepare(_ *process.Process, arg interface{}) error {
	n := arg.(*Argument)
	n.groups = make(map[string]*group.Group)
	return nil
}

func Call(proc *process.Process, arg interface{}) (bool, error) {
	n := arg.(*Argument)
	if proc.Reg.Ax == nil {
		if n.Flushed {
			return false, nil
		}
		n.Flushed = true
		if n.bat == nil {
			// No partial table ever arrived; there is nothing to emit.
			return false, nil
		}
		rbat, err := n.eval()
		if err != nil {
			return false, err
		}
		proc.Reg.Ax = rbat
		return false, nil
	}
	t := proc.Reg.Ax.(*group.Table)
	proc.Reg.Ax = nil
	if n.bat == nil {
		n.bat = batch.New(true, n.As)
		for i, vec := range t.Bat.Vecs {
			n.bat.Vecs[i] = vector.New(vec.Typ)
		}
	}
	var err error
	buf := make([]byte, 0, 9*len(t.Bat.Vecs))
	for r, g := range t.Gs {
		if buf, err = group.EncodeRow(buf[:0], t.Bat.Vecs, int64(r)); err != nil {
			return false, err
		}
		lg, ok := n.groups[string(buf)]
		if !ok {
			lg = &group.Group{Sel: int64(len(n.groups)), Aggs: make([]aggregation.Aggregation, len(g.Aggs))}
			for j, agg := range g.Aggs {
				lg.Aggs[j] = agg.Dup()
			}
			for j, vec := range n.bat.Vecs {
				if err := vec.UnionOne(t.Bat.Vecs[j], int64(r)); err != nil {
					return false, err
				}
			}
			n.groups[string(buf)] = lg
		}
		for j, agg := range g.Aggs {
			if err := lg.Aggs[j].Merge(agg); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// eval builds the final batch in first-seen key order.
func (n *Argument) eval() (*batch.Batch, error) {
	gs := make([]*group.Group, len(n.groups))
	for _, g := range n.groups {
		gs[g.Sel] = g
	}
	attrs := make([]string, 0, len(n.As)+len(n.Es))
	attrs = append(attrs, n.As...)
	for _, e := range n.Es {
		attrs = append(attrs, e.Alias)
	}
	rbat := batch.New(true, attrs)
	copy(rbat.Vecs, n.bat.Vecs)
	for i, e := range n.Es {
		vec := vector.New(e.Agg.Type())
		for _, g := range gs {
			if err := group.AppendEval(vec, g.Aggs[i]); err != nil {
				return nil, err
			}
		}
		rbat.Vecs[len(n.As)+i] = vec
	}
	for _, vec := range rbat.Vecs {
		if vec != nil {
			vec.Ref = 1
		}
	}
	return rbat, nil
}
