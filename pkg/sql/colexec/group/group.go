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

// Package group evaluates GROUP BY over a partition: rows are hashed by
// their encoded key, each distinct key keeping its own aggregation
// states. The flush emits the partial table for mergegroup.
package group

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString("γ([")
	for i, g := range n.Gs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s", g))
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
	n.Ctr.groups = make(map[string]*Group)
	n.Ctr.bat = batch.New(true, n.As)
	for i, g := range n.Gs {
		n.Ctr.bat.Vecs[i] = vector.New(types.New(g.ReturnType()))
	}
	return nil
}

func Call(proc *process.Process, arg interface{}) (bool, error) {
	n := arg.(*Argument)
	if proc.Reg.Ax == nil {
		if n.Flushed {
			return false, nil
		}
		n.Flushed = true
		gs := make([]*Group, len(n.Ctr.groups))
		for _, g := range n.Ctr.groups {
			gs[g.Sel] = g
		}
		proc.Reg.Ax = &Table{Bat: n.Ctr.bat, Gs: gs}
		return false, nil
	}
	bat := proc.Reg.Ax.(*batch.Batch)
	defer func() {
		bat.Free(proc)
		proc.Reg.Ax = nil
	}()
	gvecs := make([]*vector.Vector, len(n.Gs))
	for i, g := range n.Gs {
		vec, _, err := g.Eval(bat, proc)
		if err != nil {
			return false, err
		}
		gvecs[i] = vec
	}
	avecs := make([]*vector.Vector, len(n.Es))
	for i, e := range n.Es {
		vec, err := bat.GetVector(e.Name)
		if err != nil {
			return false, err
		}
		avecs[i] = vec
	}
	var err error
	var touched []*Group
	buf := make([]byte, 0, 9*len(gvecs))
	rows := bat.Length()
	for i := 0; i < rows; i++ {
		if buf, err = EncodeRow(buf[:0], gvecs, int64(i)); err != nil {
			return false, err
		}
		g, ok := n.Ctr.groups[string(buf)]
		if !ok {
			g = &Group{Sel: int64(len(n.Ctr.groups)), Aggs: make([]aggregation.Aggregation, len(n.Es))}
			for j, e := range n.Es {
				g.Aggs[j] = e.Agg.Dup()
			}
			for j, vec := range n.Ctr.bat.Vecs {
				if err := vec.UnionOne(gvecs[j], int64(i)); err != nil {
					return false, err
				}
			}
			n.Ctr.groups[string(buf)] = g
		}
		if len(g.sels) == 0 {
			touched = append(touched, g)
		}
		g.sels = append(g.sels, int64(i))
	}
	for _, g := range touched {
		for j := range g.Aggs {
			if err := g.Aggs[j].Fill(g.sels, avecs[j]); err != nil {
				return false, err
			}
		}
		g.sels = g.sels[:0]
	}
	for _, vec := range gvecs {
		if vec.Data == nil {
			continue
		}
		shared := false
		for _, v := range bat.Vecs {
			if v == vec {
				shared = true
				break
			}
		}
		if !shared {
			register.Put(proc, vec)
		}
	}
	return false, nil
}
