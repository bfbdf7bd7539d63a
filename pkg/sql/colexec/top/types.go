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

package top

import (
	"container/heap"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/compare"
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

const (
	Ascending = iota
	Descending
)

// Field is one ORDER BY term.
type Field struct {
	Attr string
	Type int8
}

func (f Field) String() string {
	if f.Type == Descending {
		return fmt.Sprintf("%s desc", f.Attr)
	}
	return f.Attr
}

// Container keeps the current top rows in a bounded buffer. sels is a
// heap over buffer slots with the worst kept row at the root; seqs
// stamps each slot with its arrival order so equal keys resolve to the
// earlier row.
type Container struct {
	limit int64
	seq   int64
	sels  []int64
	seqs  []int64
	poses []int // order column positions within the buffer
	cmps  []compare.Compare
	bat   *batch.Batch
}

type Argument struct {
	// Flushed is set once the partial result has been emitted.
	Flushed bool
	Limit   int64
	Fs      []Field
	Ctr     Container
}

// Initialized reports whether the container has adopted a column layout.
func (ctr *Container) Initialized() bool {
	return ctr.bat != nil
}

// Init sizes the container from the first batch's column layout.
func (ctr *Container) Init(limit int64, fs []Field, bat *batch.Batch) error {
	ctr.limit = limit
	ctr.bat = batch.New(true, bat.Attrs)
	ctr.cmps = make([]compare.Compare, len(bat.Vecs))
	ctr.poses = make([]int, 0, len(fs))
	desc := make([]bool, len(bat.Vecs))
	for _, f := range fs {
		for i, attr := range bat.Attrs {
			if attr == f.Attr {
				ctr.poses = append(ctr.poses, i)
				desc[i] = f.Type == Descending
			}
		}
	}
	for i, vec := range bat.Vecs {
		ctr.bat.Vecs[i] = vector.New(vec.Typ)
		ctr.cmps[i] = compare.New(vec.Typ.Oid, desc[i])
	}
	return nil
}

// Process folds one batch into the buffer.
func (ctr *Container) Process(bat *batch.Batch, proc *process.Process) error {
	rows := int64(bat.Length())
	var i int64
	for ; i < rows && int64(len(ctr.sels)) < ctr.limit; i++ {
		for j, vec := range ctr.bat.Vecs {
			if err := vec.UnionOne(bat.Vecs[j], i); err != nil {
				return err
			}
		}
		ctr.sels = append(ctr.sels, int64(len(ctr.sels)))
		ctr.seqs = append(ctr.seqs, ctr.seq)
		ctr.seq++
	}
	if i < rows {
		// The buffer just filled (or was already full): bind the slots and
		// sift the incoming remainder against the worst kept row.
		for j, vec := range ctr.bat.Vecs {
			ctr.cmps[j].Set(0, vec)
			ctr.cmps[j].Set(1, bat.Vecs[j])
		}
		if int64(len(ctr.sels)) == ctr.limit && ctr.seq == ctr.limit {
			heap.Init(ctr)
		}
		for ; i < rows; i++ {
			if ctr.better(i) {
				for j := range ctr.cmps {
					if err := ctr.cmps[j].Copy(1, 0, i, ctr.sels[0], proc); err != nil {
						return err
					}
				}
				ctr.seqs[ctr.sels[0]] = ctr.seq
				heap.Fix(ctr, 0)
			}
			ctr.seq++
		}
	}
	return nil
}

// better reports whether incoming row i outranks the worst kept row.
// Ties keep the incumbent.
func (ctr *Container) better(i int64) bool {
	for _, pos := range ctr.poses {
		if r := ctr.cmps[pos].Compare(1, 0, i, ctr.sels[0]); r != 0 {
			return r < 0
		}
	}
	return false
}

// Eval drains the heap into a batch sorted best to worst.
func (ctr *Container) Eval() (*batch.Batch, error) {
	if ctr.bat == nil {
		return nil, nil
	}
	if len(ctr.sels) == 0 {
		rbat := ctr.bat
		ctr.bat = nil
		for _, vec := range rbat.Vecs {
			vec.Ref = 1
		}
		return rbat, nil
	}
	if int64(len(ctr.sels)) < ctr.limit || ctr.seq == ctr.limit {
		for j, vec := range ctr.bat.Vecs {
			ctr.cmps[j].Set(0, vec)
		}
		heap.Init(ctr)
	}
	sels := make([]int64, len(ctr.sels))
	for i := len(sels) - 1; i >= 0; i-- {
		sels[i] = heap.Pop(ctr).(int64)
	}
	rbat := ctr.bat
	ctr.bat = nil
	for _, vec := range rbat.Vecs {
		vec.Shuffle(sels)
		vec.Ref = 1
	}
	return rbat, nil
}

func (ctr *Container) Len() int {
	return len(ctr.sels)
}

// Less orders slot i before slot j when its row ranks worse, so the heap
// root is always the next row to evict.
func (ctr *Container) Less(i, j int) bool {
	for _, pos := range ctr.poses {
		if r := ctr.cmps[pos].Compare(0, 0, ctr.sels[i], ctr.sels[j]); r != 0 {
			return r > 0
		}
	}
	return ctr.seqs[ctr.sels[i]] > ctr.seqs[ctr.sels[j]]
}

func (ctr *Container) Swap(i, j int) {
	ctr.sels[i], ctr.sels[j] = ctr.sels[j], ctr.sels[i]
}

func (ctr *Container) Push(x interface{}) {
	ctr.sels = append(ctr.sels, x.(int64))
}

func (ctr *Container) Pop() interface{} {
	n := len(ctr.sels) - 1
	sel := ctr.sels[n]
	ctr.sels = ctr.sels[:n]
	return sel
}
