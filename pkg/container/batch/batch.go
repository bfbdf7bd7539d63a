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

// Package batch implements the unit of data flowing between operators:
// a set of named, equal-length vectors plus an optional selection
// vector. Batches derived by adding a column share the underlying
// vector slabs instead of copying them.
package batch

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type Batch struct {
	// Ro marks a batch owned by the data source; its vectors must not be
	// written in place.
	Ro bool
	// Sels is the selection filter produced by restrict; when non-empty
	// only the selected rows are live.
	Sels     []int64
	SelsData []byte
	Attrs    []string
	Vecs     []*vector.Vector
	// Aggs piggybacks partition-local partial aggregation states on the
	// batch handed to the merge pipeline.
	Aggs []aggregation.Aggregation
}

func New(ro bool, attrs []string) *Batch {
	return &Batch{
		Ro:    ro,
		Attrs: attrs,
		Vecs:  make([]*vector.Vector, len(attrs)),
	}
}

// Length returns the physical row count, ignoring Sels.
func (bat *Batch) Length() int {
	if len(bat.Vecs) == 0 {
		return 0
	}
	return bat.Vecs[0].Length()
}

func (bat *Batch) GetVector(name string) (*vector.Vector, error) {
	for i, attr := range bat.Attrs {
		if attr == name {
			return bat.Vecs[i], nil
		}
	}
	return nil, moerr.NewInternal("attribute '%s' not exist", name)
}

// Check verifies the batch invariants: unique attribute names and one
// row count across every vector. A violation is an internal fault.
func (bat *Batch) Check() error {
	mp := make(map[string]uint8)
	for _, attr := range bat.Attrs {
		if _, ok := mp[attr]; ok {
			return moerr.NewInternal("duplicate attribute '%s' in batch", attr)
		}
		mp[attr] = 0
	}
	if len(bat.Vecs) == 0 {
		return nil
	}
	n := bat.Vecs[0].Length()
	for i, vec := range bat.Vecs {
		if vec.Length() != n {
			return moerr.NewInternal("column length mismatch: %s has %v rows, %s has %v",
				bat.Attrs[0], n, bat.Attrs[i], vec.Length())
		}
	}
	return nil
}

func (bat *Batch) Free(proc *process.Process) {
	if bat.SelsData != nil {
		proc.Free(bat.SelsData)
		bat.Sels = nil
		bat.SelsData = nil
	}
	for _, vec := range bat.Vecs {
		if vec != nil {
			vec.Free(proc)
		}
	}
}

func (bat *Batch) String() string {
	var buf bytes.Buffer

	if len(bat.Sels) > 0 {
		fmt.Fprintf(&buf, "%v\n", bat.Sels)
	}
	for i, vec := range bat.Vecs {
		fmt.Fprintf(&buf, "%s: %s\n", bat.Attrs[i], vec)
	}
	return buf.String()
}
