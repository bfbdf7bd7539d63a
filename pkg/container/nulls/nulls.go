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

// Package nulls wraps the roaring bitmap library as a per-column validity
// mask. A set bit marks a NULL row.
package nulls

import (
	"fmt"

	roaring "github.com/RoaringBitmap/roaring/roaring64"
)

type Nulls struct {
	Np *roaring.Bitmap
}

func New() *Nulls {
	return &Nulls{}
}

// Any returns true if any bit is set.
func (n *Nulls) Any() bool {
	return n != nil && n.Np != nil && !n.Np.IsEmpty()
}

// Length returns the number of NULL rows.
func (n *Nulls) Length() int {
	if n == nil || n.Np == nil {
		return 0
	}
	return int(n.Np.GetCardinality())
}

func (n *Nulls) Contains(row uint64) bool {
	return n != nil && n.Np != nil && n.Np.Contains(row)
}

func (n *Nulls) Add(rows ...uint64) {
	if n.Np == nil {
		n.Np = roaring.NewBitmap()
	}
	n.Np.AddMany(rows)
}

func (n *Nulls) Del(rows ...uint64) {
	if n.Np == nil {
		return
	}
	for _, row := range rows {
		n.Np.Remove(row)
	}
}

// Set overwrites n with the bits of m.
func (n *Nulls) Set(m *Nulls) {
	if m == nil || m.Np == nil {
		n.Np = nil
		return
	}
	n.Np = m.Np.Clone()
}

// Or returns the union of n and m; either receiver may be reused.
func (n *Nulls) Or(m *Nulls) *Nulls {
	switch {
	case n == nil || n.Np == nil:
		if m == nil {
			return n
		}
		return m
	case m == nil || m.Np == nil:
		return n
	default:
		n.Np.Or(m.Np)
		return n
	}
}

// Or stores the union of a and b in r. r may alias either input, so the
// union is built aside before r is overwritten.
func Or(a, b, r *Nulls) {
	if !a.Any() && !b.Any() {
		r.Np = nil
		return
	}
	np := roaring.NewBitmap()
	if a.Any() {
		np.Or(a.Np)
	}
	if b.Any() {
		np.Or(b.Np)
	}
	r.Np = np
}

// FilterCount returns how many of the selected rows are NULL.
func (n *Nulls) FilterCount(sels []int64) int {
	if !n.Any() {
		return 0
	}
	var cnt int
	for _, sel := range sels {
		if n.Np.Contains(uint64(sel)) {
			cnt++
		}
	}
	return cnt
}

// Filter remaps the mask through a selection vector: bit i of the result
// is set iff row sels[i] was NULL.
func (n *Nulls) Filter(sels []int64) *Nulls {
	if !n.Any() {
		return n
	}
	np := roaring.NewBitmap()
	for i, sel := range sels {
		if n.Np.Contains(uint64(sel)) {
			np.Add(uint64(i))
		}
	}
	return &Nulls{Np: np}
}

func (n *Nulls) String() string {
	if n == nil || n.Np == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", n.Np.ToArray())
}
