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

// Package vector implements the typed column. A vector either views a
// reference-counted mempool slab (Data != nil, the hot path for readers
// and expression kernels) or owns a plain Go slice (Data == nil, used by
// the small partition-local result buffers of group and top).
package vector

import (
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/nulls"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type Vector struct {
	// Ro marks a vector owned by an upstream batch; it must not be
	// written in place.
	Ro bool
	// Ref counts the operators that still read this vector. A kernel may
	// steal the buffer for its result only when Ref is 0 or 1.
	Ref uint64
	Typ types.Type
	// Col is the typed slice view over Data (or a Go-heap slice).
	Col interface{}
	Nsp *nulls.Nulls
	// Data is the mempool slab backing Col, including the refcount
	// header. Nil when the vector owns a Go-heap slice instead.
	Data []byte
}

func New(typ types.Type) *Vector {
	v := &Vector{Typ: typ, Nsp: nulls.New()}
	switch typ.Oid {
	case types.T_varchar:
		v.Col = &types.Bytes{}
	}
	return v
}

func (v *Vector) SetCol(col interface{}) {
	v.Col = col
}

func (v *Vector) Length() int {
	switch col := v.Col.(type) {
	case []int64:
		return len(col)
	case []uint64:
		return len(col)
	case []float64:
		return len(col)
	case []bool:
		return len(col)
	case *types.Bytes:
		return col.Len()
	case nil:
		return 0
	default:
		panic(moerr.NewInternal("unexpected column type %T", col))
	}
}

// Append extends the column with the rows of a typed slice. The vector
// must be Go-heap owned.
func (v *Vector) Append(arg interface{}) error {
	switch col := v.Col.(type) {
	case []int64:
		vs, ok := arg.([]int64)
		if !ok {
			return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
		}
		v.Col = append(col, vs...)
	case []uint64:
		vs, ok := arg.([]uint64)
		if !ok {
			return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
		}
		v.Col = append(col, vs...)
	case []float64:
		vs, ok := arg.([]float64)
		if !ok {
			return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
		}
		v.Col = append(col, vs...)
	case []bool:
		vs, ok := arg.([]bool)
		if !ok {
			return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
		}
		v.Col = append(col, vs...)
	case *types.Bytes:
		vs, ok := arg.([][]byte)
		if !ok {
			return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
		}
		col.Append(vs)
	case nil:
		switch vs := arg.(type) {
		case []int64:
			v.Col = append([]int64{}, vs...)
		case []uint64:
			v.Col = append([]uint64{}, vs...)
		case []float64:
			v.Col = append([]float64{}, vs...)
		case []bool:
			v.Col = append([]bool{}, vs...)
		default:
			return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
		}
	default:
		return moerr.NewTypeMismatch("append %T to %s vector", arg, v.Typ)
	}
	return nil
}

// UnionOne appends row sel of w, carrying its validity bit.
func (v *Vector) UnionOne(w *Vector, sel int64) error {
	n := v.Length()
	switch col := w.Col.(type) {
	case []int64:
		if err := v.Append(col[sel : sel+1]); err != nil {
			return err
		}
	case []uint64:
		if err := v.Append(col[sel : sel+1]); err != nil {
			return err
		}
	case []float64:
		if err := v.Append(col[sel : sel+1]); err != nil {
			return err
		}
	case []bool:
		if err := v.Append(col[sel : sel+1]); err != nil {
			return err
		}
	case *types.Bytes:
		if err := v.Append([][]byte{col.Get(sel)}); err != nil {
			return err
		}
	default:
		return moerr.NewTypeMismatch("union %T into %s vector", w.Col, v.Typ)
	}
	if w.Nsp.Contains(uint64(sel)) {
		v.Nsp.Add(uint64(n))
	}
	return nil
}

// Shuffle reorders the vector so row i becomes old row sels[i]. Used by
// the top-N eval step; the vector must be Go-heap owned.
func (v *Vector) Shuffle(sels []int64) {
	switch col := v.Col.(type) {
	case []int64:
		ws := make([]int64, len(sels))
		for i, sel := range sels {
			ws[i] = col[sel]
		}
		v.Col = ws
	case []uint64:
		ws := make([]uint64, len(sels))
		for i, sel := range sels {
			ws[i] = col[sel]
		}
		v.Col = ws
	case []float64:
		ws := make([]float64, len(sels))
		for i, sel := range sels {
			ws[i] = col[sel]
		}
		v.Col = ws
	case []bool:
		ws := make([]bool, len(sels))
		for i, sel := range sels {
			ws[i] = col[sel]
		}
		v.Col = ws
	case *types.Bytes:
		ws := new(types.Bytes)
		for _, sel := range sels {
			ws.Append([][]byte{col.Get(sel)})
		}
		v.Col = ws
	}
	if v.Nsp.Any() {
		v.Nsp = v.Nsp.Filter(sels)
	}
}

func (v *Vector) Free(p *process.Process) {
	if v.Data != nil {
		p.Free(v.Data)
		v.Data = nil
	}
	v.Col = nil
}

func (v *Vector) String() string {
	s := fmt.Sprintf("%v", v.Col)
	if v.Nsp.Any() {
		s += fmt.Sprintf("-%s", v.Nsp)
	}
	return s
}
