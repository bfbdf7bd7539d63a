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

package types

import "fmt"

type T uint8

const (
	// T_any is the unknown type, only used before binding.
	T_any T = iota
	T_bool
	T_int8
	T_int16
	T_int32
	T_int64
	T_uint8
	T_uint16
	T_uint32
	T_uint64
	T_float32
	T_float64
	// T_sel is the type of a selection vector produced by a comparison.
	T_sel
	T_tuple
	T_varchar
)

// Type describes the physical type of a column.
type Type struct {
	Oid  T
	Size int32 // e.g. int64 takes 8 bytes
}

// Bytes is the layout of a varchar column: one contiguous data area
// addressed by per-row offset and length.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

var typeSize = [...]int32{
	T_any:     0,
	T_bool:    1,
	T_int8:    1,
	T_int16:   2,
	T_int32:   4,
	T_int64:   8,
	T_uint8:   1,
	T_uint16:  2,
	T_uint32:  4,
	T_uint64:  8,
	T_float32: 4,
	T_float64: 8,
	T_sel:     8,
	T_tuple:   24,
	T_varchar: 24,
}

var typeName = [...]string{
	T_any:     "any",
	T_bool:    "bool",
	T_int8:    "int8",
	T_int16:   "int16",
	T_int32:   "int32",
	T_int64:   "int64",
	T_uint8:   "uint8",
	T_uint16:  "uint16",
	T_uint32:  "uint32",
	T_uint64:  "uint64",
	T_float32: "float32",
	T_float64: "float64",
	T_sel:     "sel",
	T_tuple:   "tuple",
	T_varchar: "varchar",
}

func New(oid T) Type {
	return Type{Oid: oid, Size: oid.TypeLen()}
}

func (t Type) Eq(b Type) bool {
	return t.Oid == b.Oid
}

func (t Type) String() string {
	return t.Oid.String()
}

func (t T) String() string {
	if int(t) < len(typeName) {
		return typeName[t]
	}
	return fmt.Sprintf("unknown type %d", t)
}

func (t T) TypeLen() int32 {
	if int(t) < len(typeSize) {
		return typeSize[t]
	}
	return 0
}

// FixedWidth reports whether values of the type live in a flat typed
// slice rather than a Bytes area.
func (t T) FixedWidth() bool {
	return t != T_varchar && t != T_tuple
}

func (b *Bytes) Get(i int64) []byte {
	return b.Data[b.Offsets[i] : b.Offsets[i]+b.Lengths[i]]
}

func (b *Bytes) Len() int {
	return len(b.Offsets)
}

func (b *Bytes) Append(vs [][]byte) {
	o := uint32(len(b.Data))
	for _, v := range vs {
		b.Offsets = append(b.Offsets, o)
		b.Data = append(b.Data, v...)
		b.Lengths = append(b.Lengths, uint32(len(v)))
		o += uint32(len(v))
	}
}

func (b *Bytes) String() string {
	return fmt.Sprintf("%v", b.Data)
}
