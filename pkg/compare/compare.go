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

// Package compare provides two-slot row comparators used by the top-N
// heap: slot 0 holds the candidate buffer, slot 1 the incoming batch.
// NULL rows order after every value regardless of direction.
package compare

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type Compare interface {
	// Vector returns the slot-0 vector.
	Vector() *vector.Vector
	// Set binds a vector to a slot.
	Set(idx int, vec *vector.Vector)
	// Compare orders row i of slot vi against row j of slot vj,
	// returning <0, 0 or >0.
	Compare(vi, vj int, i, j int64) int
	// Copy overwrites row dst of slot vdst with row src of slot vsrc.
	Copy(vsrc, vdst int, src, dst int64, proc *process.Process) error
}

func New(typ types.T, desc bool) Compare {
	switch typ {
	case types.T_int64:
		return &int64Compare{desc: desc}
	case types.T_uint64:
		return &uint64Compare{desc: desc}
	case types.T_float64:
		return &float64Compare{desc: desc}
	case types.T_varchar:
		return &bytesCompare{desc: desc}
	}
	panic(moerr.NewInternal("no comparator for type %s", typ))
}

func nullCompare(a, b *vector.Vector, i, j int64) (int, bool) {
	in := a.Nsp.Contains(uint64(i))
	jn := b.Nsp.Contains(uint64(j))
	switch {
	case in && jn:
		return 0, true
	case in:
		return 1, true
	case jn:
		return -1, true
	}
	return 0, false
}

func copyNull(src, dst *vector.Vector, i, j int64) {
	if src.Nsp.Contains(uint64(i)) {
		dst.Nsp.Add(uint64(j))
	} else {
		dst.Nsp.Del(uint64(j))
	}
}
