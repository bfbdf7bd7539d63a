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

// Package mempool is a size-classed slab allocator for column buffers.
// Every slab starts with an 8-byte reference count so that a buffer can
// be shared by the batch that produced it and any batch derived from it;
// the slab returns to its free list when the last holder frees it.
//
// A pool belongs to exactly one worker process and is not safe for
// concurrent use. Workers are shared-nothing, so this is not a
// restriction in practice.
package mempool

import (
	"encoding/binary"
)

const (
	// CountSize is the size of the reference count header.
	CountSize = 8
	// PageSize is the largest pooled slab; bigger requests fall through
	// to the Go heap.
	PageSize = 1 << 20

	minClass = 1 << 6
)

var OneCount = []byte{1, 0, 0, 0, 0, 0, 0, 0}

type Mempool struct {
	classes []class
}

type class struct {
	size int
	free [][]byte
}

func New() *Mempool {
	m := new(Mempool)
	for size := minClass; size <= PageSize; size *= 2 {
		m.classes = append(m.classes, class{size: size})
	}
	return m
}

// Alloc returns a slab of at least size+CountSize bytes with the
// reference count initialized to one.
func (m *Mempool) Alloc(size int) []byte {
	size += CountSize
	for i := range m.classes {
		c := &m.classes[i]
		if c.size < size {
			continue
		}
		if n := len(c.free); n > 0 {
			data := c.free[n-1]
			c.free = c.free[:n-1]
			copy(data, OneCount)
			return data[:size]
		}
		data := make([]byte, size, c.size)
		copy(data, OneCount)
		return data
	}
	data := make([]byte, size)
	copy(data, OneCount)
	return data
}

// Free decrements the slab's reference count and reclaims the slab when
// it reaches zero. It reports whether the slab was reclaimed.
func (m *Mempool) Free(data []byte) bool {
	cnt := binary.LittleEndian.Uint64(data) - 1
	binary.LittleEndian.PutUint64(data, cnt)
	if cnt > 0 {
		return false
	}
	size := cap(data)
	for i := range m.classes {
		if m.classes[i].size == size {
			m.classes[i].free = append(m.classes[i].free, data[:size])
			break
		}
	}
	return true
}

// Retain increments the slab's reference count.
func Retain(data []byte) {
	binary.LittleEndian.PutUint64(data, binary.LittleEndian.Uint64(data)+1)
}

// Count returns the slab's current reference count.
func Count(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}
