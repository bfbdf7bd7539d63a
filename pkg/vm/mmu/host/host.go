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

// Package host accounts memory across every query running in the process.
package host

import "sync/atomic"

type Mmu struct {
	size  int64
	Limit int64
}

func New(limit int64) *Mmu {
	return &Mmu{Limit: limit}
}

func (m *Mmu) Size() int64 {
	return atomic.LoadInt64(&m.size)
}

func (m *Mmu) Alloc(size int64) {
	atomic.AddInt64(&m.size, size)
}

func (m *Mmu) Free(size int64) {
	atomic.AddInt64(&m.size, -size)
}
