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

package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocFree(t *testing.T) {
	m := New()
	data := m.Alloc(100)
	require.Equal(t, 100+CountSize, len(data))
	require.Equal(t, uint64(1), Count(data))
	require.True(t, m.Free(data))
}

func TestRetain(t *testing.T) {
	m := New()
	data := m.Alloc(64)
	Retain(data)
	require.Equal(t, uint64(2), Count(data))
	require.False(t, m.Free(data))
	require.True(t, m.Free(data))
}

func TestReuse(t *testing.T) {
	m := New()
	data := m.Alloc(64)
	require.True(t, m.Free(data))
	// same class comes back off the free list with a fresh count
	again := m.Alloc(64)
	require.Equal(t, uint64(1), Count(again))
	require.Equal(t, cap(data), cap(again))
}

func TestOversized(t *testing.T) {
	m := New()
	data := m.Alloc(PageSize * 2)
	require.Equal(t, PageSize*2+CountSize, len(data))
	require.True(t, m.Free(data))
}
