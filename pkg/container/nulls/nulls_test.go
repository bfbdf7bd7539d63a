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

package nulls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddDel(t *testing.T) {
	n := New()
	require.False(t, n.Any())
	require.Equal(t, 0, n.Length())
	require.False(t, n.Contains(3))

	n.Add(3, 7, 7)
	require.True(t, n.Any())
	require.Equal(t, 2, n.Length())
	require.True(t, n.Contains(3))
	require.True(t, n.Contains(7))
	require.False(t, n.Contains(4))

	n.Del(3)
	require.False(t, n.Contains(3))
	require.Equal(t, 1, n.Length())
}

func TestSet(t *testing.T) {
	m := New()
	m.Add(1, 5)

	n := New()
	n.Set(m)
	require.True(t, n.Contains(1))
	require.True(t, n.Contains(5))

	// clone, not alias
	m.Add(9)
	require.False(t, n.Contains(9))

	n.Set(New())
	require.False(t, n.Any())
}

func TestOr(t *testing.T) {
	a, b := New(), New()
	a.Add(1)
	b.Add(2)

	r := New()
	Or(a, b, r)
	require.True(t, r.Contains(1))
	require.True(t, r.Contains(2))
	require.Equal(t, 2, r.Length())

	Or(New(), New(), r)
	require.False(t, r.Any())
}

func TestOrAliased(t *testing.T) {
	// in-place kernels pass an input as the output
	a, b := New(), New()
	a.Add(1)
	b.Add(2)
	Or(a, b, a)
	require.True(t, a.Contains(1))
	require.True(t, a.Contains(2))
	require.Equal(t, 2, a.Length())

	Or(a, New(), a)
	require.Equal(t, 2, a.Length())

	c := New()
	c.Add(3)
	Or(New(), c, c)
	require.True(t, c.Contains(3))
	require.Equal(t, 1, c.Length())
}

func TestFilter(t *testing.T) {
	n := New()
	n.Add(0, 2)
	// rows 3, 2, 0 survive the selection; old rows 2 and 0 were NULL.
	f := n.Filter([]int64{3, 2, 0})
	require.False(t, f.Contains(0))
	require.True(t, f.Contains(1))
	require.True(t, f.Contains(2))

	require.Equal(t, 2, n.FilterCount([]int64{0, 1, 2}))
	require.Equal(t, 0, n.FilterCount([]int64{1, 3}))
	require.Equal(t, 0, New().FilterCount([]int64{0, 1}))
}
