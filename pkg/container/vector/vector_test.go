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

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/types"
)

func TestAppend(t *testing.T) {
	v := New(types.New(types.T_int64))
	require.Equal(t, 0, v.Length())
	require.NoError(t, v.Append([]int64{1, 2}))
	require.NoError(t, v.Append([]int64{3}))
	require.Equal(t, 3, v.Length())
	require.Equal(t, []int64{1, 2, 3}, v.Col)

	err := v.Append([]float64{0.5})
	require.Error(t, err)
}

func TestUnionOne(t *testing.T) {
	w := New(types.New(types.T_uint64))
	require.NoError(t, w.Append([]uint64{10, 20, 30}))
	w.Nsp.Add(1)

	v := New(types.New(types.T_uint64))
	require.NoError(t, v.UnionOne(w, 2))
	require.NoError(t, v.UnionOne(w, 1))
	require.Equal(t, []uint64{30, 20}, v.Col)
	require.False(t, v.Nsp.Contains(0))
	require.True(t, v.Nsp.Contains(1))
}

func TestShuffle(t *testing.T) {
	v := New(types.New(types.T_int64))
	require.NoError(t, v.Append([]int64{10, 20, 30, 40}))
	v.Nsp.Add(3)

	v.Shuffle([]int64{3, 0, 2})
	require.Equal(t, []int64{40, 10, 30}, v.Col)
	require.True(t, v.Nsp.Contains(0))
	require.False(t, v.Nsp.Contains(1))
	require.False(t, v.Nsp.Contains(2))
}

func TestShuffleVarchar(t *testing.T) {
	v := New(types.New(types.T_varchar))
	require.NoError(t, v.Append([][]byte{[]byte("a"), []byte("bb"), []byte("ccc")}))
	v.Shuffle([]int64{2, 0})
	col := v.Col.(*types.Bytes)
	require.Equal(t, 2, col.Len())
	require.Equal(t, []byte("ccc"), col.Get(0))
	require.Equal(t, []byte("a"), col.Get(1))
}
