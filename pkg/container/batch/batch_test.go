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

package batch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/guest"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func newInt64Vector(vs []int64) *vector.Vector {
	vec := vector.New(types.New(types.T_int64))
	vec.SetCol(vs)
	return vec
}

func TestGetVector(t *testing.T) {
	bat := New(true, []string{"a", "b"})
	bat.Vecs[0] = newInt64Vector([]int64{1})
	bat.Vecs[1] = newInt64Vector([]int64{2})

	vec, err := bat.GetVector("b")
	require.NoError(t, err)
	require.Same(t, bat.Vecs[1], vec)

	_, err = bat.GetVector("c")
	require.Error(t, err)
}

func TestLength(t *testing.T) {
	bat := New(true, nil)
	require.Equal(t, 0, bat.Length())

	bat = New(true, []string{"a"})
	bat.Vecs[0] = newInt64Vector([]int64{1, 2, 3})
	require.Equal(t, 3, bat.Length())
}

func TestCheck(t *testing.T) {
	bat := New(true, []string{"a", "b"})
	bat.Vecs[0] = newInt64Vector([]int64{1, 2})
	bat.Vecs[1] = newInt64Vector([]int64{3, 4})
	require.NoError(t, bat.Check())

	bat.Vecs[1] = newInt64Vector([]int64{3})
	require.Error(t, bat.Check())

	bat = New(true, []string{"a", "a"})
	require.Error(t, bat.Check())
}

func TestFree(t *testing.T) {
	hm := host.New(1 << 30)
	proc := process.New(guest.New(1<<30, hm), mempool.New())

	data, err := proc.Alloc(16)
	require.NoError(t, err)
	vec := vector.New(types.New(types.T_int64))
	vec.Data = data
	vec.SetCol(make([]int64, 2))

	bat := New(true, []string{"a"})
	bat.Vecs[0] = vec
	bat.Free(proc)
	require.Equal(t, int64(0), proc.Size())
}
