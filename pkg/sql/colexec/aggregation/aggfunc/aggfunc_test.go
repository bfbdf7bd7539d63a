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

package aggfunc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/guest"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func newTestProcess() *process.Process {
	hm := host.New(1 << 30)
	gm := guest.New(1<<30, hm)
	return process.New(gm, mempool.New())
}

func newInt64Vector(vs []int64) *vector.Vector {
	vec := vector.New(types.New(types.T_int64))
	vec.SetCol(vs)
	return vec
}

func TestReturnType(t *testing.T) {
	i64 := types.New(types.T_int64)
	require.Equal(t, types.T_float64, ReturnType(aggregation.Avg, i64).Oid)
	require.Equal(t, types.T_int64, ReturnType(aggregation.Count, types.New(types.T_uint64)).Oid)
	require.Equal(t, types.T_int64, ReturnType(aggregation.Sum, i64).Oid)
	require.Equal(t, types.T_int64, ReturnType(aggregation.Min, i64).Oid)
}

func TestSum(t *testing.T) {
	agg, err := New(aggregation.Sum, types.New(types.T_int64))
	require.NoError(t, err)
	require.NoError(t, agg.Fill(nil, newInt64Vector([]int64{1, 2, 3})))
	require.NoError(t, agg.Fill([]int64{0, 2}, newInt64Vector([]int64{10, 20, 30})))
	require.Equal(t, []int64{46}, agg.Eval())

	agg.Reset()
	// the sum over zero rows is zero, not NULL
	require.Equal(t, []int64{0}, agg.Eval())
}

func TestSumSkipsNulls(t *testing.T) {
	agg, err := New(aggregation.Sum, types.New(types.T_int64))
	require.NoError(t, err)
	vec := newInt64Vector([]int64{1, 100, 2})
	vec.Nsp.Add(1)
	require.NoError(t, agg.Fill(nil, vec))
	require.Equal(t, []int64{3}, agg.Eval())
}

func TestMinMax(t *testing.T) {
	mn, err := New(aggregation.Min, types.New(types.T_int64))
	require.NoError(t, err)
	mx, err := New(aggregation.Max, types.New(types.T_int64))
	require.NoError(t, err)

	vec := newInt64Vector([]int64{5, -3, 9})
	require.NoError(t, mn.Fill(nil, vec))
	require.NoError(t, mx.Fill(nil, vec))
	require.Equal(t, []int64{-3}, mn.Eval())
	require.Equal(t, []int64{9}, mx.Eval())

	// min over zero rows is NULL
	mn.Reset()
	require.Nil(t, mn.Eval())
}

func TestAvg(t *testing.T) {
	agg, err := New(aggregation.Avg, types.New(types.T_int64))
	require.NoError(t, err)
	require.NoError(t, agg.Fill(nil, newInt64Vector([]int64{1, 2, 3, 4})))
	require.Equal(t, []float64{2.5}, agg.Eval())

	agg.Reset()
	require.Nil(t, agg.Eval())
}

func TestCount(t *testing.T) {
	agg, err := New(aggregation.Count, types.New(types.T_int64))
	require.NoError(t, err)
	vec := newInt64Vector([]int64{1, 2, 3})
	vec.Nsp.Add(0)
	require.NoError(t, agg.Fill(nil, vec))
	require.Equal(t, []int64{2}, agg.Eval())

	star, err := New(aggregation.StarCount, types.New(types.T_int64))
	require.NoError(t, err)
	require.NoError(t, star.Fill(nil, vec))
	require.Equal(t, []int64{3}, star.Eval())
}

func TestMerge(t *testing.T) {
	a, err := New(aggregation.Sum, types.New(types.T_int64))
	require.NoError(t, err)
	b := a.Dup()

	require.NoError(t, a.Fill(nil, newInt64Vector([]int64{1, 2})))
	require.NoError(t, b.Fill(nil, newInt64Vector([]int64{10})))
	require.NoError(t, a.Merge(b))
	require.Equal(t, []int64{13}, a.Eval())

	other, err := New(aggregation.Avg, types.New(types.T_int64))
	require.NoError(t, err)
	require.Error(t, a.Merge(other))
}

func TestEvalCopy(t *testing.T) {
	proc := newTestProcess()

	agg, err := New(aggregation.Sum, types.New(types.T_int64))
	require.NoError(t, err)
	require.NoError(t, agg.Fill(nil, newInt64Vector([]int64{4, 5})))
	vec, err := agg.EvalCopy(proc)
	require.NoError(t, err)
	require.Equal(t, []int64{9}, vec.Col)
	vec.Free(proc)

	// an empty min materializes a NULL row
	mn, err := New(aggregation.Min, types.New(types.T_int64))
	require.NoError(t, err)
	vec, err = mn.EvalCopy(proc)
	require.NoError(t, err)
	require.Equal(t, 1, vec.Length())
	require.True(t, vec.Nsp.Contains(0))
	vec.Free(proc)
	require.Equal(t, int64(0), proc.Size())
}
