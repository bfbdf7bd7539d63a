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

package group

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/aggfunc"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
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

func newUint64Batch(attr string, vs []uint64) *batch.Batch {
	vec := vector.New(types.New(types.T_uint64))
	vec.Ref = 1
	vec.SetCol(vs)
	bat := batch.New(true, []string{attr})
	bat.Vecs[0] = vec
	return bat
}

func TestEncodeRow(t *testing.T) {
	vec := vector.New(types.New(types.T_uint64))
	vec.SetCol([]uint64{7, 0})
	vec.Nsp.Add(1)

	a, err := EncodeRow(nil, []*vector.Vector{vec}, 0)
	require.NoError(t, err)
	require.Len(t, a, 9)
	require.Equal(t, byte(0), a[0])

	b, err := EncodeRow(nil, []*vector.Vector{vec}, 1)
	require.NoError(t, err)
	require.Equal(t, byte(1), b[0])
	require.NotEqual(t, string(a), string(b))
}

func TestAppendEval(t *testing.T) {
	agg, err := aggfunc.New(aggregation.Min, types.New(types.T_int64))
	require.NoError(t, err)

	vec := vector.New(types.New(types.T_int64))
	// empty state appends a NULL row
	require.NoError(t, AppendEval(vec, agg))
	require.Equal(t, 1, vec.Length())
	require.True(t, vec.Nsp.Contains(0))

	col := vector.New(types.New(types.T_int64))
	col.SetCol([]int64{4})
	require.NoError(t, agg.Fill(nil, col))
	require.NoError(t, AppendEval(vec, agg))
	require.Equal(t, []int64{0, 4}, vec.Col)
	require.False(t, vec.Nsp.Contains(1))
}

func TestGroupCall(t *testing.T) {
	proc := newTestProcess()

	agg, err := aggfunc.New(aggregation.Count, types.New(types.T_uint64))
	require.NoError(t, err)
	n := &Argument{
		As: []string{"v"},
		Gs: []extend.Extend{&extend.Attribute{Name: "v", Type: types.T_uint64}},
		Es: []aggregation.Extend{
			{Op: aggregation.Count, Name: "v", Alias: "count(v)", Agg: agg},
		},
	}
	require.NoError(t, Prepare(proc, n))

	proc.Reg.Ax = newUint64Batch("v", []uint64{1, 2, 1, 3})
	_, err = Call(proc, n)
	require.NoError(t, err)
	require.Nil(t, proc.Reg.Ax)

	proc.Reg.Ax = newUint64Batch("v", []uint64{2, 1})
	_, err = Call(proc, n)
	require.NoError(t, err)

	// flush emits the partial table once
	proc.Reg.Ax = nil
	_, err = Call(proc, n)
	require.NoError(t, err)
	tbl, ok := proc.Reg.Ax.(*Table)
	require.True(t, ok)

	// first-seen key order
	require.Equal(t, []uint64{1, 2, 3}, tbl.Bat.Vecs[0].Col)
	require.Len(t, tbl.Gs, 3)
	require.Equal(t, []int64{3}, tbl.Gs[0].Aggs[0].Eval())
	require.Equal(t, []int64{2}, tbl.Gs[1].Aggs[0].Eval())
	require.Equal(t, []int64{1}, tbl.Gs[2].Aggs[0].Eval())

	// a second flush pass emits nothing
	proc.Reg.Ax = nil
	_, err = Call(proc, n)
	require.NoError(t, err)
	require.Nil(t, proc.Reg.Ax)
}

func TestGroupNullKey(t *testing.T) {
	proc := newTestProcess()

	agg, err := aggfunc.New(aggregation.StarCount, types.New(types.T_uint64))
	require.NoError(t, err)
	n := &Argument{
		As: []string{"v"},
		Gs: []extend.Extend{&extend.Attribute{Name: "v", Type: types.T_uint64}},
		Es: []aggregation.Extend{
			{Op: aggregation.StarCount, Name: "v", Alias: "count(*)", Agg: agg},
		},
	}
	require.NoError(t, Prepare(proc, n))

	bat := newUint64Batch("v", []uint64{7, 7, 7})
	bat.Vecs[0].Nsp.Add(1)
	proc.Reg.Ax = bat
	_, err = Call(proc, n)
	require.NoError(t, err)

	proc.Reg.Ax = nil
	_, err = Call(proc, n)
	require.NoError(t, err)
	tbl := proc.Reg.Ax.(*Table)

	// the NULL key forms its own group
	require.Len(t, tbl.Gs, 2)
	require.Equal(t, []int64{2}, tbl.Gs[0].Aggs[0].Eval())
	require.Equal(t, []int64{1}, tbl.Gs[1].Aggs[0].Eval())
}
