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

package projection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend/overload"
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

func TestProjection(t *testing.T) {
	proc := newTestProcess()
	number := &extend.Attribute{Name: "number", Type: types.T_uint64}
	n := &Argument{
		As: []string{"number", "double"},
		Es: []extend.Extend{
			number,
			&extend.BinaryExtend{
				Op:    overload.Mult,
				Left:  number,
				Right: extend.NewUint64Value(2),
			},
		},
	}
	require.NoError(t, Prepare(proc, n))

	proc.Reg.Ax = newUint64Batch("number", []uint64{1, 2, 3})
	end, err := Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)

	bat := proc.Reg.Ax.(*batch.Batch)
	require.Equal(t, []string{"number", "double"}, bat.Attrs)
	require.Equal(t, []uint64{1, 2, 3}, bat.Vecs[0].Col)
	require.Equal(t, []uint64{2, 4, 6}, bat.Vecs[1].Col)
	for _, vec := range bat.Vecs {
		require.Equal(t, uint64(1), vec.Ref)
	}
}

func TestProjectionPassesFlush(t *testing.T) {
	proc := newTestProcess()
	n := &Argument{}
	proc.Reg.Ax = nil
	end, err := Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)
	require.Nil(t, proc.Reg.Ax)
}
