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

package restrict

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
	"github.com/datafusedev/fuse-query/pkg/vm/register"
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

func TestRestrict(t *testing.T) {
	proc := newTestProcess()
	n := &Argument{
		E: &extend.BinaryExtend{
			Op:    overload.LT,
			Left:  &extend.Attribute{Name: "number", Type: types.T_uint64},
			Right: extend.NewUint64Value(3),
		},
	}
	require.NoError(t, Prepare(proc, n))

	proc.Reg.Ax = newUint64Batch("number", []uint64{5, 0, 9, 2, 1})
	end, err := Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)

	bat := proc.Reg.Ax.(*batch.Batch)
	require.Equal(t, []uint64{0, 2, 1}, bat.Vecs[0].Col)
	require.Empty(t, bat.Sels)

	// the selection scratch vector was parked for reuse
	require.NotEmpty(t, proc.Reg.Ts)
	register.FreeRegisters(proc)
	require.Equal(t, int64(0), proc.Size())
}

func TestRestrictKeepsAll(t *testing.T) {
	proc := newTestProcess()
	n := &Argument{
		E: &extend.BinaryExtend{
			Op:    overload.GE,
			Left:  &extend.Attribute{Name: "number", Type: types.T_uint64},
			Right: extend.NewUint64Value(0),
		},
	}
	require.NoError(t, Prepare(proc, n))

	proc.Reg.Ax = newUint64Batch("number", []uint64{1, 2, 3})
	_, err := Call(proc, n)
	require.NoError(t, err)
	bat := proc.Reg.Ax.(*batch.Batch)
	require.Equal(t, []uint64{1, 2, 3}, bat.Vecs[0].Col)
}

func TestRestrictPassesFlush(t *testing.T) {
	proc := newTestProcess()
	n := &Argument{}
	proc.Reg.Ax = nil
	end, err := Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)
	require.Nil(t, proc.Reg.Ax)
}
