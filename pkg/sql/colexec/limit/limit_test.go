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

package limit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
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

func newUint64Batch(vs []uint64) *batch.Batch {
	vec := vector.New(types.New(types.T_uint64))
	vec.Ref = 1
	vec.SetCol(vs)
	bat := batch.New(true, []string{"number"})
	bat.Vecs[0] = vec
	return bat
}

func TestLimit(t *testing.T) {
	proc := newTestProcess()
	n := &Argument{Limit: 4}
	require.NoError(t, Prepare(proc, n))

	proc.Reg.Ax = newUint64Batch([]uint64{0, 1, 2})
	end, err := Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)
	require.Equal(t, 3, proc.Reg.Ax.(*batch.Batch).Length())

	// overflowing batch is truncated to the remaining quota
	proc.Reg.Ax = newUint64Batch([]uint64{3, 4, 5})
	end, err = Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)
	require.Equal(t, []uint64{3}, proc.Reg.Ax.(*batch.Batch).Vecs[0].Col)

	// quota met: the stream ends
	proc.Reg.Ax = newUint64Batch([]uint64{6})
	end, err = Call(proc, n)
	require.NoError(t, err)
	require.True(t, end)
	require.Nil(t, proc.Reg.Ax)
}

func TestLimitPassesFlush(t *testing.T) {
	proc := newTestProcess()
	n := &Argument{Limit: 1}
	proc.Reg.Ax = nil
	end, err := Call(proc, n)
	require.NoError(t, err)
	require.False(t, end)
}
