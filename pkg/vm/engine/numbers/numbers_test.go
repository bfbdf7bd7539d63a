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

package numbers

import (
	"testing"

	"github.com/stretchr/testify/require"

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

func TestParts(t *testing.T) {
	for _, total := range []uint64{0, 1, 7, 8192, 1000000} {
		for _, n := range []int{1, 2, 3, 16} {
			parts := Parts(total, n)
			if total == 0 {
				require.Nil(t, parts)
				continue
			}
			require.LessOrEqual(t, len(parts), n)
			// contiguous cover of [0, total), every part non-empty
			var cur uint64
			for _, part := range parts {
				require.Equal(t, cur, part.Start)
				require.Greater(t, part.End, part.Start)
				cur = part.End
			}
			require.Equal(t, total, cur)
		}
	}
}

func TestRelation(t *testing.T) {
	e := New()
	_, err := e.Relation("users", 10)
	require.Error(t, err)

	r, err := e.Relation("numbers", 100)
	require.NoError(t, err)
	require.Equal(t, int64(100), r.Rows())
	attrs := r.Attributes()
	require.Len(t, attrs, 1)
	require.Equal(t, Attr, attrs[0].Name)
}

func TestRead(t *testing.T) {
	proc := newTestProcess()
	proc.Lim.BatchRows = 10

	rs, err := NewRelation(25).NewReaders(2)
	require.NoError(t, err)
	require.Len(t, rs, 2)

	var got []uint64
	for _, r := range rs {
		for {
			bat, err := r.Read(proc, []uint64{1}, []string{Attr})
			require.NoError(t, err)
			if bat == nil {
				break
			}
			require.LessOrEqual(t, bat.Length(), 10)
			got = append(got, bat.Vecs[0].Col.([]uint64)...)
			bat.Free(proc)
		}
	}
	require.Len(t, got, 25)
	for i, v := range got {
		require.Equal(t, uint64(i), v)
	}
	require.Equal(t, int64(0), proc.Size())
}

func TestReadMoreReadersThanRows(t *testing.T) {
	proc := newTestProcess()

	rs, err := NewRelation(3).NewReaders(8)
	require.NoError(t, err)
	require.Len(t, rs, 8)

	var rows int
	for _, r := range rs {
		for {
			bat, err := r.Read(proc, []uint64{1}, []string{Attr})
			require.NoError(t, err)
			if bat == nil {
				break
			}
			rows += bat.Length()
			bat.Free(proc)
		}
	}
	require.Equal(t, 3, rows)
}
