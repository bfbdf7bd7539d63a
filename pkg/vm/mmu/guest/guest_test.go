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

package guest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
)

func TestGuestLimit(t *testing.T) {
	hm := host.New(1 << 20)
	gm := New(1<<10, hm)

	require.NoError(t, gm.Alloc(512))
	require.Equal(t, int64(512), gm.Size())
	require.Equal(t, int64(512), gm.HostSize())

	err := gm.Alloc(1024)
	require.Error(t, err)
	require.Equal(t, int64(512), gm.Size())

	gm.Free(512)
	require.Equal(t, int64(0), gm.Size())
	require.Equal(t, int64(0), hm.Size())
}

func TestHostLimitSharedByGuests(t *testing.T) {
	hm := host.New(1 << 10)
	a := New(1<<10, hm)
	b := New(1<<10, hm)

	require.NoError(t, a.Alloc(768))
	// b is within its own limit but the host is nearly full
	err := b.Alloc(512)
	require.Error(t, err)

	a.Free(768)
	require.NoError(t, b.Alloc(512))
	b.Free(512)
}

func TestFreeAcrossGuests(t *testing.T) {
	hm := host.New(1 << 20)
	producer := New(1<<20, hm)
	consumer := New(1<<20, hm)

	// batches routinely cross from a worker to the merge side, so the
	// bytes may be charged to one guest and released by another; the
	// host must get every byte back
	require.NoError(t, producer.Alloc(4096))
	require.NoError(t, consumer.Alloc(1024))
	consumer.Free(4096)
	consumer.Free(1024)
	require.Equal(t, int64(0), hm.Size())
	require.Equal(t, int64(0), consumer.Size())

	// the repaid budget is usable again
	other := New(1<<20, hm)
	require.NoError(t, other.Alloc(1<<19))
	other.Free(1 << 19)
	require.Equal(t, int64(0), hm.Size())
}
