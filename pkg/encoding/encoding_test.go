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

package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	require.Equal(t, int64(-42), DecodeInt64(EncodeInt64(-42)))
	require.Equal(t, uint64(1<<63), DecodeUint64(EncodeUint64(1<<63)))
	require.Equal(t, 3.25, DecodeFloat64(EncodeFloat64(3.25)))
}

func TestSlicesShareMemory(t *testing.T) {
	xs := []int64{1, 2, 3}
	data := EncodeInt64Slice(xs)
	require.Equal(t, 24, len(data))

	ys := DecodeInt64Slice(data)
	require.Equal(t, xs, ys)
	ys[0] = 9
	require.Equal(t, int64(9), xs[0])

	us := DecodeUint64Slice(EncodeUint64Slice([]uint64{7, 8}))
	require.Equal(t, []uint64{7, 8}, us)

	fs := DecodeFloat64Slice(EncodeFloat64Slice([]float64{0.5}))
	require.Equal(t, []float64{0.5}, fs)

	bs := DecodeBoolSlice(EncodeBoolSlice([]bool{true, false}))
	require.Equal(t, []bool{true, false}, bs)
}
