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

package overload

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

func newTestProcess() *process.Process {
	hm := host.New(1 << 30)
	gm := guest.New(1<<30, hm)
	return process.New(gm, mempool.New())
}

func newInt64Vector(vs []int64, ref uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_int64))
	vec.Ref = ref
	vec.SetCol(vs)
	return vec
}

func newFloat64Vector(vs []float64, ref uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_float64))
	vec.Ref = ref
	vec.SetCol(vs)
	return vec
}

func newUint64Vector(vs []uint64, ref uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_uint64))
	vec.Ref = ref
	vec.SetCol(vs)
	return vec
}

func TestPlus(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{1, 2, 3}, 1)
	rv := newInt64Vector([]int64{10, 20, 30}, 1)
	vec, err := BinaryEval(Plus, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{11, 22, 33}, vec.Col)
	// referenced inputs are left intact
	require.Equal(t, []int64{1, 2, 3}, lv.Col)
	require.Equal(t, []int64{10, 20, 30}, rv.Col)
}

func TestPlusStealsScratch(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{1, 2, 3}, 0)
	rv := newInt64Vector([]int64{10, 20, 30}, 1)
	vec, err := BinaryEval(Plus, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	require.Same(t, lv, vec)
	require.Equal(t, []int64{11, 22, 33}, vec.Col)
}

func TestPlusStealMergesNulls(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{1, 2, 3}, 0)
	rv := newInt64Vector([]int64{10, 20, 30}, 1)
	lv.Nsp.Add(1)
	rv.Nsp.Add(2)
	vec, err := BinaryEval(Plus, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	require.Same(t, lv, vec)
	// the stolen operand's mask must still pick up the other side's bits
	require.True(t, vec.Nsp.Contains(1))
	require.True(t, vec.Nsp.Contains(2))
	require.Equal(t, 2, vec.Nsp.Length())
}

func TestPlusConstants(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{5}, 1)
	rv := newInt64Vector([]int64{7}, 1)
	vec, err := BinaryEval(Plus, types.T_int64, types.T_int64, true, true, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{12}, vec.Col)
}

func TestMinusScalarFlip(t *testing.T) {
	proc := newTestProcess()
	// 10 - [1, 2, 3]
	lv := newInt64Vector([]int64{10}, 1)
	rv := newInt64Vector([]int64{1, 2, 3}, 1)
	vec, err := BinaryEval(Minus, types.T_int64, types.T_int64, true, false, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{9, 8, 7}, vec.Col)

	// [1, 2, 3] - 10
	vec, err = BinaryEval(Minus, types.T_int64, types.T_int64, false, true, rv, lv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{-9, -8, -7}, vec.Col)
}

func TestDivByZero(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{1, 2}, 1)
	rv := newInt64Vector([]int64{1, 0}, 1)
	_, err := BinaryEval(Div, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.Error(t, err)

	_, err = BinaryEval(Mod, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.Error(t, err)
}

func TestFloatDivByZero(t *testing.T) {
	proc := newTestProcess()
	lv := newFloat64Vector([]float64{1}, 1)
	rv := newFloat64Vector([]float64{0}, 1)
	vec, err := BinaryEval(Div, types.T_float64, types.T_float64, false, false, lv, rv, proc)
	require.NoError(t, err)
	vs := vec.Col.([]float64)
	require.True(t, vs[0] > 1e300) // +Inf per IEEE-754
}

func TestDivPromotesMixedWidths(t *testing.T) {
	proc := newTestProcess()
	lv := newUint64Vector([]uint64{10, 21}, 1)
	rv := newInt64Vector([]int64{4, 2}, 1)
	vec, err := BinaryEval(Div, types.T_uint64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, types.T_float64, vec.Typ.Oid)
	require.Equal(t, []float64{2.5, 10.5}, vec.Col)

	// flipped operand widths promote the same way
	vec, err = BinaryEval(Div, types.T_int64, types.T_uint64, false, false, rv, lv, proc)
	require.NoError(t, err)
	require.Equal(t, types.T_float64, vec.Typ.Oid)
	require.Equal(t, []float64{0.4, float64(2) / 21}, vec.Col)

	require.Equal(t, types.T_float64, GetBinOpReturnType(Div, types.T_uint64, types.T_int64))
	require.Equal(t, types.T_float64, GetBinOpReturnType(Div, types.T_int64, types.T_uint64))
}

func TestDivPromotedScalars(t *testing.T) {
	proc := newTestProcess()
	lv := newUint64Vector([]uint64{9}, 1)
	rv := newInt64Vector([]int64{2}, 1)
	vec, err := BinaryEval(Div, types.T_uint64, types.T_int64, true, true, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []float64{4.5}, vec.Col)

	// 9 / [2, 3]
	rvs := newInt64Vector([]int64{2, 3}, 1)
	vec, err = BinaryEval(Div, types.T_uint64, types.T_int64, true, false, lv, rvs, proc)
	require.NoError(t, err)
	require.Equal(t, []float64{4.5, 3}, vec.Col)

	// [9] / 2 with a vector left side
	lvs := newUint64Vector([]uint64{8, 9}, 1)
	vec, err = BinaryEval(Div, types.T_uint64, types.T_int64, false, true, lvs, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4.5}, vec.Col)
}

func TestDivPromotedZeroDivisor(t *testing.T) {
	proc := newTestProcess()
	lv := newUint64Vector([]uint64{1}, 1)
	rv := newInt64Vector([]int64{0}, 1)
	// promoted division keeps the float policy: no error, IEEE infinity
	vec, err := BinaryEval(Div, types.T_uint64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	vs := vec.Col.([]float64)
	require.True(t, vs[0] > 1e300)
}

func TestTypeMismatch(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{1}, 1)
	rv := newFloat64Vector([]float64{1}, 1)
	_, err := BinaryEval(Plus, types.T_int64, types.T_float64, false, false, lv, rv, proc)
	require.Error(t, err)
	require.Equal(t, types.T_any, GetBinOpReturnType(Plus, types.T_int64, types.T_float64))
	require.Equal(t, types.T_int64, GetBinOpReturnType(Plus, types.T_int64, types.T_int64))
}

func TestComparison(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{5, 1, 7, 3}, 1)
	rv := newInt64Vector([]int64{4, 4, 4, 4}, 1)
	vec, err := BinaryEval(LT, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, types.T_sel, vec.Typ.Oid)
	require.Equal(t, []int64{1, 3}, vec.Col)
}

func TestComparisonScalarFlip(t *testing.T) {
	proc := newTestProcess()
	// 4 < [5, 1, 7, 3] selects rows 0 and 2
	lv := newInt64Vector([]int64{4}, 1)
	rv := newInt64Vector([]int64{5, 1, 7, 3}, 1)
	vec, err := BinaryEval(LT, types.T_int64, types.T_int64, true, false, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2}, vec.Col)

	// [5, 1, 7, 3] < 4 selects rows 1 and 3
	vec, err = BinaryEval(LT, types.T_int64, types.T_int64, false, true, rv, lv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3}, vec.Col)
}

func TestComparisonDropsNulls(t *testing.T) {
	proc := newTestProcess()
	lv := newInt64Vector([]int64{1, 1, 1}, 1)
	rv := newInt64Vector([]int64{1, 1, 1}, 1)
	lv.Nsp.Add(1)
	vec, err := BinaryEval(EQ, types.T_int64, types.T_int64, false, false, lv, rv, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 2}, vec.Col)
}

func TestUnaryMinus(t *testing.T) {
	proc := newTestProcess()
	v := newInt64Vector([]int64{1, -2, 3}, 1)
	vec, err := UnaryEval(UnaryMinus, types.T_int64, false, v, proc)
	require.NoError(t, err)
	require.Equal(t, []int64{-1, 2, -3}, vec.Col)

	// negation of an unsigned column is a type error
	u := vector.New(types.New(types.T_uint64))
	u.Ref = 1
	u.SetCol([]uint64{1})
	_, err = UnaryEval(UnaryMinus, types.T_uint64, false, u, proc)
	require.Error(t, err)
}
