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

// The kernels produce selection vectors: the row indexes for which the
// comparison holds, appended to rs.
package eq

var (
	Int64Eq         func([]int64, []int64, []int64) []int64
	Int64EqScalar   func(int64, []int64, []int64) []int64
	Uint64Eq        func([]uint64, []uint64, []int64) []int64
	Uint64EqScalar  func(uint64, []uint64, []int64) []int64
	Float64Eq       func([]float64, []float64, []int64) []int64
	Float64EqScalar func(float64, []float64, []int64) []int64
)

func init() {
	Int64Eq = int64Eq
	Int64EqScalar = int64EqScalar
	Uint64Eq = uint64Eq
	Uint64EqScalar = uint64EqScalar
	Float64Eq = float64Eq
	Float64EqScalar = float64EqScalar
}

func int64Eq(xs, ys []int64, rs []int64) []int64 {
	for i, x := range xs {
		if x == ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func int64EqScalar(x int64, ys []int64, rs []int64) []int64 {
	for i, y := range ys {
		if y == x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64Eq(xs, ys []uint64, rs []int64) []int64 {
	for i, x := range xs {
		if x == ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64EqScalar(x uint64, ys []uint64, rs []int64) []int64 {
	for i, y := range ys {
		if y == x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64Eq(xs, ys []float64, rs []int64) []int64 {
	for i, x := range xs {
		if x == ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64EqScalar(x float64, ys []float64, rs []int64) []int64 {
	for i, y := range ys {
		if y == x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}
