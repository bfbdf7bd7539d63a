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
package ge

var (
	Int64Ge         func([]int64, []int64, []int64) []int64
	Int64GeScalar   func(int64, []int64, []int64) []int64
	Uint64Ge        func([]uint64, []uint64, []int64) []int64
	Uint64GeScalar  func(uint64, []uint64, []int64) []int64
	Float64Ge       func([]float64, []float64, []int64) []int64
	Float64GeScalar func(float64, []float64, []int64) []int64
)

func init() {
	Int64Ge = int64Ge
	Int64GeScalar = int64GeScalar
	Uint64Ge = uint64Ge
	Uint64GeScalar = uint64GeScalar
	Float64Ge = float64Ge
	Float64GeScalar = float64GeScalar
}

func int64Ge(xs, ys []int64, rs []int64) []int64 {
	for i, x := range xs {
		if x >= ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func int64GeScalar(x int64, ys []int64, rs []int64) []int64 {
	for i, y := range ys {
		if y >= x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64Ge(xs, ys []uint64, rs []int64) []int64 {
	for i, x := range xs {
		if x >= ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64GeScalar(x uint64, ys []uint64, rs []int64) []int64 {
	for i, y := range ys {
		if y >= x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64Ge(xs, ys []float64, rs []int64) []int64 {
	for i, x := range xs {
		if x >= ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64GeScalar(x float64, ys []float64, rs []int64) []int64 {
	for i, y := range ys {
		if y >= x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}
