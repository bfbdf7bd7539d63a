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
package le

var (
	Int64Le         func([]int64, []int64, []int64) []int64
	Int64LeScalar   func(int64, []int64, []int64) []int64
	Uint64Le        func([]uint64, []uint64, []int64) []int64
	Uint64LeScalar  func(uint64, []uint64, []int64) []int64
	Float64Le       func([]float64, []float64, []int64) []int64
	Float64LeScalar func(float64, []float64, []int64) []int64
)

func init() {
	Int64Le = int64Le
	Int64LeScalar = int64LeScalar
	Uint64Le = uint64Le
	Uint64LeScalar = uint64LeScalar
	Float64Le = float64Le
	Float64LeScalar = float64LeScalar
}

func int64Le(xs, ys []int64, rs []int64) []int64 {
	for i, x := range xs {
		if x <= ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func int64LeScalar(x int64, ys []int64, rs []int64) []int64 {
	for i, y := range ys {
		if y <= x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64Le(xs, ys []uint64, rs []int64) []int64 {
	for i, x := range xs {
		if x <= ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64LeScalar(x uint64, ys []uint64, rs []int64) []int64 {
	for i, y := range ys {
		if y <= x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64Le(xs, ys []float64, rs []int64) []int64 {
	for i, x := range xs {
		if x <= ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64LeScalar(x float64, ys []float64, rs []int64) []int64 {
	for i, y := range ys {
		if y <= x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}
