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
package gt

var (
	Int64Gt         func([]int64, []int64, []int64) []int64
	Int64GtScalar   func(int64, []int64, []int64) []int64
	Uint64Gt        func([]uint64, []uint64, []int64) []int64
	Uint64GtScalar  func(uint64, []uint64, []int64) []int64
	Float64Gt       func([]float64, []float64, []int64) []int64
	Float64GtScalar func(float64, []float64, []int64) []int64
)

func init() {
	Int64Gt = int64Gt
	Int64GtScalar = int64GtScalar
	Uint64Gt = uint64Gt
	Uint64GtScalar = uint64GtScalar
	Float64Gt = float64Gt
	Float64GtScalar = float64GtScalar
}

func int64Gt(xs, ys []int64, rs []int64) []int64 {
	for i, x := range xs {
		if x > ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func int64GtScalar(x int64, ys []int64, rs []int64) []int64 {
	for i, y := range ys {
		if y > x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64Gt(xs, ys []uint64, rs []int64) []int64 {
	for i, x := range xs {
		if x > ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64GtScalar(x uint64, ys []uint64, rs []int64) []int64 {
	for i, y := range ys {
		if y > x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64Gt(xs, ys []float64, rs []int64) []int64 {
	for i, x := range xs {
		if x > ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64GtScalar(x float64, ys []float64, rs []int64) []int64 {
	for i, y := range ys {
		if y > x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}
