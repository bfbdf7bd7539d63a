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
package lt

var (
	Int64Lt         func([]int64, []int64, []int64) []int64
	Int64LtScalar   func(int64, []int64, []int64) []int64
	Uint64Lt        func([]uint64, []uint64, []int64) []int64
	Uint64LtScalar  func(uint64, []uint64, []int64) []int64
	Float64Lt       func([]float64, []float64, []int64) []int64
	Float64LtScalar func(float64, []float64, []int64) []int64
)

func init() {
	Int64Lt = int64Lt
	Int64LtScalar = int64LtScalar
	Uint64Lt = uint64Lt
	Uint64LtScalar = uint64LtScalar
	Float64Lt = float64Lt
	Float64LtScalar = float64LtScalar
}

func int64Lt(xs, ys []int64, rs []int64) []int64 {
	for i, x := range xs {
		if x < ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func int64LtScalar(x int64, ys []int64, rs []int64) []int64 {
	for i, y := range ys {
		if y < x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64Lt(xs, ys []uint64, rs []int64) []int64 {
	for i, x := range xs {
		if x < ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64LtScalar(x uint64, ys []uint64, rs []int64) []int64 {
	for i, y := range ys {
		if y < x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64Lt(xs, ys []float64, rs []int64) []int64 {
	for i, x := range xs {
		if x < ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64LtScalar(x float64, ys []float64, rs []int64) []int64 {
	for i, y := range ys {
		if y < x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}
