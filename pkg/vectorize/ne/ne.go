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
package ne

var (
	Int64Ne         func([]int64, []int64, []int64) []int64
	Int64NeScalar   func(int64, []int64, []int64) []int64
	Uint64Ne        func([]uint64, []uint64, []int64) []int64
	Uint64NeScalar  func(uint64, []uint64, []int64) []int64
	Float64Ne       func([]float64, []float64, []int64) []int64
	Float64NeScalar func(float64, []float64, []int64) []int64
)

func init() {
	Int64Ne = int64Ne
	Int64NeScalar = int64NeScalar
	Uint64Ne = uint64Ne
	Uint64NeScalar = uint64NeScalar
	Float64Ne = float64Ne
	Float64NeScalar = float64NeScalar
}

func int64Ne(xs, ys []int64, rs []int64) []int64 {
	for i, x := range xs {
		if x != ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func int64NeScalar(x int64, ys []int64, rs []int64) []int64 {
	for i, y := range ys {
		if y != x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64Ne(xs, ys []uint64, rs []int64) []int64 {
	for i, x := range xs {
		if x != ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func uint64NeScalar(x uint64, ys []uint64, rs []int64) []int64 {
	for i, y := range ys {
		if y != x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64Ne(xs, ys []float64, rs []int64) []int64 {
	for i, x := range xs {
		if x != ys[i] {
			rs = append(rs, int64(i))
		}
	}
	return rs
}

func float64NeScalar(x float64, ys []float64, rs []int64) []int64 {
	for i, y := range ys {
		if y != x {
			rs = append(rs, int64(i))
		}
	}
	return rs
}
