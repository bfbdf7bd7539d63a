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

// Integer kernels assume the caller has already rejected zero divisors;
// float kernels follow IEEE-754 and may produce Inf or NaN.
package div

var (
	Int64Div         func([]int64, []int64, []int64) []int64
	Int64DivScalar   func(int64, []int64, []int64) []int64 // x / ys[i]
	Int64DivByScalar func(int64, []int64, []int64) []int64 // ys[i] / x

	Uint64Div         func([]uint64, []uint64, []uint64) []uint64
	Uint64DivScalar   func(uint64, []uint64, []uint64) []uint64
	Uint64DivByScalar func(uint64, []uint64, []uint64) []uint64

	Float64Div         func([]float64, []float64, []float64) []float64
	Float64DivScalar   func(float64, []float64, []float64) []float64
	Float64DivByScalar func(float64, []float64, []float64) []float64
)

func init() {
	Int64Div = int64Div
	Int64DivScalar = int64DivScalar
	Int64DivByScalar = int64DivByScalar
	Uint64Div = uint64Div
	Uint64DivScalar = uint64DivScalar
	Uint64DivByScalar = uint64DivByScalar
	Float64Div = float64Div
	Float64DivScalar = float64DivScalar
	Float64DivByScalar = float64DivByScalar
}

func int64Div(xs, ys, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = x / ys[i]
	}
	return rs
}

func int64DivScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = x / y
	}
	return rs
}

func int64DivByScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = y / x
	}
	return rs
}

func uint64Div(xs, ys, rs []uint64) []uint64 {
	for i, x := range xs {
		rs[i] = x / ys[i]
	}
	return rs
}

func uint64DivScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = x / y
	}
	return rs
}

func uint64DivByScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = y / x
	}
	return rs
}

func float64Div(xs, ys, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = x / ys[i]
	}
	return rs
}

func float64DivScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = x / y
	}
	return rs
}

func float64DivByScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = y / x
	}
	return rs
}
