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

package mul

var (
	Int64Mul         func([]int64, []int64, []int64) []int64
	Int64MulScalar   func(int64, []int64, []int64) []int64
	Uint64Mul        func([]uint64, []uint64, []uint64) []uint64
	Uint64MulScalar  func(uint64, []uint64, []uint64) []uint64
	Float64Mul       func([]float64, []float64, []float64) []float64
	Float64MulScalar func(float64, []float64, []float64) []float64
)

func init() {
	Int64Mul = int64Mul
	Int64MulScalar = int64MulScalar
	Uint64Mul = uint64Mul
	Uint64MulScalar = uint64MulScalar
	Float64Mul = float64Mul
	Float64MulScalar = float64MulScalar
}

func int64Mul(xs, ys, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = x * ys[i]
	}
	return rs
}

func int64MulScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = x * y
	}
	return rs
}

func uint64Mul(xs, ys, rs []uint64) []uint64 {
	for i, x := range xs {
		rs[i] = x * ys[i]
	}
	return rs
}

func uint64MulScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = x * y
	}
	return rs
}

func float64Mul(xs, ys, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = x * ys[i]
	}
	return rs
}

func float64MulScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = x * y
	}
	return rs
}
