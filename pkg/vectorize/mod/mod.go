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

// Integer kernels assume the caller has already rejected zero divisors.
package mod

import "math"

var (
	Int64Mod         func([]int64, []int64, []int64) []int64
	Int64ModScalar   func(int64, []int64, []int64) []int64 // x % ys[i]
	Int64ModByScalar func(int64, []int64, []int64) []int64 // ys[i] % x

	Uint64Mod         func([]uint64, []uint64, []uint64) []uint64
	Uint64ModScalar   func(uint64, []uint64, []uint64) []uint64
	Uint64ModByScalar func(uint64, []uint64, []uint64) []uint64

	Float64Mod         func([]float64, []float64, []float64) []float64
	Float64ModScalar   func(float64, []float64, []float64) []float64
	Float64ModByScalar func(float64, []float64, []float64) []float64
)

func init() {
	Int64Mod = int64Mod
	Int64ModScalar = int64ModScalar
	Int64ModByScalar = int64ModByScalar
	Uint64Mod = uint64Mod
	Uint64ModScalar = uint64ModScalar
	Uint64ModByScalar = uint64ModByScalar
	Float64Mod = float64Mod
	Float64ModScalar = float64ModScalar
	Float64ModByScalar = float64ModByScalar
}

func int64Mod(xs, ys, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = x % ys[i]
	}
	return rs
}

func int64ModScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = x % y
	}
	return rs
}

func int64ModByScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = y % x
	}
	return rs
}

func uint64Mod(xs, ys, rs []uint64) []uint64 {
	for i, x := range xs {
		rs[i] = x % ys[i]
	}
	return rs
}

func uint64ModScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = x % y
	}
	return rs
}

func uint64ModByScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = y % x
	}
	return rs
}

func float64Mod(xs, ys, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = math.Mod(x, ys[i])
	}
	return rs
}

func float64ModScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = math.Mod(x, y)
	}
	return rs
}

func float64ModByScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = math.Mod(y, x)
	}
	return rs
}
