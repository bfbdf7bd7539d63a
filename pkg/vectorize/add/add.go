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

// Integer addition wraps on overflow (two's complement), matching the
// engine-wide numeric policy.
package add

var (
	Int64Add         func([]int64, []int64, []int64) []int64
	Int64AddScalar   func(int64, []int64, []int64) []int64
	Uint64Add        func([]uint64, []uint64, []uint64) []uint64
	Uint64AddScalar  func(uint64, []uint64, []uint64) []uint64
	Float64Add       func([]float64, []float64, []float64) []float64
	Float64AddScalar func(float64, []float64, []float64) []float64
)

func init() {
	Int64Add = int64Add
	Int64AddScalar = int64AddScalar
	Uint64Add = uint64Add
	Uint64AddScalar = uint64AddScalar
	Float64Add = float64Add
	Float64AddScalar = float64AddScalar
}

func int64Add(xs, ys, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = x + ys[i]
	}
	return rs
}

func int64AddScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = x + y
	}
	return rs
}

func uint64Add(xs, ys, rs []uint64) []uint64 {
	for i, x := range xs {
		rs[i] = x + ys[i]
	}
	return rs
}

func uint64AddScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = x + y
	}
	return rs
}

func float64Add(xs, ys, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = x + ys[i]
	}
	return rs
}

func float64AddScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = x + y
	}
	return rs
}
