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

package sub

var (
	Int64Sub         func([]int64, []int64, []int64) []int64
	Int64SubScalar   func(int64, []int64, []int64) []int64 // x - ys[i]
	Int64SubByScalar func(int64, []int64, []int64) []int64 // ys[i] - x

	Uint64Sub         func([]uint64, []uint64, []uint64) []uint64
	Uint64SubScalar   func(uint64, []uint64, []uint64) []uint64
	Uint64SubByScalar func(uint64, []uint64, []uint64) []uint64

	Float64Sub         func([]float64, []float64, []float64) []float64
	Float64SubScalar   func(float64, []float64, []float64) []float64
	Float64SubByScalar func(float64, []float64, []float64) []float64
)

func init() {
	Int64Sub = int64Sub
	Int64SubScalar = int64SubScalar
	Int64SubByScalar = int64SubByScalar
	Uint64Sub = uint64Sub
	Uint64SubScalar = uint64SubScalar
	Uint64SubByScalar = uint64SubByScalar
	Float64Sub = float64Sub
	Float64SubScalar = float64SubScalar
	Float64SubByScalar = float64SubByScalar
}

func int64Sub(xs, ys, rs []int64) []int64 {
	for i, x := range xs {
		rs[i] = x - ys[i]
	}
	return rs
}

func int64SubScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = x - y
	}
	return rs
}

func int64SubByScalar(x int64, ys, rs []int64) []int64 {
	for i, y := range ys {
		rs[i] = y - x
	}
	return rs
}

func uint64Sub(xs, ys, rs []uint64) []uint64 {
	for i, x := range xs {
		rs[i] = x - ys[i]
	}
	return rs
}

func uint64SubScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = x - y
	}
	return rs
}

func uint64SubByScalar(x uint64, ys, rs []uint64) []uint64 {
	for i, y := range ys {
		rs[i] = y - x
	}
	return rs
}

func float64Sub(xs, ys, rs []float64) []float64 {
	for i, x := range xs {
		rs[i] = x - ys[i]
	}
	return rs
}

func float64SubScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = x - y
	}
	return rs
}

func float64SubByScalar(x float64, ys, rs []float64) []float64 {
	for i, y := range ys {
		rs[i] = y - x
	}
	return rs
}
