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

// Integer sums wrap on overflow (two's complement), matching the
// engine-wide numeric policy.
package sum

var (
	Int64Sum       func([]int64) int64
	Int64SumSels   func([]int64, []int64) int64
	Uint64Sum      func([]uint64) uint64
	Uint64SumSels  func([]uint64, []int64) uint64
	Float64Sum     func([]float64) float64
	Float64SumSels func([]float64, []int64) float64
)

func init() {
	Int64Sum = int64Sum
	Int64SumSels = int64SumSels
	Uint64Sum = uint64Sum
	Uint64SumSels = uint64SumSels
	Float64Sum = float64Sum
	Float64SumSels = float64SumSels
}

func int64Sum(xs []int64) int64 {
	var res int64

	for _, x := range xs {
		res += x
	}
	return res
}

func int64SumSels(xs []int64, sels []int64) int64 {
	var res int64

	for _, sel := range sels {
		res += xs[sel]
	}
	return res
}

func uint64Sum(xs []uint64) uint64 {
	var res uint64

	for _, x := range xs {
		res += x
	}
	return res
}

func uint64SumSels(xs []uint64, sels []int64) uint64 {
	var res uint64

	for _, sel := range sels {
		res += xs[sel]
	}
	return res
}

func float64Sum(xs []float64) float64 {
	var res float64

	for _, x := range xs {
		res += x
	}
	return res
}

func float64SumSels(xs []float64, sels []int64) float64 {
	var res float64

	for _, sel := range sels {
		res += xs[sel]
	}
	return res
}
