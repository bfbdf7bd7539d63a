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

// The kernels require at least one input row; empty partitions are
// handled by the aggregation states before reaching here.
package min

var (
	Int64Min       func([]int64) int64
	Int64MinSels   func([]int64, []int64) int64
	Uint64Min      func([]uint64) uint64
	Uint64MinSels  func([]uint64, []int64) uint64
	Float64Min     func([]float64) float64
	Float64MinSels func([]float64, []int64) float64
)

func init() {
	Int64Min = int64Min
	Int64MinSels = int64MinSels
	Uint64Min = uint64Min
	Uint64MinSels = uint64MinSels
	Float64Min = float64Min
	Float64MinSels = float64MinSels
}

func int64Min(xs []int64) int64 {
	res := xs[0]
	for _, x := range xs {
		if x < res {
			res = x
		}
	}
	return res
}

func int64MinSels(xs []int64, sels []int64) int64 {
	res := xs[sels[0]]
	for _, sel := range sels {
		if x := xs[sel]; x < res {
			res = x
		}
	}
	return res
}

func uint64Min(xs []uint64) uint64 {
	res := xs[0]
	for _, x := range xs {
		if x < res {
			res = x
		}
	}
	return res
}

func uint64MinSels(xs []uint64, sels []int64) uint64 {
	res := xs[sels[0]]
	for _, sel := range sels {
		if x := xs[sel]; x < res {
			res = x
		}
	}
	return res
}

func float64Min(xs []float64) float64 {
	res := xs[0]
	for _, x := range xs {
		if x < res {
			res = x
		}
	}
	return res
}

func float64MinSels(xs []float64, sels []int64) float64 {
	res := xs[sels[0]]
	for _, sel := range sels {
		if x := xs[sel]; x < res {
			res = x
		}
	}
	return res
}
