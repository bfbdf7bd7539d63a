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
package max

var (
	Int64Max       func([]int64) int64
	Int64MaxSels   func([]int64, []int64) int64
	Uint64Max      func([]uint64) uint64
	Uint64MaxSels  func([]uint64, []int64) uint64
	Float64Max     func([]float64) float64
	Float64MaxSels func([]float64, []int64) float64
)

func init() {
	Int64Max = int64Max
	Int64MaxSels = int64MaxSels
	Uint64Max = uint64Max
	Uint64MaxSels = uint64MaxSels
	Float64Max = float64Max
	Float64MaxSels = float64MaxSels
}

func int64Max(xs []int64) int64 {
	res := xs[0]
	for _, x := range xs {
		if x > res {
			res = x
		}
	}
	return res
}

func int64MaxSels(xs []int64, sels []int64) int64 {
	res := xs[sels[0]]
	for _, sel := range sels {
		if x := xs[sel]; x > res {
			res = x
		}
	}
	return res
}

func uint64Max(xs []uint64) uint64 {
	res := xs[0]
	for _, x := range xs {
		if x > res {
			res = x
		}
	}
	return res
}

func uint64MaxSels(xs []uint64, sels []int64) uint64 {
	res := xs[sels[0]]
	for _, sel := range sels {
		if x := xs[sel]; x > res {
			res = x
		}
	}
	return res
}

func float64Max(xs []float64) float64 {
	res := xs[0]
	for _, x := range xs {
		if x > res {
			res = x
		}
	}
	return res
}

func float64MaxSels(xs []float64, sels []int64) float64 {
	res := xs[sels[0]]
	for _, sel := range sels {
		if x := xs[sel]; x > res {
			res = x
		}
	}
	return res
}
