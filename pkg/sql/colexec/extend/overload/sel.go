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

package overload

import "github.com/datafusedev/fuse-query/pkg/container/nulls"

// dropNulls removes from a selection vector the rows that are NULL on
// either comparison operand; a NULL never satisfies a predicate.
func dropNulls(sels []int64, nsp *nulls.Nulls) []int64 {
	if !nsp.Any() {
		return sels
	}
	rs := sels[:0]
	for _, sel := range sels {
		if !nsp.Contains(uint64(sel)) {
			rs = append(rs, sel)
		}
	}
	return rs
}
