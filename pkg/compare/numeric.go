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

package compare

import (
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type int64Compare struct {
	desc bool
	xs   [2][]int64
	vs   [2]*vector.Vector
}

func (c *int64Compare) Vector() *vector.Vector {
	return c.vs[0]
}

func (c *int64Compare) Set(idx int, vec *vector.Vector) {
	c.vs[idx] = vec
	c.xs[idx] = vec.Col.([]int64)
}

func (c *int64Compare) Compare(vi, vj int, i, j int64) int {
	if r, ok := nullCompare(c.vs[vi], c.vs[vj], i, j); ok {
		return r
	}
	x, y := c.xs[vi][i], c.xs[vj][j]
	var r int
	switch {
	case x < y:
		r = -1
	case x > y:
		r = 1
	}
	if c.desc {
		return -r
	}
	return r
}

func (c *int64Compare) Copy(vsrc, vdst int, src, dst int64, _ *process.Process) error {
	c.xs[vdst][dst] = c.xs[vsrc][src]
	copyNull(c.vs[vsrc], c.vs[vdst], src, dst)
	return nil
}

type uint64Compare struct {
	desc bool
	xs   [2][]uint64
	vs   [2]*vector.Vector
}

func (c *uint64Compare) Vector() *vector.Vector {
	return c.vs[0]
}

func (c *uint64Compare) Set(idx int, vec *vector.Vector) {
	c.vs[idx] = vec
	c.xs[idx] = vec.Col.([]uint64)
}

func (c *uint64Compare) Compare(vi, vj int, i, j int64) int {
	if r, ok := nullCompare(c.vs[vi], c.vs[vj], i, j); ok {
		return r
	}
	x, y := c.xs[vi][i], c.xs[vj][j]
	var r int
	switch {
	case x < y:
		r = -1
	case x > y:
		r = 1
	}
	if c.desc {
		return -r
	}
	return r
}

func (c *uint64Compare) Copy(vsrc, vdst int, src, dst int64, _ *process.Process) error {
	c.xs[vdst][dst] = c.xs[vsrc][src]
	copyNull(c.vs[vsrc], c.vs[vdst], src, dst)
	return nil
}

type float64Compare struct {
	desc bool
	xs   [2][]float64
	vs   [2]*vector.Vector
}

func (c *float64Compare) Vector() *vector.Vector {
	return c.vs[0]
}

func (c *float64Compare) Set(idx int, vec *vector.Vector) {
	c.vs[idx] = vec
	c.xs[idx] = vec.Col.([]float64)
}

func (c *float64Compare) Compare(vi, vj int, i, j int64) int {
	if r, ok := nullCompare(c.vs[vi], c.vs[vj], i, j); ok {
		return r
	}
	x, y := c.xs[vi][i], c.xs[vj][j]
	var r int
	switch {
	case x < y:
		r = -1
	case x > y:
		r = 1
	}
	if c.desc {
		return -r
	}
	return r
}

func (c *float64Compare) Copy(vsrc, vdst int, src, dst int64, _ *process.Process) error {
	c.xs[vdst][dst] = c.xs[vsrc][src]
	copyNull(c.vs[vsrc], c.vs[vdst], src, dst)
	return nil
}
