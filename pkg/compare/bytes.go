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
	"bytes"

	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type bytesCompare struct {
	desc bool
	xs   [2]*types.Bytes
	vs   [2]*vector.Vector
}

func (c *bytesCompare) Vector() *vector.Vector {
	return c.vs[0]
}

func (c *bytesCompare) Set(idx int, vec *vector.Vector) {
	c.vs[idx] = vec
	c.xs[idx] = vec.Col.(*types.Bytes)
}

func (c *bytesCompare) Compare(vi, vj int, i, j int64) int {
	if r, ok := nullCompare(c.vs[vi], c.vs[vj], i, j); ok {
		return r
	}
	r := bytes.Compare(c.xs[vi].Get(i), c.xs[vj].Get(j))
	if c.desc {
		return -r
	}
	return r
}

// Copy rewrites the destination row's offset to fresh bytes appended at
// the end of the data area; the replaced bytes stay dead until the
// buffer is rebuilt at eval time.
func (c *bytesCompare) Copy(vsrc, vdst int, src, dst int64, _ *process.Process) error {
	v := c.xs[vsrc].Get(src)
	d := c.xs[vdst]
	d.Offsets[dst] = uint32(len(d.Data))
	d.Lengths[dst] = uint32(len(v))
	d.Data = append(d.Data, v...)
	copyNull(c.vs[vsrc], c.vs[vdst], src, dst)
	return nil
}
