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

// count(attr) counts non-NULL rows of the argument; count(*) counts
// rows. Both are zero, never NULL, over empty input.
package count

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type count struct {
	star bool
	cnt  int64
	typ  types.Type
}

func New(typ types.Type) aggregation.Aggregation {
	return &count{typ: typ}
}

func NewStar(typ types.Type) aggregation.Aggregation {
	return &count{star: true, typ: typ}
}

func (a *count) Reset() {
	a.cnt = 0
}

func (a *count) Type() types.Type {
	return a.typ
}

func (a *count) Dup() aggregation.Aggregation {
	return &count{star: a.star, typ: a.typ}
}

func (a *count) Fill(sels []int64, vec *vector.Vector) error {
	if len(sels) > 0 {
		a.cnt += int64(len(sels))
		if !a.star {
			a.cnt -= int64(vec.Nsp.FilterCount(sels))
		}
		return nil
	}
	a.cnt += int64(vec.Length())
	if !a.star {
		a.cnt -= int64(vec.Nsp.Length())
	}
	return nil
}

func (a *count) Merge(agg aggregation.Aggregation) error {
	b, ok := agg.(*count)
	if !ok {
		return moerr.NewInternal("merge %T into %T", agg, a)
	}
	a.cnt += b.cnt
	return nil
}

func (a *count) Eval() interface{} {
	return []int64{a.cnt}
}

func (a *count) EvalCopy(proc *process.Process) (*vector.Vector, error) {
	data, err := proc.Alloc(8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeInt64Slice(data[mempool.CountSize:])[:1]
	vs[0] = a.cnt
	vec := vector.New(a.typ)
	vec.Data = data
	vec.SetCol(vs)
	return vec, nil
}
