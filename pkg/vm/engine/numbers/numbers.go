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

// Package numbers implements the system.numbers table: a synthetic,
// deterministic enumeration of [0, total) with a single uint64 column
// "number". It is the data source used by benchmarks and tests.
package numbers

import (
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/vm/engine"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/metadata"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

const Attr = "number"

type database struct{}

type relation struct {
	total uint64
}

// Part is one partition descriptor: the subrange [Start, End).
type Part struct {
	Start uint64
	End   uint64
}

type reader struct {
	cur uint64
	end uint64
}

func New() engine.Engine {
	return &database{}
}

func (*database) Relation(name string, args ...uint64) (engine.Relation, error) {
	if name != "numbers" || len(args) != 1 {
		return nil, moerr.NewSourceExhausted("no relation '%s' with %v arguments", name, len(args))
	}
	return NewRelation(args[0]), nil
}

func NewRelation(total uint64) engine.Relation {
	return &relation{total: total}
}

func (r *relation) ID() string {
	return fmt.Sprintf("numbers(%v)", r.total)
}

func (r *relation) Rows() int64 {
	return int64(r.total)
}

func (r *relation) Attributes() []metadata.Attribute {
	return []metadata.Attribute{
		{Name: Attr, Type: types.New(types.T_uint64)},
	}
}

// Parts splits [0, total) into at most n contiguous non-empty subranges
// whose union covers every value exactly once. Fewer than n parts are
// returned when total < n.
func Parts(total uint64, n int) []Part {
	if n < 1 || total == 0 {
		if total == 0 {
			return nil
		}
		n = 1
	}
	if uint64(n) > total {
		n = int(total)
	}
	chunk, rem := total/uint64(n), total%uint64(n)
	parts := make([]Part, n)
	var start uint64
	for i := range parts {
		end := start + chunk
		if uint64(i) < rem {
			end++
		}
		parts[i] = Part{Start: start, End: end}
		start = end
	}
	return parts
}

// NewReaders always returns n readers so the scheduler can bind one per
// worker; trailing readers are born exhausted when total < n.
func (r *relation) NewReaders(n int) ([]engine.Reader, error) {
	if n < 1 {
		return nil, moerr.NewInternal("reader count %v out of range", n)
	}
	rs := make([]engine.Reader, n)
	for i := range rs {
		rs[i] = new(reader)
	}
	for i, part := range Parts(r.total, n) {
		rs[i] = &reader{cur: part.Start, end: part.End}
	}
	return rs, nil
}

func (r *reader) Read(proc *process.Process, cs []uint64, attrs []string) (*batch.Batch, error) {
	if r.cur >= r.end {
		return nil, nil
	}
	if len(attrs) != 1 || attrs[0] != Attr {
		return nil, moerr.NewSourceExhausted("numbers has no attributes %v", attrs)
	}
	count := r.end - r.cur
	if max := uint64(proc.Lim.BatchRows); max > 0 && count > max {
		count = max
	} else if proc.Lim.BatchRows == 0 && count > process.DefaultBatchRows {
		count = process.DefaultBatchRows
	}
	data, err := proc.Alloc(int64(count) * 8)
	if err != nil {
		return nil, err
	}
	vs := encoding.DecodeUint64Slice(data[mempool.CountSize:])
	vs = vs[:count]
	for i := range vs {
		vs[i] = r.cur + uint64(i)
	}
	r.cur += count
	vec := vector.New(types.New(types.T_uint64))
	vec.Data = data
	vec.SetCol(vs)
	if len(cs) > 0 {
		vec.Ref = cs[0]
	}
	bat := batch.New(true, attrs)
	bat.Vecs[0] = vec
	return bat, nil
}
