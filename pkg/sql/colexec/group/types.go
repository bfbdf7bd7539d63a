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

package group

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/container/vector"
	"github.com/datafusedev/fuse-query/pkg/encoding"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
)

// Group is one distinct key: its row in the key batch plus its
// aggregation states. sels buffers the matching rows of the batch being
// filled and is cleared after every batch.
type Group struct {
	Sel  int64
	Aggs []aggregation.Aggregation

	sels []int64
}

// Container indexes groups by their encoded key. bat accumulates one row
// per distinct key, in first-seen order.
type Container struct {
	groups map[string]*Group
	bat    *batch.Batch
}

// Table is the partial result a group pipeline hands to mergegroup: the
// key rows and, parallel to them, the per-group states.
type Table struct {
	Bat *batch.Batch
	Gs  []*Group
}

type Argument struct {
	// Flushed is set once the partial table has been emitted.
	Flushed bool
	// As names the key columns of the output, parallel to Gs.
	As  []string
	Gs  []extend.Extend
	Es  []aggregation.Extend
	Ctr Container
}

// EncodeRow appends the fixed-width group key of one row: per key column
// a validity byte and the value bytes, so NULL keys form a group of
// their own and equality is plain byte equality.
func EncodeRow(buf []byte, vecs []*vector.Vector, row int64) ([]byte, error) {
	for _, vec := range vecs {
		if vec.Nsp.Contains(uint64(row)) {
			buf = append(buf, 1, 0, 0, 0, 0, 0, 0, 0, 0)
			continue
		}
		buf = append(buf, 0)
		switch vs := vec.Col.(type) {
		case []int64:
			buf = append(buf, encoding.EncodeInt64(vs[row])...)
		case []uint64:
			buf = append(buf, encoding.EncodeUint64(vs[row])...)
		case []float64:
			buf = append(buf, encoding.EncodeFloat64(vs[row])...)
		case *types.Bytes:
			v := vs.Get(row)
			buf = append(buf, encoding.EncodeUint64(uint64(len(v)))...)
			buf = append(buf, v...)
		default:
			return nil, moerr.NewInternal("unexpected group key type %T", vs)
		}
	}
	return buf, nil
}

// AppendEval appends an aggregation's final value as one row of vec,
// NULL when the state saw no rows.
func AppendEval(vec *vector.Vector, agg aggregation.Aggregation) error {
	if v := agg.Eval(); v != nil {
		return vec.Append(v)
	}
	row := uint64(vec.Length())
	var err error
	switch vec.Typ.Oid {
	case types.T_int64:
		err = vec.Append([]int64{0})
	case types.T_uint64:
		err = vec.Append([]uint64{0})
	case types.T_float64:
		err = vec.Append([]float64{0})
	default:
		err = moerr.NewInternal("unexpected aggregation type %s", vec.Typ)
	}
	if err != nil {
		return err
	}
	vec.Nsp.Add(row)
	return nil
}
