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

// Package aggfunc builds aggregation states from the function code and
// the argument type.
package aggfunc

import (
	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/avg"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/count"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/max"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/min"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/sum"
)

// ReturnType gives the result type of an aggregate over an argument
// type: counts are int64, averages are float64, the rest keep the
// argument type.
func ReturnType(op int, typ types.Type) types.Type {
	switch op {
	case aggregation.Avg:
		return types.New(types.T_float64)
	case aggregation.Count, aggregation.StarCount:
		return types.New(types.T_int64)
	}
	return typ
}

func New(op int, typ types.Type) (aggregation.Aggregation, error) {
	switch op {
	case aggregation.Avg:
		switch typ.Oid {
		case types.T_int64, types.T_uint64, types.T_float64:
			return avg.New(types.New(types.T_float64)), nil
		}
	case aggregation.Max:
		switch typ.Oid {
		case types.T_int64:
			return max.NewInt64(typ), nil
		case types.T_uint64:
			return max.NewUint64(typ), nil
		case types.T_float64:
			return max.NewFloat64(typ), nil
		}
	case aggregation.Min:
		switch typ.Oid {
		case types.T_int64:
			return min.NewInt64(typ), nil
		case types.T_uint64:
			return min.NewUint64(typ), nil
		case types.T_float64:
			return min.NewFloat64(typ), nil
		}
	case aggregation.Sum:
		switch typ.Oid {
		case types.T_int64:
			return sum.NewInt64(typ), nil
		case types.T_uint64:
			return sum.NewUint64(typ), nil
		case types.T_float64:
			return sum.NewFloat64(typ), nil
		}
	case aggregation.Count:
		return count.New(types.New(types.T_int64)), nil
	case aggregation.StarCount:
		return count.NewStar(types.New(types.T_int64)), nil
	}
	return nil, moerr.NewTypeMismatch("'%s' not supported for %s", aggregation.AggName[op], typ)
}
