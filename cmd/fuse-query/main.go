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

// fuse-query runs a few representative queries against the numbers
// table and reports their timing, mirroring the classic enumeration
// benchmarks.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/datafusedev/fuse-query/pkg/config"
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/logutil"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend/overload"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/top"
	"github.com/datafusedev/fuse-query/pkg/sql/compile"
	"github.com/datafusedev/fuse-query/pkg/vm/engine/numbers"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/guest"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func main() {
	var cfgPath string
	var total uint64

	flag.StringVar(&cfgPath, "config", "", "engine configuration file")
	flag.Uint64Var(&total, "rows", 10000000, "rows of the numbers table")
	flag.Parse()

	params, err := config.Load(cfgPath)
	if err != nil {
		logutil.Fatalf("load configuration: %v", err)
	}
	logutil.Setup(params.Log)

	hm := host.New(params.HostMmuLimitation)
	pool, err := ants.NewPool(params.Parallel)
	if err != nil {
		logutil.Fatalf("create worker pool: %v", err)
	}
	defer pool.Release()

	number := &extend.Attribute{Name: numbers.Attr, Type: types.T_uint64}
	queries := []struct {
		sql string
		qry *compile.Query
	}{
		{
			sql: fmt.Sprintf("select avg(number), sum(number), min(number), max(number), count(number) from numbers(%v)", total),
			qry: &compile.Query{
				Relation: "numbers",
				Args:     []uint64{total},
				Aggs: []compile.Aggregate{
					{Op: aggregation.Avg, Name: numbers.Attr, Alias: "avg(number)"},
					{Op: aggregation.Sum, Name: numbers.Attr, Alias: "sum(number)"},
					{Op: aggregation.Min, Name: numbers.Attr, Alias: "min(number)"},
					{Op: aggregation.Max, Name: numbers.Attr, Alias: "max(number)"},
					{Op: aggregation.Count, Name: numbers.Attr, Alias: "count(number)"},
				},
				Parallel: params.Parallel,
			},
		},
		{
			sql: fmt.Sprintf("select number from numbers(%v) order by number desc limit 5", total),
			qry: &compile.Query{
				Relation: "numbers",
				Args:     []uint64{total},
				Es:       []extend.Extend{number},
				As:       []string{"number"},
				Fs:       []top.Field{{Attr: "number", Type: top.Descending}},
				Limit:    5,
				HasLimit: true,
				Parallel: params.Parallel,
			},
		},
		{
			sql: fmt.Sprintf("select number %% 3 as k, count(number) from numbers(%v) group by number %% 3", total),
			qry: &compile.Query{
				Relation: "numbers",
				Args:     []uint64{total},
				Aggs: []compile.Aggregate{
					{Op: aggregation.Count, Name: numbers.Attr, Alias: "count(number)"},
				},
				Gs: []extend.Extend{
					&extend.BinaryExtend{
						Op:    overload.Mod,
						Left:  number,
						Right: extend.NewUint64Value(3),
					},
				},
				GAs:      []string{"k"},
				Parallel: params.Parallel,
			},
		},
	}
	for _, q := range queries {
		gm := guest.New(params.GuestMmuLimitation, hm)
		proc := process.New(gm, mempool.New())
		proc.Lim.Size = params.ProcessLimitationSize
		proc.Lim.BatchRows = params.ProcessLimitationBatchRows
		proc.Lim.PartitionRows = params.ProcessLimitationPartitionRows

		ex, err := compile.New(numbers.New(), proc, pool).Compile(q.qry)
		if err != nil {
			logutil.Fatalf("compile '%s': %v", q.sql, err)
		}
		logutil.Infof("%s", q.sql)
		start := time.Now()
		err = ex.Run(nil, func(_ interface{}, bat *batch.Batch) error {
			if bat != nil && bat.Length() > 0 {
				fmt.Printf("%s", bat)
			}
			return nil
		})
		if err != nil {
			logutil.Fatalf("run '%s': %v", q.sql, err)
		}
		logutil.Infof("%v rows in %v", total, time.Since(start))
	}
}
