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

package compile

import (
	"testing"

	"github.com/panjf2000/ants/v2"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend/overload"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/top"
	"github.com/datafusedev/fuse-query/pkg/vm/engine/numbers"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/guest"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

var parallels = []int{1, 2, 16}

// result is the fully copied query output, safe to inspect after the
// batches are freed.
type result struct {
	attrs []string
	cols  [][]interface{} // one row per entry, one value (or nil) per column
}

func run(qry *Query, limit int64) (*result, error) {
	hm := host.New(1 << 32)
	gm := guest.New(1<<32, hm)
	proc := process.New(gm, mempool.New())
	proc.Lim.Size = limit
	proc.Lim.BatchRows = 1024

	pool, err := ants.NewPool(4)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	ex, err := New(numbers.New(), proc, pool).Compile(qry)
	if err != nil {
		return nil, err
	}
	res := new(result)
	err = ex.Run(nil, func(_ interface{}, bat *batch.Batch) error {
		if res.attrs == nil {
			res.attrs = append(res.attrs, bat.Attrs...)
		}
		for i := 0; i < bat.Length(); i++ {
			row := make([]interface{}, len(bat.Vecs))
			for j, vec := range bat.Vecs {
				if vec.Nsp.Contains(uint64(i)) {
					continue
				}
				switch vs := vec.Col.(type) {
				case []int64:
					row[j] = vs[i]
				case []uint64:
					row[j] = vs[i]
				case []float64:
					row[j] = vs[i]
				}
			}
			res.cols = append(res.cols, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func number() *extend.Attribute {
	return &extend.Attribute{Name: numbers.Attr, Type: types.T_uint64}
}

func aggQuery(total uint64, parallel int, aggs ...Aggregate) *Query {
	return &Query{
		Relation: "numbers",
		Args:     []uint64{total},
		Aggs:     aggs,
		Parallel: parallel,
	}
}

func TestPlainScan(t *testing.T) {
	Convey("a projection-only scan returns every row", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{1000},
				Es:       []extend.Extend{number()},
				As:       []string{"number"},
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 1000)
			var sum uint64
			for _, row := range res.cols {
				sum += row[0].(uint64)
			}
			So(sum, ShouldEqual, uint64(499500))
		}
	})

	Convey("more partitions than pool workers", t, func() {
		// the pool has 4 workers; the merge side must drain the running
		// producers so the queued partitions can be scheduled
		qry := &Query{
			Relation: "numbers",
			Args:     []uint64{200000},
			Es:       []extend.Extend{number()},
			As:       []string{"number"},
			Parallel: 16,
		}
		res, err := run(qry, 1<<32)
		So(err, ShouldBeNil)
		So(res.cols, ShouldHaveLength, 200000)
	})
}

func TestAggregates(t *testing.T) {
	Convey("aggregates over an enumerated range", t, func() {
		for _, n := range parallels {
			qry := aggQuery(1000, n,
				Aggregate{Op: aggregation.Sum, Name: numbers.Attr, Alias: "sum"},
				Aggregate{Op: aggregation.Avg, Name: numbers.Attr, Alias: "avg"},
				Aggregate{Op: aggregation.Min, Name: numbers.Attr, Alias: "min"},
				Aggregate{Op: aggregation.Max, Name: numbers.Attr, Alias: "max"},
				Aggregate{Op: aggregation.Count, Name: numbers.Attr, Alias: "count"},
			)
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 1)
			So(res.attrs, ShouldResemble, []string{"sum", "avg", "min", "max", "count"})
			row := res.cols[0]
			So(row[0], ShouldEqual, uint64(499500))
			So(row[1], ShouldEqual, 499.5)
			So(row[2], ShouldEqual, uint64(0))
			So(row[3], ShouldEqual, uint64(999))
			So(row[4], ShouldEqual, int64(1000))
		}
	})

	Convey("aggregates over the empty range", t, func() {
		for _, n := range parallels {
			qry := aggQuery(0, n,
				Aggregate{Op: aggregation.Sum, Name: numbers.Attr, Alias: "sum"},
				Aggregate{Op: aggregation.Min, Name: numbers.Attr, Alias: "min"},
				Aggregate{Op: aggregation.Count, Name: numbers.Attr, Alias: "count"},
			)
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 1)
			row := res.cols[0]
			So(row[0], ShouldEqual, uint64(0)) // sum of nothing is zero
			So(row[1], ShouldBeNil)            // min of nothing is NULL
			So(row[2], ShouldEqual, int64(0))
		}
	})
}

func TestAggregateExpressions(t *testing.T) {
	Convey("sum over a derived column", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{4},
				Aggs: []Aggregate{{
					Op: aggregation.Sum,
					E: &extend.BinaryExtend{
						Op: overload.Plus,
						Left: &extend.BinaryExtend{
							Op:    overload.Plus,
							Left:  number(),
							Right: number(),
						},
						Right: number(),
					},
					Alias: "s",
				}},
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 1)
			So(res.attrs, ShouldResemble, []string{"s"})
			// 3 * (0+1+2+3)
			So(res.cols[0][0], ShouldEqual, uint64(18))
		}
	})

	Convey("dividing one finalized aggregate by another", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{1000},
				Aggs: []Aggregate{
					{Op: aggregation.Sum, Name: numbers.Attr, Alias: "s"},
					{Op: aggregation.Count, Name: numbers.Attr, Alias: "c"},
				},
				Es: []extend.Extend{
					&extend.BinaryExtend{
						Op:    overload.Div,
						Left:  &extend.Attribute{Name: "s", Type: types.T_uint64},
						Right: &extend.Attribute{Name: "c", Type: types.T_int64},
					},
				},
				As:       []string{"a"},
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 1)
			So(res.attrs, ShouldResemble, []string{"a"})
			So(res.cols[0][0], ShouldEqual, 499.5)
		}
	})

	Convey("grouped sum over a derived column", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{6},
				Aggs: []Aggregate{{
					Op: aggregation.Sum,
					E: &extend.BinaryExtend{
						Op:    overload.Plus,
						Left:  number(),
						Right: number(),
					},
					Alias: "s",
				}},
				Gs: []extend.Extend{
					&extend.BinaryExtend{
						Op:    overload.Mod,
						Left:  number(),
						Right: extend.NewUint64Value(2),
					},
				},
				GAs:      []string{"k"},
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 2)
			sums := make(map[uint64]uint64)
			for _, row := range res.cols {
				sums[row[0].(uint64)] = row[1].(uint64)
			}
			// 2*(0+2+4) and 2*(1+3+5)
			So(sums, ShouldResemble, map[uint64]uint64{0: 12, 1: 18})
		}
	})
}

func TestTopN(t *testing.T) {
	Convey("top 5 descending", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{100},
				Es:       []extend.Extend{number()},
				As:       []string{"number"},
				Fs:       []top.Field{{Attr: "number", Type: top.Descending}},
				Limit:    5,
				HasLimit: true,
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 5)
			for i, want := range []uint64{99, 98, 97, 96, 95} {
				So(res.cols[i][0], ShouldEqual, want)
			}
		}
	})

	Convey("top N larger than the relation", t, func() {
		qry := &Query{
			Relation: "numbers",
			Args:     []uint64{3},
			Es:       []extend.Extend{number()},
			As:       []string{"number"},
			Fs:       []top.Field{{Attr: "number", Type: top.Ascending}},
			Limit:    10,
			HasLimit: true,
			Parallel: 2,
		}
		res, err := run(qry, 1<<32)
		So(err, ShouldBeNil)
		So(res.cols, ShouldHaveLength, 3)
		for i, want := range []uint64{0, 1, 2} {
			So(res.cols[i][0], ShouldEqual, want)
		}
	})
}

func TestGroupBy(t *testing.T) {
	Convey("group by number % 3", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{60},
				Aggs: []Aggregate{
					{Op: aggregation.Count, Name: numbers.Attr, Alias: "count"},
					{Op: aggregation.Sum, Name: numbers.Attr, Alias: "sum"},
				},
				Gs: []extend.Extend{
					&extend.BinaryExtend{
						Op:    overload.Mod,
						Left:  number(),
						Right: extend.NewUint64Value(3),
					},
				},
				GAs:      []string{"k"},
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.cols, ShouldHaveLength, 3)

			counts := make(map[uint64]int64)
			sums := make(map[uint64]uint64)
			for _, row := range res.cols {
				k := row[0].(uint64)
				counts[k] = row[1].(int64)
				sums[k] = row[2].(uint64)
			}
			// 0+3+...+57, 1+4+...+58, 2+5+...+59
			So(counts, ShouldResemble, map[uint64]int64{0: 20, 1: 20, 2: 20})
			So(sums, ShouldResemble, map[uint64]uint64{0: 570, 1: 590, 2: 610})
		}
	})

	Convey("ordering the grouped rows", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{60},
				Aggs: []Aggregate{
					{Op: aggregation.Count, Name: numbers.Attr, Alias: "cnt"},
				},
				Gs: []extend.Extend{
					&extend.BinaryExtend{
						Op:    overload.Mod,
						Left:  number(),
						Right: extend.NewUint64Value(3),
					},
				},
				GAs:      []string{"k"},
				Fs:       []top.Field{{Attr: "k", Type: top.Descending}},
				Limit:    2,
				HasLimit: true,
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			So(res.attrs, ShouldResemble, []string{"k", "cnt"})
			So(res.cols, ShouldHaveLength, 2)
			So(res.cols[0][0], ShouldEqual, uint64(2))
			So(res.cols[1][0], ShouldEqual, uint64(1))
			So(res.cols[0][1], ShouldEqual, int64(20))
			So(res.cols[1][1], ShouldEqual, int64(20))
		}
	})
}

func TestWhere(t *testing.T) {
	Convey("where filters rows before projection", t, func() {
		for _, n := range parallels {
			qry := &Query{
				Relation: "numbers",
				Args:     []uint64{1000},
				Where: &extend.BinaryExtend{
					Op:    overload.LT,
					Left:  number(),
					Right: extend.NewUint64Value(10),
				},
				Aggs: []Aggregate{
					{Op: aggregation.Sum, Name: numbers.Attr, Alias: "sum"},
					{Op: aggregation.Count, Name: numbers.Attr, Alias: "count"},
				},
				Parallel: n,
			}
			res, err := run(qry, 1<<32)
			So(err, ShouldBeNil)
			row := res.cols[0]
			So(row[0], ShouldEqual, uint64(45))
			So(row[1], ShouldEqual, int64(10))
		}
	})
	Convey("where over a plain scan", t, func() {
		qry := &Query{
			Relation: "numbers",
			Args:     []uint64{100},
			Where: &extend.BinaryExtend{
				Op:    overload.GE,
				Left:  number(),
				Right: extend.NewUint64Value(90),
			},
			Es:       []extend.Extend{number()},
			As:       []string{"number"},
			Parallel: 4,
		}
		res, err := run(qry, 1<<32)
		So(err, ShouldBeNil)
		So(res.cols, ShouldHaveLength, 10)
		var sum uint64
		for _, row := range res.cols {
			sum += row[0].(uint64)
		}
		So(sum, ShouldEqual, uint64(945))
	})
}

func TestLimitWithoutOrder(t *testing.T) {
	Convey("a bare limit truncates the merged stream", t, func() {
		qry := &Query{
			Relation: "numbers",
			Args:     []uint64{10000},
			Es:       []extend.Extend{number()},
			As:       []string{"number"},
			Limit:    7,
			HasLimit: true,
			Parallel: 4,
		}
		res, err := run(qry, 1<<32)
		So(err, ShouldBeNil)
		So(res.cols, ShouldHaveLength, 7)
	})
}

func TestIdempotence(t *testing.T) {
	Convey("the same query yields the same rows run after run", t, func() {
		qry := func() *Query {
			return &Query{
				Relation: "numbers",
				Args:     []uint64{100},
				Es:       []extend.Extend{number()},
				As:       []string{"number"},
				Fs:       []top.Field{{Attr: "number", Type: top.Descending}},
				Limit:    10,
				HasLimit: true,
				Parallel: 16,
			}
		}
		a, err := run(qry(), 1<<32)
		So(err, ShouldBeNil)
		b, err := run(qry(), 1<<32)
		So(err, ShouldBeNil)
		So(a.cols, ShouldResemble, b.cols)
	})
}

func TestCheck(t *testing.T) {
	Convey("invalid queries are rejected at compile time", t, func() {
		cases := []*Query{
			// empty select list
			{Relation: "numbers", Args: []uint64{10}},
			// with aggregates the select expressions read the finalized
			// row, which carries no "number" column
			{
				Relation: "numbers", Args: []uint64{10},
				Es:   []extend.Extend{number()},
				As:   []string{"number"},
				Aggs: []Aggregate{{Op: aggregation.Sum, Name: numbers.Attr, Alias: "s"}},
			},
			// a finalized aggregate referenced with the wrong type
			{
				Relation: "numbers", Args: []uint64{10},
				Es:   []extend.Extend{&extend.Attribute{Name: "s", Type: types.T_int64}},
				As:   []string{"a"},
				Aggs: []Aggregate{{Op: aggregation.Sum, Name: numbers.Attr, Alias: "s"}},
			},
			// order by over a single aggregate row
			{
				Relation: "numbers", Args: []uint64{10},
				Aggs:     []Aggregate{{Op: aggregation.Sum, Name: numbers.Attr, Alias: "s"}},
				Fs:       []top.Field{{Attr: "s", Type: top.Descending}},
				Limit:    1,
				HasLimit: true,
			},
			// duplicate output attribute
			{
				Relation: "numbers", Args: []uint64{10},
				Es: []extend.Extend{number(), number()},
				As: []string{"n", "n"},
			},
			// group key clashing with an aggregate alias
			{
				Relation: "numbers", Args: []uint64{10},
				Aggs: []Aggregate{{Op: aggregation.Sum, Name: numbers.Attr, Alias: "k"}},
				Gs:   []extend.Extend{number()},
				GAs:  []string{"k"},
			},
			// aggregate over a constant expression
			{
				Relation: "numbers", Args: []uint64{10},
				Aggs: []Aggregate{{
					Op:    aggregation.Sum,
					E:     extend.NewUint64Value(1),
					Alias: "s",
				}},
			},
			// order by without limit
			{
				Relation: "numbers", Args: []uint64{10},
				Es: []extend.Extend{number()},
				As: []string{"number"},
				Fs: []top.Field{{Attr: "number", Type: top.Descending}},
			},
			// order by attribute outside the select list
			{
				Relation: "numbers", Args: []uint64{10},
				Es:       []extend.Extend{number()},
				As:       []string{"n"},
				Fs:       []top.Field{{Attr: "number", Type: top.Descending}},
				Limit:    1,
				HasLimit: true,
			},
			// group by without aggregates
			{
				Relation: "numbers", Args: []uint64{10},
				Es: []extend.Extend{number()},
				As: []string{"number"},
				Gs: []extend.Extend{number()}, GAs: []string{"k"},
			},
			// unknown attribute
			{
				Relation: "numbers", Args: []uint64{10},
				Aggs: []Aggregate{{Op: aggregation.Sum, Name: "missing", Alias: "s"}},
			},
			// where clause that is not a predicate
			{
				Relation: "numbers", Args: []uint64{10},
				Where: &extend.BinaryExtend{
					Op:    overload.Plus,
					Left:  number(),
					Right: extend.NewUint64Value(1),
				},
				Aggs: []Aggregate{{Op: aggregation.Sum, Name: numbers.Attr, Alias: "s"}},
			},
		}
		for _, qry := range cases {
			_, err := run(qry, 1<<32)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestMemoryLimit(t *testing.T) {
	Convey("a query over its memory budget fails instead of running away", t, func() {
		qry := aggQuery(1000000, 4,
			Aggregate{Op: aggregation.Sum, Name: numbers.Attr, Alias: "sum"})
		hm := host.New(1 << 10)
		gm := guest.New(1<<10, hm)
		proc := process.New(gm, mempool.New())
		proc.Lim.Size = 1 << 10
		proc.Lim.BatchRows = 1024

		pool, err := ants.NewPool(4)
		So(err, ShouldBeNil)
		defer pool.Release()

		ex, err := New(numbers.New(), proc, pool).Compile(qry)
		So(err, ShouldBeNil)
		err = ex.Run(nil, func(_ interface{}, _ *batch.Batch) error {
			return nil
		})
		So(err, ShouldNotBeNil)
	})
}
