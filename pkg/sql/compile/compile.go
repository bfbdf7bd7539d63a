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

// Package compile lowers a query description into one pipeline per
// partition plus a merge pipeline, and schedules them over a worker
// pool. Aggregation, grouping and ordering run partition-local first;
// only partial states cross the merge boundary.
package compile

import (
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/aggfunc"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/group"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/limit"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergegroup"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergesum"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergetop"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/projection"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/restrict"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/summarize"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/top"
	"github.com/datafusedev/fuse-query/pkg/vm"
)

func (c *Compile) Compile(qry *Query) (*Exec, error) {
	n := qry.Parallel
	if n < 1 {
		n = 1
	}
	rel, err := c.e.Relation(qry.Relation, qry.Args...)
	if err != nil {
		return nil, err
	}
	amap := make(map[string]types.Type)
	attrs := make([]string, 0, 1)
	for _, attr := range rel.Attributes() {
		amap[attr.Name] = attr.Type
		attrs = append(attrs, attr.Name)
	}
	if err := check(qry, amap); err != nil {
		return nil, err
	}
	readers, err := rel.NewReaders(n)
	if err != nil {
		return nil, err
	}
	cs := make([]uint64, len(attrs))
	for i := range cs {
		cs[i] = 1
	}
	ex := &Exec{
		cs:     cs,
		attrs:  attrs,
		proc:   c.proc,
		pool:   c.pool,
		scopes: make([]*Scope, n),
		errs:   make([]error, n),
	}
	for i := 0; i < n; i++ {
		ins, err := sourceInstructions(qry, amap)
		if err != nil {
			return nil, err
		}
		ex.scopes[i] = &Scope{
			Proc:   c.proc.NewChild(fmt.Sprintf("%v", i)),
			Reader: readers[i],
			Ins:    ins,
		}
	}
	mergeIns, err := mergeInstructions(qry, amap)
	if err != nil {
		return nil, err
	}
	ex.mergeIns = mergeIns
	return ex, nil
}

// check rejects queries the engine cannot run before any worker starts.
func check(qry *Query, amap map[string]types.Type) error {
	if len(qry.Es) == 0 && len(qry.Aggs) == 0 {
		return moerr.NewBadConfig("empty select list")
	}
	if len(qry.Es) != len(qry.As) {
		return moerr.NewBadConfig("select list has %v expressions and %v aliases", len(qry.Es), len(qry.As))
	}
	if len(qry.Gs) != len(qry.GAs) {
		return moerr.NewBadConfig("group by has %v expressions and %v aliases", len(qry.Gs), len(qry.GAs))
	}
	if len(qry.Gs) > 0 && len(qry.Aggs) == 0 {
		return moerr.NewBadConfig("group by without aggregates")
	}
	if len(qry.Fs) > 0 && !qry.HasLimit {
		return moerr.NewBadConfig("order by requires a limit")
	}
	if len(qry.Fs) > 0 && len(qry.Aggs) > 0 && len(qry.Gs) == 0 {
		return moerr.NewBadConfig("order by over a single aggregate row")
	}
	if attr := dupAttr(qry.As); attr != "" {
		return moerr.NewBadConfig("duplicate output attribute '%s'", attr)
	}
	if attr := dupAttr(qry.GAs, aggAliases(qry)); attr != "" {
		return moerr.NewBadConfig("duplicate output attribute '%s'", attr)
	}
	if qry.Where != nil {
		for _, attr := range qry.Where.Attributes() {
			if _, ok := amap[attr]; !ok {
				return moerr.NewBadConfig("attribute '%s' not exist", attr)
			}
		}
		if qry.Where.ReturnType() != types.T_sel {
			return moerr.NewTypeMismatch("where clause is not a predicate")
		}
	}
	for _, agg := range qry.Aggs {
		if agg.E != nil {
			attrs := agg.E.Attributes()
			if len(attrs) == 0 {
				return moerr.NewBadConfig("aggregate '%s' has a constant argument", agg.Alias)
			}
			for _, attr := range attrs {
				if _, ok := amap[attr]; !ok {
					return moerr.NewBadConfig("attribute '%s' not exist", attr)
				}
			}
			continue
		}
		if _, ok := amap[agg.Name]; !ok {
			return moerr.NewBadConfig("attribute '%s' not exist", agg.Name)
		}
	}
	for _, g := range qry.Gs {
		for _, attr := range g.Attributes() {
			if _, ok := amap[attr]; !ok {
				return moerr.NewBadConfig("attribute '%s' not exist", attr)
			}
		}
	}
	// plain select expressions read the relation; with aggregates present
	// they read the finalized aggregate row instead
	if len(qry.Aggs) > 0 {
		schema := outSchema(qry, amap)
		for _, e := range qry.Es {
			if err := checkSchema(e, schema); err != nil {
				return err
			}
		}
	} else {
		for _, e := range qry.Es {
			for _, attr := range e.Attributes() {
				if _, ok := amap[attr]; !ok {
					return moerr.NewBadConfig("attribute '%s' not exist", attr)
				}
			}
		}
	}
	if len(qry.Fs) > 0 {
		attrs := qry.As
		if len(qry.Gs) > 0 && len(qry.Es) == 0 {
			attrs = append(append([]string{}, qry.GAs...), aggAliases(qry)...)
		}
		for _, f := range qry.Fs {
			ok := false
			for _, a := range attrs {
				if a == f.Attr {
					ok = true
					break
				}
			}
			if !ok {
				return moerr.NewBadConfig("order by attribute '%s' not in select list", f.Attr)
			}
		}
	}
	return nil
}

func aggAliases(qry *Query) []string {
	as := make([]string, len(qry.Aggs))
	for i, agg := range qry.Aggs {
		as[i] = agg.Alias
	}
	return as
}

// dupAttr reports the first attribute appearing twice across the given
// lists; output attributes of one batch must be unique.
func dupAttr(lists ...[]string) string {
	seen := make(map[string]struct{})
	for _, attrs := range lists {
		for _, attr := range attrs {
			if _, ok := seen[attr]; ok {
				return attr
			}
			seen[attr] = struct{}{}
		}
	}
	return ""
}

// argType resolves the type an aggregate folds over.
func argType(agg Aggregate, amap map[string]types.Type) types.Type {
	if agg.E != nil {
		return types.New(agg.E.ReturnType())
	}
	return amap[agg.Name]
}

// argName is the attribute carrying the aggregate's argument: the bare
// column, or the synthetic column derived ahead of the aggregation.
func argName(agg Aggregate) string {
	if agg.E != nil {
		return agg.E.String()
	}
	return agg.Name
}

// outSchema is the attribute row emitted by the merge-side aggregation:
// group keys followed by finalized aggregates.
func outSchema(qry *Query, amap map[string]types.Type) map[string]types.Type {
	schema := make(map[string]types.Type, len(qry.GAs)+len(qry.Aggs))
	for i, g := range qry.Gs {
		schema[qry.GAs[i]] = types.New(g.ReturnType())
	}
	for _, agg := range qry.Aggs {
		schema[agg.Alias] = aggfunc.ReturnType(agg.Op, argType(agg, amap))
	}
	return schema
}

// checkSchema verifies that every column reference in e exists in the
// schema and declares the type the schema assigns to it.
func checkSchema(e extend.Extend, schema map[string]types.Type) error {
	switch v := e.(type) {
	case *extend.Attribute:
		typ, ok := schema[v.Name]
		if !ok {
			return moerr.NewBadConfig("attribute '%s' not exist", v.Name)
		}
		if typ.Oid != v.Type {
			return moerr.NewTypeMismatch("attribute '%s' is %s, not %s", v.Name, typ.Oid, v.Type)
		}
	case *extend.UnaryExtend:
		return checkSchema(v.E, schema)
	case *extend.ParenExtend:
		return checkSchema(v.E, schema)
	case *extend.BinaryExtend:
		if err := checkSchema(v.Left, schema); err != nil {
			return err
		}
		return checkSchema(v.Right, schema)
	}
	return nil
}

// aggExtends builds fresh aggregation states, one set per call, so each
// partition and the merge side fold independently.
func aggExtends(qry *Query, amap map[string]types.Type) ([]aggregation.Extend, error) {
	es := make([]aggregation.Extend, len(qry.Aggs))
	for i, agg := range qry.Aggs {
		a, err := aggfunc.New(agg.Op, argType(agg, amap))
		if err != nil {
			return nil, err
		}
		es[i] = aggregation.Extend{
			Op:    agg.Op,
			Name:  argName(agg),
			Alias: agg.Alias,
			Agg:   a,
		}
	}
	return es, nil
}

// prepProjection derives the aggregate argument columns ahead of the
// aggregation operator, passing the group-by inputs through untouched.
// Nil when every aggregate folds a bare column.
func prepProjection(qry *Query, amap map[string]types.Type) *projection.Argument {
	derived := false
	for _, agg := range qry.Aggs {
		if agg.E != nil {
			derived = true
			break
		}
	}
	if !derived {
		return nil
	}
	arg := new(projection.Argument)
	seen := make(map[string]struct{})
	add := func(name string, e extend.Extend) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		arg.As = append(arg.As, name)
		arg.Es = append(arg.Es, e)
	}
	for _, agg := range qry.Aggs {
		if agg.E != nil {
			add(agg.E.String(), agg.E)
			continue
		}
		add(agg.Name, &extend.Attribute{Name: agg.Name, Type: amap[agg.Name].Oid})
	}
	for _, g := range qry.Gs {
		for _, attr := range g.Attributes() {
			add(attr, &extend.Attribute{Name: attr, Type: amap[attr].Oid})
		}
	}
	return arg
}

func sourceInstructions(qry *Query, amap map[string]types.Type) (vm.Instructions, error) {
	var ins vm.Instructions

	if qry.Where != nil {
		ins = append(ins, vm.Instruction{
			Op:  vm.Restrict,
			Arg: &restrict.Argument{E: qry.Where},
		})
	}
	switch {
	case len(qry.Gs) > 0:
		es, err := aggExtends(qry, amap)
		if err != nil {
			return nil, err
		}
		if arg := prepProjection(qry, amap); arg != nil {
			ins = append(ins, vm.Instruction{Op: vm.Projection, Arg: arg})
		}
		ins = append(ins, vm.Instruction{
			Op:  vm.Group,
			Arg: &group.Argument{As: qry.GAs, Gs: qry.Gs, Es: es},
		})
	case len(qry.Aggs) > 0:
		es, err := aggExtends(qry, amap)
		if err != nil {
			return nil, err
		}
		if arg := prepProjection(qry, amap); arg != nil {
			ins = append(ins, vm.Instruction{Op: vm.Projection, Arg: arg})
		}
		ins = append(ins, vm.Instruction{
			Op:  vm.Summarize,
			Arg: &summarize.Argument{Es: es},
		})
	default:
		ins = append(ins, vm.Instruction{
			Op:  vm.Projection,
			Arg: &projection.Argument{As: qry.As, Es: qry.Es},
		})
		if len(qry.Fs) > 0 {
			ins = append(ins, vm.Instruction{
				Op:  vm.Top,
				Arg: &top.Argument{Limit: int64(qry.Limit), Fs: qry.Fs},
			})
		}
	}
	ins = append(ins, vm.Instruction{Op: vm.Connector})
	return ins, nil
}

func mergeInstructions(qry *Query, amap map[string]types.Type) (vm.Instructions, error) {
	var ins vm.Instructions

	switch {
	case len(qry.Gs) > 0:
		es, err := aggExtends(qry, amap)
		if err != nil {
			return nil, err
		}
		ins = append(ins, vm.Instruction{
			Op:  vm.MergeGroup,
			Arg: &mergegroup.Argument{As: qry.GAs, Es: es},
		})
		if len(qry.Es) > 0 {
			ins = append(ins, vm.Instruction{
				Op:  vm.Projection,
				Arg: &projection.Argument{As: qry.As, Es: qry.Es},
			})
		}
		switch {
		case len(qry.Fs) > 0:
			// the merged group table is one batch, so the partition-local
			// ranker doubles as the global one here
			ins = append(ins, vm.Instruction{
				Op:  vm.Top,
				Arg: &top.Argument{Limit: int64(qry.Limit), Fs: qry.Fs},
			})
		case qry.HasLimit:
			ins = append(ins, vm.Instruction{
				Op:  vm.Limit,
				Arg: &limit.Argument{Limit: qry.Limit},
			})
		}
	case len(qry.Aggs) > 0:
		es, err := aggExtends(qry, amap)
		if err != nil {
			return nil, err
		}
		ins = append(ins, vm.Instruction{
			Op:  vm.MergeSum,
			Arg: &mergesum.Argument{Es: es},
		})
		if len(qry.Es) > 0 {
			ins = append(ins, vm.Instruction{
				Op:  vm.Projection,
				Arg: &projection.Argument{As: qry.As, Es: qry.Es},
			})
		}
	case len(qry.Fs) > 0:
		ins = append(ins, vm.Instruction{
			Op:  vm.MergeTop,
			Arg: &mergetop.Argument{Limit: int64(qry.Limit), Fs: qry.Fs},
		})
	default:
		if qry.HasLimit {
			ins = append(ins, vm.Instruction{
				Op:  vm.Limit,
				Arg: &limit.Argument{Limit: qry.Limit},
			})
		}
	}
	return ins, nil
}
