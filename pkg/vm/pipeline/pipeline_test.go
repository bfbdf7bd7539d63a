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

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/container/types"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/aggregation/aggfunc"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/connector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/extend"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergesum"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/output"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/projection"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/summarize"
	"github.com/datafusedev/fuse-query/pkg/vm"
	"github.com/datafusedev/fuse-query/pkg/vm/engine/numbers"
	"github.com/datafusedev/fuse-query/pkg/vm/mempool"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/guest"
	"github.com/datafusedev/fuse-query/pkg/vm/mmu/host"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func newTestProcess(hm *host.Mmu) *process.Process {
	gm := guest.New(1<<30, hm)
	proc := process.New(gm, mempool.New())
	proc.Lim.BatchRows = 64
	return proc
}

func sumExtend(t *testing.T) aggregation.Extend {
	agg, err := aggfunc.New(aggregation.Sum, types.New(types.T_uint64))
	require.NoError(t, err)
	return aggregation.Extend{
		Op:    aggregation.Sum,
		Name:  numbers.Attr,
		Alias: "sum(number)",
		Agg:   agg,
	}
}

// Exercises the whole stream protocol over one partition: batches flow
// until the reader runs dry, the flush pass emits the partial state, and
// the terminator ends the source pipeline before the merge side
// finalizes.
func TestRunAndMerge(t *testing.T) {
	hm := host.New(1 << 30)
	srcProc := newTestProcess(hm)
	reg := &process.WaitRegister{Ch: make(chan interface{}, 2)}

	rs, err := numbers.NewRelation(1000).NewReaders(1)
	require.NoError(t, err)

	src := New([]uint64{1}, []string{numbers.Attr}, vm.Instructions{
		{Op: vm.Summarize, Arg: &summarize.Argument{Es: []aggregation.Extend{sumExtend(t)}}},
		{Op: vm.Connector, Arg: &connector.Argument{Reg: reg}},
	})
	end, err := src.Run(rs[0], srcProc)
	require.NoError(t, err)
	require.True(t, end)
	// all slabs returned: the partial state owns no batch memory
	require.Equal(t, int64(0), srcProc.Size())

	var got []uint64
	mergeProc := newTestProcess(hm)
	mergeProc.Reg.Ws = []*process.WaitRegister{reg}
	merge := New(nil, nil, vm.Instructions{
		{Op: vm.MergeSum, Arg: &mergesum.Argument{Es: []aggregation.Extend{sumExtend(t)}}},
		{Op: vm.Output, Arg: &output.Argument{
			Func: func(_ interface{}, bat *batch.Batch) error {
				got = append(got, bat.Vecs[0].Col.([]uint64)...)
				return nil
			},
		}},
	})
	end, err = merge.RunMerge(mergeProc)
	require.NoError(t, err)
	require.True(t, end)
	require.Equal(t, []uint64{499500}, got)
	require.Equal(t, int64(0), mergeProc.Size())
}

// The reader's nil at exhaustion must reach the operators as an
// interface nil; a typed nil in the register would read as a live batch
// and the flush pass would dereference it.
func TestRunExhaustedReader(t *testing.T) {
	hm := host.New(1 << 30)
	proc := newTestProcess(hm)
	reg := &process.WaitRegister{Ch: make(chan interface{}, 2)}

	rs, err := numbers.NewRelation(0).NewReaders(1)
	require.NoError(t, err)

	src := New([]uint64{1}, []string{numbers.Attr}, vm.Instructions{
		{Op: vm.Projection, Arg: &projection.Argument{
			As: []string{numbers.Attr},
			Es: []extend.Extend{&extend.Attribute{Name: numbers.Attr, Type: types.T_uint64}},
		}},
		{Op: vm.Connector, Arg: &connector.Argument{Reg: reg}},
	})
	end, err := src.Run(rs[0], proc)
	require.NoError(t, err)
	require.True(t, end)
	// only the terminator was sent
	require.Nil(t, <-reg.Ch)
	require.Equal(t, int64(0), proc.Size())
}

// brokenReader emits a batch violating the unique-attribute invariant.
type brokenReader struct {
	done bool
}

func (r *brokenReader) Read(_ *process.Process, _ []uint64, _ []string) (*batch.Batch, error) {
	if r.done {
		return nil, nil
	}
	r.done = true
	return batch.New(true, []string{"a", "a"}), nil
}

func TestRunRejectsMalformedBatch(t *testing.T) {
	hm := host.New(1 << 30)
	proc := newTestProcess(hm)
	reg := &process.WaitRegister{Ch: make(chan interface{}, 2)}

	src := New([]uint64{1, 1}, []string{"a", "a"}, vm.Instructions{
		{Op: vm.Connector, Arg: &connector.Argument{Reg: reg}},
	})
	_, err := src.Run(&brokenReader{}, proc)
	require.Error(t, err)
}

func TestRunMergeCancelled(t *testing.T) {
	hm := host.New(1 << 30)
	proc := newTestProcess(hm)
	reg := &process.WaitRegister{Ch: make(chan interface{}, 2)}
	proc.Reg.Ws = []*process.WaitRegister{reg}

	// nothing was ever produced; cancellation must still unblock the
	// merge pipeline without a flush
	proc.Cancel()
	var fills int
	merge := New(nil, nil, vm.Instructions{
		{Op: vm.MergeSum, Arg: &mergesum.Argument{Es: []aggregation.Extend{sumExtend(t)}}},
		{Op: vm.Output, Arg: &output.Argument{
			Func: func(_ interface{}, _ *batch.Batch) error {
				fills++
				return nil
			},
		}},
	})
	end, err := merge.RunMerge(proc)
	require.NoError(t, err)
	require.True(t, end)
	require.Equal(t, 0, fills)
}
