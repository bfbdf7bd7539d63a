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
	"bytes"
	"sync"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/logutil"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/connector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/output"
	"github.com/datafusedev/fuse-query/pkg/vm"
	"github.com/datafusedev/fuse-query/pkg/vm/pipeline"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

// Run executes the compiled query, delivering every result batch to
// fill. The partition pipelines run on the worker pool; the calling
// goroutine drives the merge pipeline. On any failure the other workers
// are cancelled and the first error is returned; fill never sees a
// partial final result.
func (ex *Exec) Run(data interface{}, fill func(interface{}, *batch.Batch) error) error {
	regs := make([]*process.WaitRegister, len(ex.scopes))
	for i := range regs {
		// One slot for the partial result, one for the terminator.
		regs[i] = &process.WaitRegister{
			Ch: make(chan interface{}, 2),
		}
		ex.scopes[i].Ins[len(ex.scopes[i].Ins)-1].Arg = &connector.Argument{Reg: regs[i]}
	}
	ex.proc.Reg.Ws = regs
	mergeIns := append(ex.mergeIns[:len(ex.mergeIns):len(ex.mergeIns)], vm.Instruction{
		Op:  vm.Output,
		Arg: &output.Argument{Data: data, Func: fill},
	})

	// Submission happens off the calling goroutine: with more scopes than
	// pool workers, running producers block on the wait registers until
	// the merge side drains them, so the merge pipeline must already be
	// consuming while the rest of the scopes queue up.
	var wg sync.WaitGroup
	wg.Add(len(ex.scopes))
	go func() {
		for i := range ex.scopes {
			i := i
			s := ex.scopes[i]
			task := func() {
				defer wg.Done()
				defer func() {
					if v := recover(); v != nil {
						ex.setError(i, moerr.NewPanicError(v))
						ex.proc.Cancel()
					}
				}()
				p := pipeline.New(ex.cs, ex.attrs, s.Ins)
				if _, err := p.Run(s.Reader, s.Proc); err != nil {
					ex.setError(i, err)
					// Wake the merge side; it checks for errors before
					// flushing.
					ex.proc.Cancel()
				}
			}
			if err := ex.pool.Submit(task); err != nil {
				// The pool is closed; run inline rather than dropping
				// the partition.
				task()
			}
		}
	}()

	_, err := pipeline.New(nil, nil, mergeIns).RunMerge(ex.proc)
	ex.proc.Cancel()
	wg.Wait()
	ex.drain(regs)
	if err != nil {
		return err
	}
	return ex.firstError()
}

func (ex *Exec) setError(i int, err error) {
	ex.mu.Lock()
	ex.errs[i] = err
	ex.mu.Unlock()
	logutil.Errorf("partition %v failed: %v", i, err)
}

func (ex *Exec) firstError() error {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	for _, err := range ex.errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// drain frees messages abandoned in the wait registers after an early
// end or a failure.
func (ex *Exec) drain(regs []*process.WaitRegister) {
	for _, reg := range regs {
		for drained := false; !drained; {
			select {
			case v := <-reg.Ch:
				if bat, ok := v.(*batch.Batch); ok && bat != nil {
					bat.Free(ex.proc)
				}
			default:
				drained = true
			}
		}
	}
}

func (ex *Exec) String() string {
	var buf bytes.Buffer

	for i, s := range ex.scopes {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(pipeline.New(ex.cs, ex.attrs, s.Ins).String())
	}
	buf.WriteString("\nmerge: ")
	vm.String(ex.mergeIns, &buf)
	return buf.String()
}
