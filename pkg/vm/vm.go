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

package vm

import (
	"bytes"

	"github.com/datafusedev/fuse-query/pkg/common/moerr"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/connector"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/group"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/limit"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergegroup"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergesum"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/mergetop"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/output"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/projection"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/restrict"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/summarize"
	"github.com/datafusedev/fuse-query/pkg/sql/colexec/top"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

var stringFunc = [...]func(interface{}, *bytes.Buffer){
	Top:        top.String,
	Limit:      limit.String,
	Group:      group.String,
	Output:     output.String,
	Restrict:   restrict.String,
	Summarize:  summarize.String,
	Projection: projection.String,
	Connector:  connector.String,
	MergeTop:   mergetop.String,
	MergeSum:   mergesum.String,
	MergeGroup: mergegroup.String,
}

var prepareFunc = [...]func(*process.Process, interface{}) error{
	Top:        top.Prepare,
	Limit:      limit.Prepare,
	Group:      group.Prepare,
	Output:     output.Prepare,
	Restrict:   restrict.Prepare,
	Summarize:  summarize.Prepare,
	Projection: projection.Prepare,
	Connector:  connector.Prepare,
	MergeTop:   mergetop.Prepare,
	MergeSum:   mergesum.Prepare,
	MergeGroup: mergegroup.Prepare,
}

var execFunc = [...]func(*process.Process, interface{}) (bool, error){
	Top:        top.Call,
	Limit:      limit.Call,
	Group:      group.Call,
	Output:     output.Call,
	Restrict:   restrict.Call,
	Summarize:  summarize.Call,
	Projection: projection.Call,
	Connector:  connector.Call,
	MergeTop:   mergetop.Call,
	MergeSum:   mergesum.Call,
	MergeGroup: mergegroup.Call,
}

func String(ins Instructions, buf *bytes.Buffer) {
	for i, in := range ins {
		if i > 0 {
			buf.WriteString(" -> ")
		}
		stringFunc[in.Op](in.Arg, buf)
	}
}

func Prepare(ins Instructions, proc *process.Process) error {
	for _, in := range ins {
		if in.Op < 0 || in.Op >= len(prepareFunc) {
			return moerr.NewInternal("unknown instruction %v", in.Op)
		}
		if err := prepareFunc[in.Op](proc, in.Arg); err != nil {
			return err
		}
	}
	return nil
}

// Run executes one pass over the instruction list. An operator that
// consumes its input without producing output halts the pass; a true
// result from any operator ends the pipeline.
func Run(ins Instructions, proc *process.Process) (bool, error) {
	for _, in := range ins {
		had := proc.Reg.Ax != nil
		end, err := execFunc[in.Op](proc, in.Arg)
		if err != nil {
			return end, err
		}
		if end {
			return true, nil
		}
		if had && proc.Reg.Ax == nil {
			return false, nil
		}
	}
	return false, nil
}
