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

// Package restrict applies a WHERE predicate to a batch. The qualifying
// rows are materialized immediately, so downstream operators never see a
// selection filter.
package restrict

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
	"github.com/datafusedev/fuse-query/pkg/vm/register"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString(fmt.Sprintf("σ(%s)", n.E))
}

func Prepare(_ *process.Process, _ interface{}) error {
	return nil
}

func Call(proc *process.Process, arg interface{}) (bool, error) {
	if proc.Reg.Ax == nil {
		return false, nil
	}
	n := arg.(*Argument)
	bat := proc.Reg.Ax.(*batch.Batch)
	vec, _, err := n.E.Eval(bat, proc)
	if err != nil {
		bat.Free(proc)
		proc.Reg.Ax = nil
		return false, err
	}
	sels := vec.Col.([]int64)
	if len(sels) < bat.Length() {
		for _, v := range bat.Vecs {
			v.Shuffle(sels)
		}
	}
	if vec.Data != nil {
		register.Put(proc, vec)
	}
	proc.Reg.Ax = bat
	return false, nil
}
