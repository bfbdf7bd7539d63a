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

// Package limit truncates the stream after the requested number of rows
// and ends the pipeline early once the quota is met.
package limit

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString(fmt.Sprintf("limit(%v)", n.Limit))
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
	if n.Seen >= n.Limit {
		bat.Free(proc)
		proc.Reg.Ax = nil
		return true, nil
	}
	rows := uint64(bat.Length())
	if n.Seen+rows > n.Limit {
		keep := int64(n.Limit - n.Seen)
		sels := make([]int64, keep)
		for i := range sels {
			sels[i] = int64(i)
		}
		for _, vec := range bat.Vecs {
			vec.Shuffle(sels)
		}
		rows = uint64(keep)
	}
	n.Seen += rows
	proc.Reg.Ax = bat
	return false, nil
}
