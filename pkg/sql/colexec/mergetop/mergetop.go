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

// Package mergetop re-ranks the per-partition top rows into the global
// result. Partitions are consumed in index order and ties keep the
// earlier row, so reruns produce byte-identical output.
package mergetop

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString("τ̄([")
	for i, f := range n.Fs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s", f))
	}
	buf.WriteString(fmt.Sprintf("], %v)", n.Limit))
}

func Prepare(_ *process.Process, _ interface{}) error {
	return nil
}

func Call(proc *process.Process, arg interface{}) (bool, error) {
	n := arg.(*Argument)
	if proc.Reg.Ax == nil {
		if n.Flushed {
			return false, nil
		}
		n.Flushed = true
		rbat, err := n.Ctr.Eval()
		if err != nil {
			return false, err
		}
		if rbat != nil {
			proc.Reg.Ax = rbat
		}
		return false, nil
	}
	bat := proc.Reg.Ax.(*batch.Batch)
	defer func() {
		bat.Free(proc)
		proc.Reg.Ax = nil
	}()
	if !n.Ctr.Initialized() {
		if err := n.Ctr.Init(n.Limit, n.Fs, bat); err != nil {
			return false, err
		}
	}
	return false, n.Ctr.Process(bat, proc)
}
