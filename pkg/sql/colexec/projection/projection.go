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

// Package projection evaluates the select list over a batch, producing a
// new batch with the output aliases. Columns passed through unchanged
// share their slab with the input instead of copying.
package projection

import (
	"bytes"
	"fmt"

	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func String(arg interface{}, buf *bytes.Buffer) {
	n := arg.(*Argument)
	buf.WriteString("π(")
	for i, e := range n.Es {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s -> %s", e, n.As[i]))
	}
	buf.WriteString(")")
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
	rbat := batch.New(true, n.As)
	for i, e := range n.Es {
		vec, _, err := e.Eval(bat, proc)
		if err != nil {
			bat.Free(proc)
			proc.Reg.Ax = nil
			return false, err
		}
		rbat.Vecs[i] = vec
	}
	// columns passed through unchanged move to the output batch; detach
	// them so freeing the input cannot tear down a shared vector
	for _, vec := range rbat.Vecs {
		for i, v := range bat.Vecs {
			if v == vec {
				bat.Vecs[i] = nil
				break
			}
		}
	}
	bat.Free(proc)
	for _, vec := range rbat.Vecs {
		vec.Ref = 1
	}
	proc.Reg.Ax = rbat
	return false, nil
}
