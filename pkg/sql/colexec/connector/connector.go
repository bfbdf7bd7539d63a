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

// Package connector is the tail of a partition pipeline: it hands each
// produced message to the merge pipeline's wait register and finishes
// with a nil terminator. Sends yield to cancellation so an abandoned
// consumer never wedges a worker.
package connector

import (
	"bytes"

	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

func String(_ interface{}, buf *bytes.Buffer) {
	buf.WriteString("γ")
}

func Prepare(_ *process.Process, _ interface{}) error {
	return nil
}

func Call(proc *process.Process, arg interface{}) (bool, error) {
	n := arg.(*Argument)
	if proc.Reg.Ax == nil {
		select {
		case <-proc.Ctx.Done():
		case n.Reg.Ch <- nil:
		}
		return true, nil
	}
	select {
	case <-proc.Ctx.Done():
		// The consumer gave up; nothing more to deliver.
		proc.Reg.Ax = nil
		return true, nil
	case n.Reg.Ch <- proc.Reg.Ax:
	}
	return false, nil
}
