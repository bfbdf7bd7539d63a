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

package moerr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	require.Equal(t, int32(Ok), Code(nil))
	require.Equal(t, int32(ErrDivByZero), Code(NewDivByZero()))
	require.True(t, IsError(NewModByZero(), ErrModByZero))
	require.False(t, IsError(NewModByZero(), ErrDivByZero))

	// wrapped errors keep their code
	err := fmt.Errorf("run query: %w", NewBadConfig("empty select list"))
	require.True(t, IsError(err, ErrBadConfig))

	// foreign errors map to the internal code
	require.Equal(t, int32(ErrInternal), Code(fmt.Errorf("boom")))
}

func TestMessage(t *testing.T) {
	err := NewTypeMismatch("'%s' not supported between %s and %s", "+", "int64", "float64")
	require.Equal(t, "'+' not supported between int64 and float64", err.Error())
	require.Equal(t, "out of range", (&Error{Code: ErrOutOfRange}).Error())
}

func TestPanicError(t *testing.T) {
	err := NewPanicError("index out of range")
	require.Equal(t, int32(ErrInternal), err.Code)

	// a panicking moerr passes through unchanged
	orig := NewDivByZero()
	require.Same(t, orig, NewPanicError(orig))
}
