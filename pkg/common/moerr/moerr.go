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

// Package moerr defines the closed error taxonomy of the query engine.
// Every error that crosses the query boundary carries one of the codes
// below; anything recovered from a panic becomes ErrInternal.
package moerr

import (
	"errors"
	"fmt"
)

const (
	Ok = iota
	// ErrTypeMismatch reports incompatible operand types in an expression.
	ErrTypeMismatch
	// ErrDivByZero is reported on an integer division by zero.
	ErrDivByZero
	// ErrModByZero is reported when computing the rest of a division by zero.
	ErrModByZero
	// ErrOutOfRange is reported when a process exceeds its memory limit.
	ErrOutOfRange
	// ErrBadConfig is reported for unusable engine configuration.
	ErrBadConfig
	// ErrSourceExhausted is reported when a reader cannot produce its
	// partition, e.g. the underlying relation disappeared mid-query.
	ErrSourceExhausted
	// ErrInternal marks an invariant violation. It is never produced by
	// user input and must not be swallowed.
	ErrInternal
)

var errName = [...]string{
	Ok:                 "ok",
	ErrTypeMismatch:    "type mismatch",
	ErrDivByZero:       "division by zero",
	ErrModByZero:       "zero modulus",
	ErrOutOfRange:      "out of range",
	ErrBadConfig:       "bad configuration",
	ErrSourceExhausted: "source exhausted",
	ErrInternal:        "internal error",
}

type Error struct {
	Code int32
	Msg  string
}

func (e *Error) Error() string {
	if len(e.Msg) == 0 {
		return errName[e.Code]
	}
	return e.Msg
}

func New(code int32, msg string, args ...interface{}) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Code: code, Msg: msg}
}

func NewTypeMismatch(msg string, args ...interface{}) *Error {
	return New(ErrTypeMismatch, msg, args...)
}

func NewDivByZero() *Error {
	return &Error{Code: ErrDivByZero, Msg: "division by zero"}
}

func NewModByZero() *Error {
	return &Error{Code: ErrModByZero, Msg: "zero modulus"}
}

func NewOutOfRange(msg string, args ...interface{}) *Error {
	return New(ErrOutOfRange, msg, args...)
}

func NewBadConfig(msg string, args ...interface{}) *Error {
	return New(ErrBadConfig, msg, args...)
}

func NewSourceExhausted(msg string, args ...interface{}) *Error {
	return New(ErrSourceExhausted, msg, args...)
}

func NewInternal(msg string, args ...interface{}) *Error {
	return New(ErrInternal, msg, args...)
}

// NewPanicError converts a recovered panic value. The original value is
// kept in the message so the faulting invariant stays diagnosable.
func NewPanicError(v interface{}) *Error {
	if e, ok := v.(*Error); ok {
		return e
	}
	return New(ErrInternal, "panic: %v", v)
}

// Code extracts the error code, mapping foreign errors to ErrInternal.
func Code(err error) int32 {
	if err == nil {
		return Ok
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInternal
}

func IsError(err error, code int32) bool {
	return Code(err) == code
}
