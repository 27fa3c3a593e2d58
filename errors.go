// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gdlog

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// Sentinel errors returned while constructing a [Logger].
//
// Usage pattern:
//
//	if _, err := gdlog.New(""); errors.Is(err, gdlog.ErrEmptyPrefix) {
//	    // every logger needs a label
//	}
var (
	// ErrEmptyPrefix indicates [New] was called without a prefix.
	// A message is never emitted without its prefix, so an empty one is rejected.
	ErrEmptyPrefix = errors.New("prefix cannot be empty")

	// ErrNilSink indicates one of the three output channels is nil.
	ErrNilSink = errors.New("sink cannot be nil")

	// ErrNilHost indicates [WithHost] was given a nil [Host].
	ErrNilHost = errors.New("host cannot be nil")
)

// AssertionError is returned by [Logger.Assert] when its condition is false.
// The message has already been logged through the error channel when the
// caller receives it.
type AssertionError struct {
	// Message is the text passed to Assert.
	Message string

	// File and Line locate the Assert call. File is empty when the
	// location could not be resolved.
	File string
	Line int
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	if e.File == "" {
		return "assertion failed: " + e.Message
	}
	return "assertion failed at " + e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Message
}

// PanicError carries a value recovered from a panicking callback.
//
// [Logger.Run], [RunValue] and [Always] treat a panic as a failure like any
// returned error. Run logs the PanicError and then re-panics with Value, so
// the original panic reaches the caller unchanged.
type PanicError struct {
	Value any
	Stack StackTrace
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace returns the frames captured where the panic was recovered.
func (e *PanicError) StackTrace() StackTrace {
	return e.Stack
}

// Describe renders err as "{TypeName}: {message}".
//
// The type name is the error's dynamic type without pointer indirection,
// qualified by its package name, e.g. "fs.PathError: open x: no such file".
// A nil error renders as "<nil>".
func Describe(err error) string {
	if err == nil {
		return "<nil>"
	}
	return typeName(err) + ": " + err.Error()
}

// typeName returns the package-qualified name of v's dynamic type.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.String(); name != "" {
		return name
	}
	return "error"
}
