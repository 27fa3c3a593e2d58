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
	"runtime"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Placeholders used by [FormatFrame] for missing frame data.
const (
	UnknownFile   = "**"
	UnknownClass  = "UnknownClass"
	UnknownMethod = "UnknownMethod"
)

// maxStackDepth bounds the number of frames [CaptureStackTrace] collects.
const maxStackDepth = 64

// Method describes the function executing in a [Frame].
type Method struct {
	// DeclaringType is the type (or package, for plain functions) the method
	// belongs to. Empty when it could not be resolved.
	DeclaringType string

	// Name is the method name.
	Name string
}

// Frame is one entry of a captured call stack.
type Frame struct {
	// File is the source file. Empty when unknown.
	File string

	// Line and Column are 1-based. Go's runtime does not report columns,
	// so frames captured from it carry Column 0.
	Line   int
	Column int

	// Method is nil when the method lookup failed.
	Method *Method
}

// StackTrace is a sequence of frames, outermost call first as supplied by
// the capturing facility.
type StackTrace []Frame

// FormatFrame renders f as "{class}.{method} in {file}({line},{col})".
//
// Missing pieces fall back in tiers: no file renders "**"; a method without
// a declaring type renders "UnknownClass.{method}"; no method at all renders
// "UnknownClass.UnknownMethod", even if a type could otherwise be resolved.
func FormatFrame(f Frame) string {
	class, method := UnknownClass, UnknownMethod
	if f.Method != nil {
		method = f.Method.Name
		if f.Method.DeclaringType != "" {
			class = f.Method.DeclaringType
		}
	}

	file := f.File
	if file == "" {
		file = UnknownFile
	}

	var b strings.Builder
	b.Grow(len(class) + len(method) + len(file) + 16)
	b.WriteString(class)
	b.WriteByte('.')
	b.WriteString(method)
	b.WriteString(" in ")
	b.WriteString(file)
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(f.Line))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(f.Column))
	b.WriteByte(')')
	return b.String()
}

// CaptureStackTrace returns the calling goroutine's stack.
//
// Skip parameter: number of frames to skip.
//   - 0: the caller of CaptureStackTrace is the first frame
//   - 1: skips the caller as well
func CaptureStackTrace(skip int) StackTrace {
	pcs := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and CaptureStackTrace itself
	n := runtime.Callers(skip+2, pcs)
	return framesFromPCs(pcs[:n])
}

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTraceFromError returns the stack recorded by the first error in err's
// chain that carries one: a [*PanicError], or an error built with
// github.com/pkg/errors (New, Errorf, WithStack, Wrap).
func StackTraceFromError(err error) (StackTrace, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch v := e.(type) {
		case *PanicError:
			return v.Stack, true
		case stackTracer:
			st := v.StackTrace()
			pcs := make([]uintptr, len(st))
			for i, f := range st {
				pcs[i] = uintptr(f)
			}
			return framesFromPCs(pcs), true
		}
	}
	return nil, false
}

// framesFromPCs resolves program counters to frames.
func framesFromPCs(pcs []uintptr) StackTrace {
	if len(pcs) == 0 {
		return nil
	}

	trace := make(StackTrace, 0, len(pcs))
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		trace = append(trace, runtimeFrame(frame))
		if !more {
			break
		}
	}
	return trace
}

func runtimeFrame(rf runtime.Frame) Frame {
	f := Frame{
		File: rf.File,
		Line: rf.Line,
	}
	if rf.Function != "" {
		typ, name := splitFunctionName(rf.Function)
		f.Method = &Method{DeclaringType: typ, Name: name}
	}
	return f
}

// splitFunctionName splits a runtime function name into its declaring type
// and method name.
//
//	example.com/app/pkg.(*Server).Start  -> "pkg.Server", "Start"
//	example.com/app/pkg.Handle           -> "pkg", "Handle"
//	example.com/app/pkg.Handle.func1     -> "pkg", "Handle.func1"
//	example.com/app/pkg.Map[...]         -> "pkg", "Map"
func splitFunctionName(full string) (typ, name string) {
	full = stripTypeParams(full)

	rest := full
	if i := strings.LastIndexByte(rest, '/'); i >= 0 {
		rest = rest[i+1:]
	}

	if i := strings.Index(rest, ".("); i >= 0 {
		if end := strings.Index(rest[i:], ")."); end > 0 {
			recv := strings.TrimPrefix(rest[i+2:i+end], "*")
			return rest[:i] + "." + recv, rest[i+end+2:]
		}
	}

	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		return "", rest
	}
	return rest[:dot], rest[dot+1:]
}

// stripTypeParams removes instantiation brackets such as "[...]" from a
// generic function name.
func stripTypeParams(name string) string {
	for {
		open := strings.IndexByte(name, '[')
		if open < 0 {
			return name
		}
		closing := strings.IndexByte(name[open:], ']')
		if closing < 0 {
			return name[:open]
		}
		name = name[:open] + name[open+closing+1:]
	}
}
