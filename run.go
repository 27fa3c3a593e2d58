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
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lewiji/go-dot-log/telemetry/semconv"
)

// RunValue invokes fn and returns its result.
//
// Use RunValue where a failure must propagate (for example to abort start-up)
// but should be visible in the logs first. On failure:
//  1. the error is reported with [Log.PrintError] (print and error channels)
//  2. onError, when non-nil, is called with the error
//  3. the error is returned unchanged, not wrapped
//
// A panic inside fn goes through steps 1 and 2 as a [*PanicError] and is then
// re-raised with the original panic value.
//
// Example:
//
//	level, err := gdlog.RunValue(log, loadLevel, nil)
//	if err != nil {
//	    return err // already logged
//	}
func RunValue[T any](l Log, fn func() (T, error), onError func(error)) (T, error) {
	return runValue(l, fn, onError)
}

func runValue[T any](l Log, fn func() (T, error), onError func(error)) (T, error) {
	value, p, err := call(fn)
	if err == nil {
		return value, nil
	}

	l.PrintError(err)
	if onError != nil {
		onError(err)
	}

	if p != nil {
		panic(p.Value)
	}
	return value, err
}

// Always invokes fn and returns its result, or fallback when fn fails.
//
// Use Always for best-effort work where a sensible default exists. The
// failure is downgraded to two warnings, "An error occurred. Using fallback
// value `{fallback}`." and the error's description, and never reaches the
// caller. Panics are absorbed the same way.
//
// Example:
//
//	volume := gdlog.Always(log, readVolumeSetting, 0.8)
func Always[T any](l Log, fn func() (T, error), fallback T) T {
	value, _, err := call(fn)
	if err == nil {
		return value
	}

	l.Warn(fmt.Sprintf(fallbackMessageFormat, fallback))
	l.Warn(Describe(err))
	return fallback
}

// call invokes fn, turning a panic into a [*PanicError].
func call[T any](fn func() (T, error)) (value T, p *PanicError, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = &PanicError{
				Value: r,
				Stack: CaptureStackTrace(1),
			}
			err = p
		}
	}()

	value, err = fn()
	return value, nil, err
}

// recordSpanError marks the span in ctx as failed, following the OpenTelemetry
// exception conventions. Only panics are flagged as escaped.
func recordSpanError(ctx context.Context, prefix string, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	var p *PanicError
	escaped := errors.As(err, &p)

	attrs := []attribute.KeyValue{
		attribute.String(semconv.LogPrefix, prefix),
		attribute.Bool(semconv.ExceptionEscaped, escaped),
		attribute.String(semconv.ExceptionType, typeName(err)),
		attribute.String(semconv.ExceptionMessage, err.Error()),
	}
	if st, ok := StackTraceFromError(err); ok {
		attrs = append(attrs, attribute.String(semconv.ExceptionStacktrace, formatStackTrace(st)))
	}

	span.SetStatus(codes.Error, errorOccurredMessage)
	span.SetAttributes(attrs...)
	span.RecordError(err)
}

// formatStackTrace renders st with one [FormatFrame] line per frame.
func formatStackTrace(st StackTrace) string {
	lines := make([]string, len(st))
	for i, f := range st {
		lines[i] = FormatFrame(f)
	}
	return strings.Join(lines, "\n")
}
