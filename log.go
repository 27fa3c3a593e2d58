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
	"fmt"
	"runtime"
)

// Messages emitted by the failure paths.
const (
	errorOccurredMessage  = "An error occurred."
	fallbackMessageFormat = "An error occurred. Using fallback value `%v`."
)

// Log is the logging contract exposed to scripts.
//
// Every message a Log emits is "prefix: body". Warnings and errors are also
// printed, so console output shows every failure even when nobody watches
// the dedicated warning or error channel.
type Log interface {
	// Prefix returns the label prepended to every message.
	Prefix() string

	// Print sends message to the print channel.
	Print(message string)

	// PrintTrace prints one line per frame of trace, in order.
	PrintTrace(trace StackTrace)

	// PrintError reports err through the error path as two messages:
	// "An error occurred." followed by the error's description.
	PrintError(err error)

	// Warn sends message to the print and warning channels.
	Warn(message string)

	// Error sends message to the print and error channels.
	Error(message string)

	// Assert reports message as an error and returns an [*AssertionError]
	// when condition is false.
	Assert(condition bool, message string) error

	// Run invokes fn. A failure is reported with PrintError, handed to
	// onError when it is non-nil, and then returned unchanged.
	Run(fn func() error, onError func(error)) error
}

// Compile-time interface checks
var _ Log = (*Logger)(nil)

// Logger is the [Log] implementation that forwards to a set of [Sinks].
//
// Thread-safety: a Logger is immutable after [New] and safe for concurrent
// use as long as its sinks are. The bundled hosts serialize their writes;
// custom sinks shared across goroutines must do the same.
type Logger struct {
	prefix string
	sinks  Sinks

	// hostSet records that WithHost was applied, so a nil host is reported
	// instead of silently falling back to the default.
	hostSet bool
}

// Option is a functional option for configuring a [Logger].
type Option func(*Logger)

// New creates a Logger that labels every message with prefix.
//
// Without options the logger reports to a [StdHost].
func New(prefix string, opts ...Option) (*Logger, error) {
	l := &Logger{prefix: prefix}

	for _, opt := range opts {
		opt(l)
	}

	if !l.hostSet && l.sinks.Print == nil && l.sinks.PushWarning == nil && l.sinks.PushError == nil {
		l.sinks = DefaultSinks()
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return l, nil
}

// MustNew creates a Logger or panics on error.
func MustNew(prefix string, opts ...Option) *Logger {
	l, err := New(prefix, opts...)
	if err != nil {
		panic("gdlog initialization failed: " + err.Error())
	}
	return l
}

// Validate checks if the configuration is valid.
func (l *Logger) Validate() error {
	if l.prefix == "" {
		return ErrEmptyPrefix
	}
	if l.hostSet && l.sinks.Print == nil {
		return ErrNilHost
	}
	return l.sinks.Validate()
}

// Prefix returns the label prepended to every message.
func (l *Logger) Prefix() string {
	return l.prefix
}

// Sinks returns the channels the logger writes to.
func (l *Logger) Sinks() Sinks {
	return l.sinks
}

// Print sends message to the print channel.
func (l *Logger) Print(message string) {
	l.sinks.Print(l.format(message))
}

// PrintTrace prints every frame of trace on its own line.
// See [FormatFrame] for the line layout.
func (l *Logger) PrintTrace(trace StackTrace) {
	for _, frame := range trace {
		l.Print(FormatFrame(frame))
	}
}

// PrintError reports err through the error path. Both lines reach the
// print and error channels. A nil err is ignored.
func (l *Logger) PrintError(err error) {
	if err == nil {
		return
	}
	l.Error(errorOccurredMessage)
	l.Error(Describe(err))
}

// Warn sends message to the print and warning channels.
func (l *Logger) Warn(message string) {
	formatted := l.format(message)
	l.sinks.Print(formatted)
	l.sinks.PushWarning(formatted)
}

// Error sends message to the print and error channels.
func (l *Logger) Error(message string) {
	formatted := l.format(message)
	l.sinks.Print(formatted)
	l.sinks.PushError(formatted)
}

// Assert does nothing when condition holds. Otherwise it reports message as
// an error and returns an [*AssertionError] locating the Assert call.
//
// Example:
//
//	if err := log.Assert(player != nil, "player must be spawned first"); err != nil {
//	    return err
//	}
func (l *Logger) Assert(condition bool, message string) error {
	if condition {
		return nil
	}

	l.Error(message)

	aerr := &AssertionError{Message: message}
	if _, file, line, ok := runtime.Caller(1); ok {
		aerr.File = file
		aerr.Line = line
	}
	return aerr
}

// Run invokes fn and returns its error unchanged.
//
// On failure the error is reported with [Logger.PrintError] and passed to
// onError (when non-nil) before Run returns. A panic inside fn is reported
// the same way as a [*PanicError] and then re-raised with the original value.
//
// Example:
//
//	err := log.Run(loadSaveGame, func(err error) {
//	    ui.ShowToast("could not load save")
//	})
func (l *Logger) Run(fn func() error, onError func(error)) error {
	_, err := RunValue(l, func() (struct{}, error) {
		return struct{}{}, fn()
	}, onError)
	return err
}

// RunContext is [Logger.Run] for context-aware work. On failure, the span
// carried by ctx (if it is recording) also gets the error recorded and its
// status set to Error.
func (l *Logger) RunContext(ctx context.Context, fn func(context.Context) error, onError func(error)) error {
	_, err := runValue(l, func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, func(err error) {
		recordSpanError(ctx, l.prefix, err)
		if onError != nil {
			onError(err)
		}
	})
	return err
}

// format prepends the logger's prefix.
func (l *Logger) format(message string) string {
	return l.prefix + ": " + message
}
