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
	"io"
	"os"
	"sync"
)

// Sink receives one formatted message, already prefixed and without a line
// terminator. Terminating the line is the host's job.
type Sink func(message string)

// Sinks groups the three output channels a [Logger] writes to.
//
// Sinks are handed to each logger at construction instead of living in
// package state, so tests can build isolated loggers without saving and
// restoring globals.
type Sinks struct {
	// Print receives every message, including warnings and errors.
	Print Sink

	// PushWarning receives messages from [Logger.Warn].
	PushWarning Sink

	// PushError receives messages from [Logger.Error].
	PushError Sink
}

// Channel names one of the three outputs.
type Channel string

const (
	// ChannelPrint is the normal output channel.
	ChannelPrint Channel = "print"
	// ChannelWarning is the push-warning channel.
	ChannelWarning Channel = "warning"
	// ChannelError is the push-error channel.
	ChannelError Channel = "error"
)

// Channels lists every channel in a stable order.
var Channels = []Channel{ChannelPrint, ChannelWarning, ChannelError}

// Sink returns the sink bound to ch, or nil for an unknown channel.
func (s Sinks) Sink(ch Channel) Sink {
	switch ch {
	case ChannelPrint:
		return s.Print
	case ChannelWarning:
		return s.PushWarning
	case ChannelError:
		return s.PushError
	default:
		return nil
	}
}

// Validate checks that all three channels are set.
func (s Sinks) Validate() error {
	if s.Print == nil || s.PushWarning == nil || s.PushError == nil {
		return ErrNilSink
	}
	return nil
}

// Host is the environment a [Logger] reports to: anything that can accept a
// string on a normal, warning and error channel.
type Host interface {
	Print(message string)
	PushWarning(message string)
	PushError(message string)
}

// HostSinks binds the channels of h to a [Sinks] value.
func HostSinks(h Host) Sinks {
	return Sinks{
		Print:       h.Print,
		PushWarning: h.PushWarning,
		PushError:   h.PushError,
	}
}

// Compile-time interface checks
var (
	_ Host = (*WriterHost)(nil)
	_ Host = (*StdHost)(nil)
)

// WriterHost writes each channel to its own [io.Writer], one message per line.
//
// Thread-safety: writes are serialized, so a WriterHost can be shared by
// loggers running on different goroutines.
type WriterHost struct {
	mu      sync.Mutex
	out     io.Writer
	warnOut io.Writer
	errOut  io.Writer

	warnLabel  string
	errorLabel string
}

// NewWriterHost creates a host writing printed messages to out, warnings to
// warnOut and errors to errOut. A nil writer discards its channel.
func NewWriterHost(out, warnOut, errOut io.Writer) *WriterHost {
	return &WriterHost{
		out:     orDiscard(out),
		warnOut: orDiscard(warnOut),
		errOut:  orDiscard(errOut),
	}
}

// Print writes message to the print writer.
func (h *WriterHost) Print(message string) {
	h.write(h.out, "", message)
}

// PushWarning writes message to the warning writer.
func (h *WriterHost) PushWarning(message string) {
	h.write(h.warnOut, h.warnLabel, message)
}

// PushError writes message to the error writer.
func (h *WriterHost) PushError(message string) {
	h.write(h.errOut, h.errorLabel, message)
}

func (h *WriterHost) write(w io.Writer, label, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	//nolint:errcheck // Host channels have no error path
	_, _ = io.WriteString(w, label+message+"\n")
}

// StdHost is the default host. Printed messages go to stdout; warnings and
// errors go to stderr, labelled the way an engine console echoes its
// push_warning and push_error calls.
type StdHost struct {
	WriterHost
}

// NewStdHost creates the default stdout/stderr host.
func NewStdHost() *StdHost {
	return NewStdHostWith(os.Stdout, os.Stderr)
}

// NewStdHostWith creates a [StdHost] writing printed messages to out and
// labelled warnings and errors to errOut. A nil writer discards its channel.
func NewStdHostWith(out, errOut io.Writer) *StdHost {
	return &StdHost{
		WriterHost: WriterHost{
			out:        orDiscard(out),
			warnOut:    orDiscard(errOut),
			errOut:     orDiscard(errOut),
			warnLabel:  "WARNING: ",
			errorLabel: "ERROR: ",
		},
	}
}

// DefaultSinks returns the sinks of a fresh [StdHost].
func DefaultSinks() Sinks {
	return HostSinks(NewStdHost())
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
