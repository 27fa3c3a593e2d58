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

// WithSinks replaces all three output channels.
func WithSinks(s Sinks) Option {
	return func(l *Logger) { l.sinks = s }
}

// WithHost reports to h. See [HostSinks].
func WithHost(h Host) Option {
	return func(l *Logger) {
		l.hostSet = true
		if h == nil {
			l.sinks = Sinks{}
			return
		}
		l.sinks = HostSinks(h)
	}
}

// WithPrintSink replaces the print channel only.
// Channels left unset default to those of a [StdHost].
func WithPrintSink(s Sink) Option {
	return func(l *Logger) {
		l.fillDefaults()
		l.sinks.Print = s
	}
}

// WithWarningSink replaces the warning channel only.
func WithWarningSink(s Sink) Option {
	return func(l *Logger) {
		l.fillDefaults()
		l.sinks.PushWarning = s
	}
}

// WithErrorSink replaces the error channel only.
func WithErrorSink(s Sink) Option {
	return func(l *Logger) {
		l.fillDefaults()
		l.sinks.PushError = s
	}
}

// fillDefaults installs the default channels before a single one is swapped.
func (l *Logger) fillDefaults() {
	if l.sinks.Print == nil && l.sinks.PushWarning == nil && l.sinks.PushError == nil {
		l.sinks = DefaultSinks()
	}
}
