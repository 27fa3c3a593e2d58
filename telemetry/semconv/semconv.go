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

package semconv

// Exception attribute constants.
//
// These follow the OpenTelemetry exception conventions and are set on the
// span carried by the context when a guarded call fails.
const (
	// ExceptionType stores the package-qualified type of the error,
	// e.g. "fs.PathError".
	ExceptionType = "exception.type"

	// ExceptionMessage stores the error message.
	ExceptionMessage = "exception.message"

	// ExceptionEscaped is true when the failure was a panic that left the
	// guarded call.
	ExceptionEscaped = "exception.escaped"

	// ExceptionStacktrace stores the stack recorded with the error, one
	// formatted frame per line. Only set when the error carries a stack.
	ExceptionStacktrace = "exception.stacktrace"

	// ExceptionEventName is the name of the span event recorded per failure.
	ExceptionEventName = "exception"
)

// Log attribute constants.
//
// These constants name the dimensions gdlog adds to emissions.
const (
	// Channel names the channel an emission went to: "print", "warning"
	// or "error". Used as the metric label.
	Channel = "channel"

	// LogPrefix stores the prefix of the logger that emitted a message.
	LogPrefix = "gdlog.prefix"
)
