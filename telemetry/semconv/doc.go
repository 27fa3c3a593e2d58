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

// Package semconv provides semantic conventions for gdlog telemetry.
//
// The constants are attribute keys shared by the span recording in the gdlog
// package and the metrics package. Exception keys follow the OpenTelemetry
// semantic conventions, so failures show up in any OpenTelemetry-compatible
// backend the way other instrumented libraries report them.
//
// # Usage
//
//	span.SetAttributes(
//	    attribute.String(semconv.ExceptionType, "fs.PathError"),
//	    attribute.String(semconv.ExceptionMessage, err.Error()),
//	)
package semconv
