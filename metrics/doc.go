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

// Package metrics counts gdlog emissions with OpenTelemetry.
//
// A [Recorder] wraps a logger's sinks and increments two counters per
// message, labelled with the channel ("print", "warning" or "error"):
//
//	gdlog_messages_total          messages emitted
//	gdlog_message_bytes_total     formatted message bytes
//
// Basic usage:
//
//	rec, err := metrics.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rec.Shutdown(context.Background())
//
//	logger := gdlog.MustNew("Player", gdlog.WithSinks(rec.Instrument(gdlog.DefaultSinks())))
//	http.Handle("/metrics", rec.Handler())
package metrics
