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

// Package host provides ready-made [gdlog.Host] implementations.
//
// Three hosts are available:
//
//   - [Console]: plain print output, warnings and errors labelled and
//     coloured on a terminal
//   - [Charm]: forwards to a github.com/charmbracelet/log logger
//   - [Slog]: forwards to a [log/slog] logger with JSON, text or console output
//
// Every host maps the print channel to normal output, the warning channel to
// a warning and the error channel to an error:
//
//	console, err := host.NewConsole(host.WithColor(host.ColorAlways))
//	if err != nil {
//	    return err
//	}
//	log := gdlog.MustNew("Player", gdlog.WithHost(console))
package host
