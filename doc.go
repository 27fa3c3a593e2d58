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

// Package gdlog is a small logging facade for game scripts.
//
// A [Logger] prepends a fixed prefix to every message and forwards it to the
// host's print, warning and error channels. It also formats stack traces and
// errors into readable lines, and offers two "safe execution" helpers that
// run a callback, catch any failure and log it.
//
// # Basic Usage
//
//	log := gdlog.MustNew("Player")
//	log.Print("spawned")           // Player: spawned
//	log.Warn("low health")         // print + warning channels
//	log.Error("out of bounds")     // print + error channels
//
// # Hosts and Sinks
//
// Output goes through three [Sink] functions grouped in [Sinks]. They are
// configured per logger, never globally:
//
//	log := gdlog.MustNew("Player", gdlog.WithHost(myEngineHost))
//
// The host subpackage provides console, slog and charmbracelet/log hosts;
// [Recorder] captures output in tests.
//
// # Safe Execution
//
// [Logger.Run] and [RunValue] propagate failures after logging them as
// errors. [Always] downgrades failures to warnings and returns a fallback:
//
//	cfg, err := gdlog.RunValue(log, loadConfig, nil) // logged, then returned
//	speed := gdlog.Always(log, readSpeed, 1.0)       // logged, never returned
//
// Panics inside the callback count as failures. Run re-raises them after
// logging; Always absorbs them.
//
// # Stack Traces
//
//	log.PrintTrace(gdlog.CaptureStackTrace(0))
//	// Player: main.Game.Update in /src/game.go(42,0)
//
// Go does not record columns, so captured frames report column 0.
//
// # Configuration
//
// The config subpackage loads host settings from files and the environment
// and builds loggers from them. The gdlog command exposes the same loggers
// to shell scripts.
package gdlog
