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

// Command gdlog emits log entries through a configured gdlog host.
//
// It is useful from shell scripts and build steps that should log the same
// way the game does:
//
//	gdlog --prefix Build warn "asset cache is stale"
//	gdlog --prefix Build run -- ./export.sh
//	VOLUME=$(gdlog --host slog always --fallback 0.8 -- ./read-volume.sh)
//
// Settings are loaded from --config (YAML, JSON or TOML) and GDLOG_*
// environment variables. Flags override both. Warnings go to the print
// channel too, so capture the output of always with a host that keeps
// that channel off stdout, such as slog.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
