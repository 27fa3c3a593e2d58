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

// Package config loads gdlog settings and builds loggers from them.
//
// Settings come from [Defaults], then settings files (YAML, JSON or TOML),
// then environment variables. Later sources override earlier ones key by
// key:
//
//	# gdlog.yaml
//	prefix: Game
//	host: slog
//	slog:
//	  format: json
//
//	$ GDLOG_SLOG_LEVEL=debug game
//
// Loading and building:
//
//	settings, err := config.Load(ctx, config.WithFile("gdlog.yaml"), config.WithEnv(""))
//	if err != nil {
//	    return err
//	}
//	rt, err := settings.Build()
//	if err != nil {
//	    return err
//	}
//	defer rt.Close(ctx)
//
//	log, err := rt.Logger("Player")
//
// All loading errors are [*Error] values naming the source and operation
// that failed.
package config
