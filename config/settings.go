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

package config

import (
	"fmt"

	gdlog "github.com/lewiji/go-dot-log"
	"github.com/lewiji/go-dot-log/host"
)

// Host kinds accepted by [Settings.Host].
const (
	HostConsole = "console"
	HostCharm   = "charm"
	HostSlog    = "slog"
	HostStd     = "std"
)

// Settings selects the host and extras a logger is built with.
type Settings struct {
	// Prefix labels loggers built without an explicit prefix.
	Prefix string `config:"prefix" json:"prefix" yaml:"prefix" toml:"prefix"`

	// Host is one of console, charm, slog or std.
	Host string `config:"host" json:"host" yaml:"host" toml:"host"`

	// Color is auto, always or never. Used by the console host and the
	// console slog format.
	Color string `config:"color" json:"color" yaml:"color" toml:"color"`

	Slog    SlogSettings    `config:"slog" json:"slog" yaml:"slog" toml:"slog"`
	Metrics MetricsSettings `config:"metrics" json:"metrics" yaml:"metrics" toml:"metrics"`
}

// SlogSettings configures the slog host.
type SlogSettings struct {
	Format string `config:"format" json:"format" yaml:"format" toml:"format"` // json, text or console
	Level  string `config:"level" json:"level" yaml:"level" toml:"level"`     // debug, info, warn or error
}

// MetricsSettings configures emission counting.
type MetricsSettings struct {
	Enabled bool `config:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`
}

// Defaults returns the settings used when no source overrides them.
func Defaults() Settings {
	return Settings{
		Prefix: "gdlog",
		Host:   HostConsole,
		Color:  string(host.ColorAuto),
		Slog: SlogSettings{
			Format: string(host.FormatText),
			Level:  "info",
		},
	}
}

// Validate checks values the schema cannot express.
func (s *Settings) Validate() error {
	if s.Prefix == "" {
		return NewFieldError("settings", "prefix", "validate", gdlog.ErrEmptyPrefix)
	}
	switch s.Host {
	case HostConsole, HostCharm, HostSlog, HostStd:
	default:
		return NewFieldError("settings", "host", "validate", fmt.Errorf("%w: %q", ErrInvalidHost, s.Host))
	}
	if err := host.ColorMode(s.Color).Validate(); err != nil {
		return NewFieldError("settings", "color", "validate", err)
	}
	if err := host.SlogFormat(s.Slog.Format).Validate(); err != nil {
		return NewFieldError("settings", "slog.format", "validate", err)
	}
	if _, err := host.ParseLevel(s.Slog.Level); err != nil {
		return NewFieldError("settings", "slog.level", "validate", fmt.Errorf("%w: %w", ErrInvalidLevel, err))
	}
	return nil
}
