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

package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	gdlog "github.com/lewiji/go-dot-log"
)

// SlogFormat selects the handler a [Slog] host builds.
type SlogFormat string

const (
	// FormatJSON outputs one JSON object per message.
	FormatJSON SlogFormat = "json"
	// FormatText outputs key=value pairs.
	FormatText SlogFormat = "text"
	// FormatConsole outputs colored, human-readable lines.
	FormatConsole SlogFormat = "console"
)

// Validate checks that f is a known format.
func (f SlogFormat) Validate() error {
	switch f {
	case FormatJSON, FormatText, FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(f))
	}
}

// ParseLevel parses "debug", "info", "warn" or "error" (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid slog level %q: %w", s, err)
	}
	return level, nil
}

// Compile-time interface checks
var _ gdlog.Host = (*Slog)(nil)

// Slog forwards the three channels to a [*slog.Logger] at info, warn and
// error level.
type Slog struct {
	logger *slog.Logger
}

// SlogOption configures a [Slog] host.
type SlogOption func(*slogConfig)

type slogConfig struct {
	format SlogFormat
	output io.Writer
	level  slog.Level
	color  ColorMode
	logger *slog.Logger
}

// WithSlogFormat sets the output format. Default: [FormatText].
func WithSlogFormat(f SlogFormat) SlogOption {
	return func(c *slogConfig) { c.format = f }
}

// WithSlogOutput sets the destination writer. Default: os.Stderr.
func WithSlogOutput(w io.Writer) SlogOption {
	return func(c *slogConfig) { c.output = w }
}

// WithSlogLevel sets the minimum level. Default: info.
func WithSlogLevel(level slog.Level) SlogOption {
	return func(c *slogConfig) { c.level = level }
}

// WithSlogColor sets the color mode of the console format. Default: [ColorAuto].
func WithSlogColor(mode ColorMode) SlogOption {
	return func(c *slogConfig) { c.color = mode }
}

// WithSlogLogger uses an existing logger. Format, output and level options
// are ignored.
func WithSlogLogger(l *slog.Logger) SlogOption {
	return func(c *slogConfig) { c.logger = l }
}

// NewSlog creates a slog-backed host.
func NewSlog(opts ...SlogOption) (*Slog, error) {
	cfg := &slogConfig{
		format: FormatText,
		output: os.Stderr,
		level:  slog.LevelInfo,
		color:  ColorAuto,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger != nil {
		return &Slog{logger: cfg.logger}, nil
	}

	if err := cfg.format.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.color.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.output == nil {
		return nil, fmt.Errorf("invalid configuration: %w", ErrNilWriter)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	switch cfg.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	case FormatConsole:
		handler = newConsoleHandler(colorWriter(cfg.output, cfg.color, os.Environ()), handlerOpts)
	}

	return &Slog{logger: slog.New(handler)}, nil
}

// Logger returns the underlying logger.
func (s *Slog) Logger() *slog.Logger { return s.logger }

// Print logs message at info level.
func (s *Slog) Print(message string) {
	s.logger.Log(context.Background(), slog.LevelInfo, message)
}

// PushWarning logs message at warn level.
func (s *Slog) PushWarning(message string) {
	s.logger.Log(context.Background(), slog.LevelWarn, message)
}

// PushError logs message at error level.
func (s *Slog) PushError(message string) {
	s.logger.Log(context.Background(), slog.LevelError, message)
}

// levelName pads the level to a fixed width for console alignment.
func levelName(level slog.Level) string {
	name := level.String()
	if len(name) < 5 {
		name += strings.Repeat(" ", 5-len(name))
	}
	return name
}
