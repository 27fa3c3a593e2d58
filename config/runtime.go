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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	gdlog "github.com/lewiji/go-dot-log"
	"github.com/lewiji/go-dot-log/host"
	"github.com/lewiji/go-dot-log/metrics"
)

// Runtime is the host and optional metrics recorder built from [Settings].
// Loggers created from one Runtime share its host.
type Runtime struct {
	settings Settings
	host     gdlog.Host
	sinks    gdlog.Sinks
	metrics  *metrics.Recorder
}

// BuildOption configures [Settings.Build].
type BuildOption func(*buildConfig)

type buildConfig struct {
	stdout io.Writer
	stderr io.Writer
}

// WithWriters redirects the host's standard output and error streams.
func WithWriters(stdout, stderr io.Writer) BuildOption {
	return func(c *buildConfig) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// Build validates s and constructs its host, plus a metrics recorder when
// metrics are enabled.
func (s *Settings) Build(opts ...BuildOption) (*Runtime, error) {
	cfg := &buildConfig{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	h, err := s.newHost(cfg)
	if err != nil {
		return nil, NewFieldError("settings", "host", "build", err)
	}

	rt := &Runtime{
		settings: *s,
		host:     h,
		sinks:    gdlog.HostSinks(h),
	}

	if s.Metrics.Enabled {
		rec, err := metrics.New()
		if err != nil {
			return nil, NewFieldError("settings", "metrics", "build", err)
		}
		rt.metrics = rec
		rt.sinks = rec.Instrument(rt.sinks)
	}
	return rt, nil
}

func (s *Settings) newHost(cfg *buildConfig) (gdlog.Host, error) {
	color := host.ColorMode(s.Color)

	switch s.Host {
	case HostConsole:
		return host.NewConsole(
			host.WithOutput(cfg.stdout),
			host.WithErrorOutput(cfg.stderr),
			host.WithColor(color),
		)
	case HostCharm:
		return host.NewCharm(log.NewWithOptions(cfg.stderr, log.Options{
			ReportTimestamp: false,
			ReportCaller:    false,
		})), nil
	case HostSlog:
		level, err := host.ParseLevel(s.Slog.Level)
		if err != nil {
			return nil, err
		}
		return host.NewSlog(
			host.WithSlogFormat(host.SlogFormat(s.Slog.Format)),
			host.WithSlogOutput(cfg.stderr),
			host.WithSlogLevel(level),
			host.WithSlogColor(color),
		)
	case HostStd:
		return gdlog.NewStdHostWith(cfg.stdout, cfg.stderr), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidHost, s.Host)
	}
}

// Settings returns the settings the runtime was built from.
func (r *Runtime) Settings() Settings { return r.settings }

// Host returns the host every logger of this runtime reports to.
func (r *Runtime) Host() gdlog.Host { return r.host }

// Metrics returns the recorder, or nil when metrics are disabled.
func (r *Runtime) Metrics() *metrics.Recorder { return r.metrics }

// Logger creates a logger labelled prefix, or the configured prefix when
// prefix is empty.
func (r *Runtime) Logger(prefix string) (*gdlog.Logger, error) {
	if prefix == "" {
		prefix = r.settings.Prefix
	}
	return gdlog.New(prefix, gdlog.WithSinks(r.sinks))
}

// Close releases the metrics recorder, if any.
func (r *Runtime) Close(ctx context.Context) error {
	if r.metrics == nil {
		return nil
	}
	return r.metrics.Shutdown(ctx)
}
