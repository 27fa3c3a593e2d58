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
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	gdlog "github.com/lewiji/go-dot-log"
)

// ColorMode controls whether the [Console] styles its labels.
type ColorMode string

const (
	// ColorAuto styles output only when it goes to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output regardless of the destination.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// Validate checks that m is a known mode.
func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, string(m))
	}
}

// Console label colors (ANSI 256 palette, downsampled by the writer).
const (
	warningColor = "11"
	errorColor   = "9"
)

// Compile-time interface checks
var _ gdlog.Host = (*Console)(nil)

// Console is a terminal host. Printed messages go to the output writer
// unchanged. Warnings and errors go to the error writer behind a bold
// "WARNING:" or "ERROR:" label.
//
// Thread-safety: writes are serialized.
type Console struct {
	mu     sync.Mutex
	out    *colorprofile.Writer
	errOut *colorprofile.Writer

	warnLabel  string
	errorLabel string
}

// ConsoleOption configures a [Console].
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	out     io.Writer
	errOut  io.Writer
	color   ColorMode
	environ []string
}

// WithOutput sets the writer for printed messages. Default: os.Stdout.
func WithOutput(w io.Writer) ConsoleOption {
	return func(c *consoleConfig) { c.out = w }
}

// WithErrorOutput sets the writer for warnings and errors. Default: os.Stderr.
func WithErrorOutput(w io.Writer) ConsoleOption {
	return func(c *consoleConfig) { c.errOut = w }
}

// WithColor sets the color mode. Default: [ColorAuto].
func WithColor(mode ColorMode) ConsoleOption {
	return func(c *consoleConfig) { c.color = mode }
}

// withEnviron overrides the environment used for color detection.
func withEnviron(env []string) ConsoleOption {
	return func(c *consoleConfig) { c.environ = env }
}

// NewConsole creates a console host.
//
// Labels are rendered with lipgloss and written through a
// [colorprofile.Writer], which downsamples them to what the destination
// supports. In [ColorAuto] mode a destination that is not a terminal gets
// plain text.
func NewConsole(opts ...ConsoleOption) (*Console, error) {
	cfg := &consoleConfig{
		out:     os.Stdout,
		errOut:  os.Stderr,
		color:   ColorAuto,
		environ: os.Environ(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.color.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.out == nil || cfg.errOut == nil {
		return nil, fmt.Errorf("invalid configuration: %w", ErrNilWriter)
	}

	renderer := lipgloss.NewRenderer(cfg.errOut)
	renderer.SetColorProfile(termenv.ANSI256)
	bold := renderer.NewStyle().Bold(true)

	return &Console{
		out:        colorWriter(cfg.out, cfg.color, cfg.environ),
		errOut:     colorWriter(cfg.errOut, cfg.color, cfg.environ),
		warnLabel:  bold.Foreground(lipgloss.Color(warningColor)).Render("WARNING:") + " ",
		errorLabel: bold.Foreground(lipgloss.Color(errorColor)).Render("ERROR:") + " ",
	}, nil
}

// MustNewConsole creates a console host or panics on error.
func MustNewConsole(opts ...ConsoleOption) *Console {
	c, err := NewConsole(opts...)
	if err != nil {
		panic("host: console initialization failed: " + err.Error())
	}
	return c
}

// colorWriter wraps w so styled text matches mode and the terminal.
func colorWriter(w io.Writer, mode ColorMode, environ []string) *colorprofile.Writer {
	cpw := colorprofile.NewWriter(w, environ)
	switch mode {
	case ColorAlways:
		if cpw.Profile < colorprofile.ANSI {
			cpw.Profile = colorprofile.ANSI
		}
	case ColorNever:
		cpw.Profile = colorprofile.NoTTY
	default:
		if !IsTerminal(w) {
			cpw.Profile = colorprofile.NoTTY
		}
	}
	return cpw
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes message to the output writer.
func (c *Console) Print(message string) {
	c.write(c.out, "", message)
}

// PushWarning writes message to the error writer with a warning label.
func (c *Console) PushWarning(message string) {
	c.write(c.errOut, c.warnLabel, message)
}

// PushError writes message to the error writer with an error label.
func (c *Console) PushError(message string) {
	c.write(c.errOut, c.errorLabel, message)
}

func (c *Console) write(w io.Writer, label, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	//nolint:errcheck // Host channels have no error path
	_, _ = io.WriteString(w, label+message+"\n")
}
