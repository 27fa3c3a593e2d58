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
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdlog "github.com/lewiji/go-dot-log"
)

func TestNewSlog_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewSlog(WithSlogFormat("xml"))
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewSlog(WithSlogOutput(nil))
	require.ErrorIs(t, err, ErrNilWriter)

	_, err = NewSlog(WithSlogFormat(FormatConsole), WithSlogColor("rainbow"))
	require.ErrorIs(t, err, ErrInvalidColorMode)
}

func TestSlog_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewSlog(WithSlogFormat(FormatJSON), WithSlogOutput(&buf))
	require.NoError(t, err)

	log := gdlog.MustNew("Player", gdlog.WithHost(h))
	log.Warn("low health")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "warn emits on print and warning channels")

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "Player: low health", first["msg"])
	assert.Equal(t, "WARN", second["level"])
	assert.Equal(t, "Player: low health", second["msg"])
}

func TestSlog_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewSlog(WithSlogFormat(FormatText), WithSlogOutput(&buf), WithSlogLevel(slog.LevelError))
	require.NoError(t, err)

	h.Print("hidden")
	h.PushWarning("hidden")
	h.PushError("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg=shown`)
	assert.Contains(t, buf.String(), `level=ERROR`)
}

func TestSlog_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewSlog(WithSlogFormat(FormatConsole), WithSlogOutput(&buf), WithSlogColor(ColorNever))
	require.NoError(t, err)

	h.Logger().With("scene", "main").WithGroup("g").Error("boom", "n", 2)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "ERROR boom scene=main g.n=2\n")
}

func TestSlog_ExistingLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	h, err := NewSlog(WithSlogLogger(l), WithSlogFormat("ignored"))
	require.NoError(t, err)
	assert.Same(t, l, h.Logger())

	h.Print("hi")
	assert.Contains(t, buf.String(), "msg=hi")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestCharm(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	charm := NewCharm(log.NewWithOptions(&buf, log.Options{Formatter: log.JSONFormatter}))
	logger := gdlog.MustNew("Player", gdlog.WithHost(charm))

	logger.Error("boom")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"msg":"Player: boom"`)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestCharm_Default(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, NewCharm(nil).Logger())
}
