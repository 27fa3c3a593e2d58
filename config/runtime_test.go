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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdlog "github.com/lewiji/go-dot-log"
	"github.com/lewiji/go-dot-log/host"
)

func buildRuntime(t *testing.T, mutate func(*Settings)) (*Runtime, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	s := Defaults()
	s.Color = "never"
	mutate(&s)

	var stdout, stderr bytes.Buffer
	rt, err := s.Build(WithWriters(&stdout, &stderr))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, rt.Close(context.Background())) })
	return rt, &stdout, &stderr
}

func TestBuild_Hosts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host     string
		wantType any
	}{
		{HostConsole, &host.Console{}},
		{HostCharm, &host.Charm{}},
		{HostSlog, &host.Slog{}},
		{HostStd, &gdlog.StdHost{}},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()

			rt, _, _ := buildRuntime(t, func(s *Settings) { s.Host = tt.host })
			assert.IsType(t, tt.wantType, rt.Host())
			assert.Nil(t, rt.Metrics())
		})
	}
}

func TestRuntime_Logger_Console(t *testing.T) {
	t.Parallel()

	rt, stdout, stderr := buildRuntime(t, func(s *Settings) { s.Prefix = "Game" })

	log, err := rt.Logger("")
	require.NoError(t, err)
	assert.Equal(t, "Game", log.Prefix())

	player, err := rt.Logger("Player")
	require.NoError(t, err)
	player.Warn("low health")

	assert.Equal(t, "Player: low health\n", stdout.String())
	assert.Equal(t, "WARNING: Player: low health\n", stderr.String())
}

func TestRuntime_Logger_SlogJSON(t *testing.T) {
	t.Parallel()

	rt, stdout, stderr := buildRuntime(t, func(s *Settings) {
		s.Host = HostSlog
		s.Slog.Format = "json"
		s.Slog.Level = "warn"
	})

	log, err := rt.Logger("P")
	require.NoError(t, err)
	log.Print("dropped by level")
	log.Error("kept")

	assert.Empty(t, stdout.String())
	assert.NotContains(t, stderr.String(), "dropped by level")
	assert.Contains(t, stderr.String(), `"msg":"P: kept"`)
	assert.Contains(t, stderr.String(), `"level":"ERROR"`)
}

func TestRuntime_Metrics(t *testing.T) {
	t.Parallel()

	rt, _, _ := buildRuntime(t, func(s *Settings) {
		s.Host = HostStd
		s.Metrics.Enabled = true
	})
	require.NotNil(t, rt.Metrics())

	log, err := rt.Logger("P")
	require.NoError(t, err)
	log.Error("boom")

	var buf bytes.Buffer
	require.NoError(t, rt.Metrics().WriteText(&buf))
	assert.Contains(t, buf.String(), `channel="error"`)
	assert.Contains(t, buf.String(), `channel="print"`)
}

func TestBuild_InvalidSettings(t *testing.T) {
	t.Parallel()

	s := Defaults()
	s.Host = "nowhere"
	_, err := s.Build()
	require.ErrorIs(t, err, ErrInvalidHost)
}
