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

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewiji/go-dot-log/config/codec"
)

func TestFile_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gdlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: charm\n"), 0o600))

	f := NewFile(path, codec.YAML{})
	conf, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"host": "charm"}, conf)
	assert.Equal(t, "file:"+path, f.String())
}

func TestFile_LoadEmpty(t *testing.T) {
	t.Parallel()

	conf, err := NewContent([]byte("  \n"), codec.JSON{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conf)
}

func TestFile_LoadErrors(t *testing.T) {
	t.Parallel()

	_, err := NewFile(filepath.Join(t.TempDir(), "nope.json"), codec.JSON{}).Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewContent([]byte("{"), codec.JSON{}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode file")
}

func TestEnv_Load(t *testing.T) {
	t.Parallel()

	env := NewEnvFrom("GDLOG_", func() []string {
		return []string{"GDLOG_HOST=slog", "GDLOG_SLOG_FORMAT=json", "HOME=/root", "XGDLOG_HOST=no"}
	})

	conf, err := env.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"host": "slog",
		"slog": map[string]any{"format": "json"},
	}, conf)
	assert.Equal(t, "env:GDLOG_", env.String())
}

func TestSources_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewContent([]byte("{}"), codec.JSON{}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewEnvFrom("X_", func() []string { return nil }).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
