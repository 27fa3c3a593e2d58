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

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Type
		wantErr bool
	}{
		{"gdlog.yaml", TypeYAML, false},
		{"gdlog.YML", TypeYAML, false},
		{"/etc/gdlog.json", TypeJSON, false},
		{"gdlog.toml", TypeTOML, false},
		{"gdlog.ini", "", true},
		{"gdlog", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := DetectType(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Get("ini")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestFormats_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Type
		data string
	}{
		{"json", TypeJSON, `{"prefix": "Game", "slog": {"level": "debug"}}`},
		{"yaml", TypeYAML, "prefix: Game\nslog:\n  level: debug\n"},
		{"toml", TypeTOML, "prefix = \"Game\"\n[slog]\nlevel = \"debug\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Get(tt.typ)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, c.Decode([]byte(tt.data), &v))
			assert.Equal(t, "Game", v["prefix"])

			slog, ok := v["slog"].(map[string]any)
			require.True(t, ok, "nested section decodes to map[string]any")
			assert.Equal(t, "debug", slog["level"])
		})
	}
}

func TestFormats_Encode(t *testing.T) {
	t.Parallel()

	v := map[string]any{"prefix": "Game"}

	for _, typ := range []Type{TypeJSON, TypeYAML, TypeTOML} {
		c, err := Get(typ)
		require.NoError(t, err)

		data, err := c.Encode(v)
		require.NoError(t, err, typ)
		assert.Contains(t, string(data), "Game", typ)
	}
}

func TestEnvVars_Decode(t *testing.T) {
	t.Parallel()

	var v map[string]any
	err := EnvVars{}.Decode([]byte("PREFIX=Game\nSLOG_LEVEL= debug \nSLOG__FORMAT=json\n_=skip\nnoequals\nPREFIX_X=nested"), &v)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"prefix": map[string]any{"x": "nested"},
		"slog":   map[string]any{"level": "debug", "format": "json"},
	}, v)
}

func TestEnvVars_Errors(t *testing.T) {
	t.Parallel()

	var wrong map[string]string
	assert.Error(t, EnvVars{}.Decode([]byte("A=b"), &wrong))

	_, err := EnvVars{}.Encode(nil)
	assert.Error(t, err)
}
