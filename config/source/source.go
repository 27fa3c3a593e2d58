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

// Package source loads raw settings maps from files, byte content and the
// environment.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lewiji/go-dot-log/config/codec"
)

// File loads settings from a file path or from in-memory content.
type File struct {
	path    string
	data    []byte
	decoder codec.Decoder
}

// NewFile creates a source reading path with decoder.
func NewFile(path string, decoder codec.Decoder) *File {
	return &File{path: path, decoder: decoder}
}

// NewContent creates a source decoding data with decoder.
func NewContent(data []byte, decoder codec.Decoder) *File {
	return &File{data: data, decoder: decoder}
}

// Load reads and decodes the file. Empty content yields an empty map.
func (f *File) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := f.data
	if f.path != "" {
		var err error
		data, err = os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	conf := map[string]any{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return conf, nil
	}
	if err := f.decoder.Decode(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}
	return conf, nil
}

// String names the source in errors.
func (f *File) String() string {
	if f.path != "" {
		return "file:" + f.path
	}
	return "content"
}

// Env loads environment variables that start with a prefix.
//
// With prefix "GDLOG_", GDLOG_SLOG_LEVEL=debug becomes slog.level = "debug".
type Env struct {
	prefix  string
	environ func() []string
	decoder codec.Decoder
}

// NewEnv creates a source reading the process environment.
func NewEnv(prefix string) *Env {
	return NewEnvFrom(prefix, os.Environ)
}

// NewEnvFrom creates a source reading "KEY=value" pairs from environ.
func NewEnvFrom(prefix string, environ func() []string) *Env {
	return &Env{
		prefix:  prefix,
		environ: environ,
		decoder: codec.EnvVars{},
	}
}

// Load decodes the prefixed variables with the prefix stripped.
func (e *Env) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env := e.environ()
	matched := make([]string, 0, len(env))
	for _, kv := range env {
		if rest, ok := strings.CutPrefix(kv, e.prefix); ok {
			matched = append(matched, rest)
		}
	}

	var conf map[string]any
	if err := e.decoder.Decode([]byte(strings.Join(matched, "\n")), &conf); err != nil {
		return nil, fmt.Errorf("failed to decode environment variables: %w", err)
	}
	return conf, nil
}

// String names the source in errors.
func (e *Env) String() string {
	return "env:" + e.prefix
}
