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
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cast"

	"github.com/lewiji/go-dot-log/config/codec"
	"github.com/lewiji/go-dot-log/config/source"
)

// DefaultEnvPrefix is the prefix [WithEnv] uses when given "".
const DefaultEnvPrefix = "GDLOG_"

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// Source produces a raw settings map. Keys are matched case-insensitively.
type Source interface {
	Load(ctx context.Context) (map[string]any, error)
}

// Option configures [Load].
type Option func(*loader) error

type loader struct {
	sources []Source
}

// WithSource appends a custom source.
func WithSource(src Source) Option {
	return func(l *loader) error {
		if src == nil {
			return NewError("options", "configure", errors.New("source cannot be nil"))
		}
		l.sources = append(l.sources, src)
		return nil
	}
}

// WithFile appends a settings file. The format follows the extension
// (.yaml, .yml, .json, .toml) and the path may reference environment
// variables as $VAR or ${VAR}.
func WithFile(path string) Option {
	return func(l *loader) error {
		path = os.ExpandEnv(path)
		dec, err := codec.ForPath(path)
		if err != nil {
			return NewError("file:"+path, "detect-format", err)
		}
		l.sources = append(l.sources, source.NewFile(path, dec))
		return nil
	}
}

// WithContent appends in-memory settings in the given format.
func WithContent(data []byte, t codec.Type) Option {
	return func(l *loader) error {
		dec, err := codec.Get(t)
		if err != nil {
			return NewError("content", "get-decoder", err)
		}
		l.sources = append(l.sources, source.NewContent(data, dec))
		return nil
	}
}

// WithEnv appends the process environment filtered by prefix
// ([DefaultEnvPrefix] when empty). GDLOG_SLOG_LEVEL sets slog.level.
func WithEnv(prefix string) Option {
	return func(l *loader) error {
		if prefix == "" {
			prefix = DefaultEnvPrefix
		}
		l.sources = append(l.sources, source.NewEnv(prefix))
		return nil
	}
}

// Load builds [Settings] from [Defaults] overlaid by every source in order;
// later sources win key by key.
//
// The merged result is validated against the embedded JSON schema and by
// [Settings.Validate]. Failures are reported as [*Error].
//
// Example:
//
//	s, err := config.Load(ctx,
//	    config.WithFile("gdlog.yaml"),
//	    config.WithEnv("GDLOG_"),
//	)
func Load(ctx context.Context, opts ...Option) (*Settings, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}

	l := &loader{}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	values, err := l.merge(ctx)
	if err != nil {
		return nil, err
	}

	settings := Defaults()
	if err = bind(values, &settings); err != nil {
		return nil, NewError("binding", "bind", err)
	}

	if err = validateSchema(&settings); err != nil {
		return nil, NewError("json-schema", "validate", err)
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// merge loads every source and merges them with override.
func (l *loader) merge(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)
	for i, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := sourceName(i, src)
		conf, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(name, "load", err)
		}

		normalized, err := normalizeMapKeys(conf)
		if err != nil {
			return nil, NewError(name, "normalize", err)
		}

		if err = mergo.Map(&merged, normalized, mergo.WithOverride); err != nil {
			return nil, NewError(name, "merge", err)
		}
	}
	return merged, nil
}

func sourceName(i int, src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("source[%d]", i)
}

// normalizeMapKeys lowercases keys recursively. Nested maps with non-string
// keys, as some decoders produce, are converted with cast.
func normalizeMapKeys(m map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		switch v.(type) {
		case map[string]any, map[any]any:
			nested, err := cast.ToStringMapE(v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if v, err = normalizeMapKeys(nested); err != nil {
				return nil, err
			}
		}
		normalized[strings.ToLower(k)] = v
	}
	return normalized, nil
}

// bind decodes values onto target, leaving fields without a value untouched.
func bind(values map[string]any, target *Settings) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err = decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}

// validateSchema checks s against the embedded schema after a JSON round
// trip, so the schema sees the bound, typed values.
func validateSchema(s *Settings) error {
	schemaOnce.Do(func() {
		schemaCompiled, schemaErr = compileSchema(schemaJSON)
	})
	if schemaErr != nil {
		return schemaErr
	}

	data, err := codec.JSON{}.Encode(s)
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return schemaCompiled.Validate(doc)
}

func compileSchema(schema []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, err
	}

	const name = "gdlog-settings.json"
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(name, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(name)
}
