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

// Package codec encodes and decodes settings documents.
//
// Codecs register themselves under a [Type] at init time. [ForPath] picks a
// codec from a file extension:
//
//	dec, err := codec.ForPath("gdlog.yaml") // YAML decoder
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Type identifies a codec.
type Type string

// Encoder converts Go values into encoded bytes.
// Implementations must be safe for concurrent use.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder converts encoded bytes into the value pointed to by v.
// Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte, v any) error
}

// Codec is both an [Encoder] and a [Decoder].
type Codec interface {
	Encoder
	Decoder
}

// ErrUnknownType is returned for a type or extension without a codec.
var ErrUnknownType = errors.New("unknown codec type")

var (
	mu       sync.RWMutex
	registry = map[Type]Codec{}
)

// Register makes c available under name. A later registration replaces an
// earlier one.
func Register(name Type, c Codec) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = c
}

// Get returns the codec registered under name.
func Get(name Type) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return c, nil
}

// DetectType maps a file extension to a codec type.
// ".yml" and ".yaml" are YAML; ".json" is JSON; ".toml" is TOML.
func DetectType(path string) (Type, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return TypeYAML, nil
	case ".json":
		return TypeJSON, nil
	case ".toml":
		return TypeTOML, nil
	default:
		return "", fmt.Errorf("%w: cannot detect format of %q", ErrUnknownType, path)
	}
}

// ForPath returns the codec matching the extension of path.
func ForPath(path string) (Codec, error) {
	t, err := DetectType(path)
	if err != nil {
		return nil, err
	}
	return Get(t)
}
