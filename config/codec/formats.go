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
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Built-in codec types.
const (
	TypeJSON Type = "json"
	TypeYAML Type = "yaml"
	TypeTOML Type = "toml"
)

func init() {
	Register(TypeJSON, JSON{})
	Register(TypeYAML, YAML{})
	Register(TypeTOML, TOML{})
}

// JSON encodes indented JSON.
type JSON struct{}

// Encode implements [Encoder].
func (JSON) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Decode implements [Decoder].
func (JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// YAML uses github.com/goccy/go-yaml.
type YAML struct{}

// Encode implements [Encoder].
func (YAML) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Decode implements [Decoder].
func (YAML) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// TOML uses github.com/BurntSushi/toml.
type TOML struct{}

// Encode implements [Encoder].
func (TOML) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements [Decoder].
func (TOML) Decode(data []byte, v any) error {
	_, err := toml.Decode(string(data), v)
	return err
}
