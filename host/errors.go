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

import "errors"

// Sentinel errors for host configuration.
var (
	// ErrInvalidColorMode indicates a color mode other than auto, always or never.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidFormat indicates an unsupported slog output format.
	ErrInvalidFormat = errors.New("invalid slog format")

	// ErrNilWriter indicates an output writer was nil.
	ErrNilWriter = errors.New("writer cannot be nil")
)
