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
	"os"

	"github.com/charmbracelet/log"

	gdlog "github.com/lewiji/go-dot-log"
)

// Compile-time interface checks
var _ gdlog.Host = (*Charm)(nil)

// Charm forwards the three channels to a charmbracelet/log logger at info,
// warn and error level.
type Charm struct {
	logger *log.Logger
}

// NewCharm creates a host backed by l. A nil l gets a stderr logger without
// timestamps.
func NewCharm(l *log.Logger) *Charm {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			ReportCaller:    false,
		})
	}
	return &Charm{logger: l}
}

// Logger returns the underlying logger.
func (c *Charm) Logger() *log.Logger { return c.logger }

// Print logs message at info level.
func (c *Charm) Print(message string) { c.logger.Info(message) }

// PushWarning logs message at warn level.
func (c *Charm) PushWarning(message string) { c.logger.Warn(message) }

// PushError logs message at error level.
func (c *Charm) PushError(message string) { c.logger.Error(message) }
