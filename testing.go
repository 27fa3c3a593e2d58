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

package gdlog

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Entry is one message captured by a [Recorder].
type Entry struct {
	Channel Channel
	Message string
}

// Compile-time interface checks
var _ Host = (*Recorder)(nil)

// Recorder is an in-memory [Host] that captures every message per channel.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Print records message on the print channel.
func (r *Recorder) Print(message string) { r.record(ChannelPrint, message) }

// PushWarning records message on the warning channel.
func (r *Recorder) PushWarning(message string) { r.record(ChannelWarning, message) }

// PushError records message on the error channel.
func (r *Recorder) PushError(message string) { r.record(ChannelError, message) }

func (r *Recorder) record(ch Channel, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Channel: ch, Message: message})
}

// Entries returns a copy of everything recorded, in emission order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Messages returns the messages recorded on ch, in emission order.
func (r *Recorder) Messages(ch Channel) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var messages []string
	for _, e := range r.entries {
		if e.Channel == ch {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Output returns what a line-oriented host would have written for ch:
// every message followed by a single "\n".
func (r *Recorder) Output(ch Channel) string {
	var b strings.Builder
	for _, m := range r.Messages(ch) {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	return b.String()
}

// Reset clears the recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// NewTestLogger creates a [Logger] reporting to a fresh [Recorder].
func NewTestLogger(prefix string) (*Logger, *Recorder) {
	rec := NewRecorder()
	return MustNew(prefix, WithHost(rec)), rec
}

// TestHelper provides utilities for testing code that logs through gdlog.
type TestHelper struct {
	Logger   *Logger
	Recorder *Recorder
}

// NewTestHelper creates a [TestHelper] whose logger reports to a [Recorder].
// Additional [Option] values are applied after the recorder is installed.
func NewTestHelper(t *testing.T, prefix string, opts ...Option) *TestHelper {
	t.Helper()

	rec := NewRecorder()
	allOpts := append([]Option{WithHost(rec)}, opts...)

	logger, err := New(prefix, allOpts...)
	require.NoError(t, err)

	return &TestHelper{
		Logger:   logger,
		Recorder: rec,
	}
}

// AssertOutput checks the complete output of a channel.
func (th *TestHelper) AssertOutput(t *testing.T, ch Channel, want string) {
	t.Helper()
	assert.Equal(t, want, th.Recorder.Output(ch), "unexpected %s output", ch)
}

// AssertSilent checks that nothing was emitted on any channel.
func (th *TestHelper) AssertSilent(t *testing.T) {
	t.Helper()
	assert.Empty(t, th.Recorder.Entries(), "expected no output")
}

// Reset clears the recorder for fresh testing.
func (th *TestHelper) Reset() {
	th.Recorder.Reset()
}
