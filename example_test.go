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

package gdlog_test

import (
	"errors"
	"fmt"
	"os"

	gdlog "github.com/lewiji/go-dot-log"
)

// ExampleNew demonstrates creating a logger with a custom host.
func ExampleNew() {
	log := gdlog.MustNew("Player", gdlog.WithHost(gdlog.NewWriterHost(os.Stdout, nil, nil)))

	log.Print("spawned")
	log.Warn("low health")
	// Output:
	// Player: spawned
	// Player: low health
}

// ExampleLogger_PrintTrace demonstrates how frames are rendered.
func ExampleLogger_PrintTrace() {
	log := gdlog.MustNew("Player", gdlog.WithHost(gdlog.NewWriterHost(os.Stdout, nil, nil)))

	log.PrintTrace(gdlog.StackTrace{
		{File: "player.gd", Line: 12, Column: 3, Method: &gdlog.Method{DeclaringType: "Player", Name: "_ready"}},
		{Line: 4},
	})
	// Output:
	// Player: Player._ready in player.gd(12,3)
	// Player: UnknownClass.UnknownMethod in **(4,0)
}

// ExampleRunValue demonstrates propagating a logged failure.
func ExampleRunValue() {
	log := gdlog.MustNew("Loader", gdlog.WithHost(gdlog.NewWriterHost(os.Stdout, nil, nil)))

	_, err := gdlog.RunValue(log, func() (int, error) {
		return 0, errors.New("missing file")
	}, nil)
	fmt.Println("returned:", err)
	// Output:
	// Loader: An error occurred.
	// Loader: errors.errorString: missing file
	// returned: missing file
}

// ExampleAlways demonstrates falling back to a default.
func ExampleAlways() {
	log := gdlog.MustNew("Settings", gdlog.WithHost(gdlog.NewWriterHost(os.Stdout, nil, nil)))

	volume := gdlog.Always(log, func() (float64, error) {
		return 0, errors.New("no audio section")
	}, 0.8)
	fmt.Println("volume:", volume)
	// Output:
	// Settings: An error occurred. Using fallback value `0.8`.
	// Settings: errors.errorString: no audio section
	// volume: 0.8
}
