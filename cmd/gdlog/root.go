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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	gdlog "github.com/lewiji/go-dot-log"
	"github.com/lewiji/go-dot-log/config"
)

// exitError ends the process with code. Its cause has already been logged.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// cli holds flag values and the runtime built from them.
type cli struct {
	configPath string
	prefix     string
	host       string
	color      string
	metrics    bool

	settings *config.Settings
	runtime  *config.Runtime
	log      *gdlog.Logger
}

// execute runs the command line in args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{}
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(ctx, stderr); err == nil {
		err = closeErr
	}
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	//nolint:errcheck // nowhere left to report a failed write
	fmt.Fprintln(stderr, "gdlog:", err)
	return 1
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gdlog",
		Short:         "Emit log entries through a gdlog host",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "settings file (yaml, json or toml)")
	flags.StringVarP(&c.prefix, "prefix", "p", "", "prefix for every entry (default from settings)")
	flags.StringVar(&c.host, "host", "", "host: console, charm, slog or std")
	flags.StringVar(&c.color, "color", "", "color mode: auto, always or never")
	flags.BoolVar(&c.metrics, "metrics", false, "write emission counts to stderr on exit")

	root.AddCommand(
		c.messageCommand("print", "Print a message", (*gdlog.Logger).Print),
		c.messageCommand("warn", "Print a message and push it as a warning", (*gdlog.Logger).Warn),
		c.messageCommand("error", "Print a message and push it as an error", (*gdlog.Logger).Error),
		c.traceCommand(),
		c.assertCommand(),
		c.runCommand(),
		c.alwaysCommand(),
		c.configCommand(),
	)
	return root
}

// setup loads settings, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	opts := []config.Option{}
	if c.configPath != "" {
		opts = append(opts, config.WithFile(c.configPath))
	}
	opts = append(opts, config.WithEnv(""))

	settings, err := config.Load(cmd.Context(), opts...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		settings.Prefix = c.prefix
	}
	if flags.Changed("host") {
		settings.Host = c.host
	}
	if flags.Changed("color") {
		settings.Color = c.color
	}
	if flags.Changed("metrics") {
		settings.Metrics.Enabled = c.metrics
	}
	c.settings = settings

	rt, err := settings.Build(config.WithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	c.runtime = rt

	c.log, err = rt.Logger("")
	return err
}

// close writes the metrics dump, when enabled, and releases the runtime.
func (c *cli) close(ctx context.Context, stderr io.Writer) error {
	if c.runtime == nil {
		return nil
	}

	var errs []error
	if rec := c.runtime.Metrics(); rec != nil {
		errs = append(errs, rec.WriteText(stderr))
	}
	errs = append(errs, c.runtime.Close(ctx))
	return errors.Join(errs...)
}
