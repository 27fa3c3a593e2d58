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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	gdlog "github.com/lewiji/go-dot-log"
	"github.com/lewiji/go-dot-log/config/codec"
)

func (c *cli) messageCommand(name, short string, emit func(*gdlog.Logger, string)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " MESSAGE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			emit(c.log, strings.Join(args, " "))
			return nil
		},
	}
}

func (c *cli) traceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Print the current stack trace",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c.log.PrintTrace(gdlog.CaptureStackTrace(0))
			return nil
		},
	}
}

func (c *cli) assertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assert CONDITION MESSAGE...",
		Short: "Report MESSAGE as an error and exit 1 unless CONDITION is true",
		Long: `Report MESSAGE as an error and exit 1 unless CONDITION is true.

CONDITION accepts 1, t, true, 0, f, false and the like.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := cast.ToBoolE(args[0])
			if err != nil {
				return fmt.Errorf("invalid condition %q: %w", args[0], err)
			}
			if err := c.log.Assert(ok, strings.Join(args[1:], " ")); err != nil {
				return &exitError{code: 1, err: err}
			}
			return nil
		},
	}
}

func (c *cli) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run -- COMMAND [ARG...]",
		Short: "Run COMMAND and log its failure",
		Long: `Run COMMAND and log its failure as an error.

gdlog exits with the command's exit status.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.log.RunContext(cmd.Context(), func(ctx context.Context) error {
				return subprocess(ctx, cmd, args, cmd.OutOrStdout()).Run()
			}, nil)
			if err == nil {
				return nil
			}

			code := 1
			var ee *exec.ExitError
			if errors.As(err, &ee) && ee.ExitCode() > 0 {
				code = ee.ExitCode()
			}
			return &exitError{code: code, err: err}
		},
	}
}

func (c *cli) alwaysCommand() *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "always --fallback VALUE -- COMMAND [ARG...]",
		Short: "Print COMMAND's output, or VALUE when it fails",
		Long: `Run COMMAND and print its trimmed standard output. When the command
fails, the failure is logged as a warning, VALUE is printed instead and gdlog
exits 0.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := gdlog.Always(c.log, func() (string, error) {
				var out bytes.Buffer
				err := subprocess(cmd.Context(), cmd, args, &out).Run()
				return strings.TrimSpace(out.String()), err
			}, fallback)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
	cmd.Flags().StringVar(&fallback, "fallback", "", "value printed when the command fails")
	return cmd
}

func (c *cli) configCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := codec.Get(codec.Type(format))
			if err != nil {
				return err
			}
			data, err := enc.Encode(c.settings)
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(codec.TypeYAML), "output format: yaml, json or toml")
	return cmd
}

func subprocess(ctx context.Context, cmd *cobra.Command, args []string, stdout io.Writer) *exec.Cmd {
	proc := exec.CommandContext(ctx, args[0], args[1:]...)
	proc.Stdin = cmd.InOrStdin()
	proc.Stdout = stdout
	proc.Stderr = cmd.ErrOrStderr()
	return proc
}
