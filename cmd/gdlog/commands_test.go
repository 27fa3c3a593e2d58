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
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(args ...string) result {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

var _ = Describe("gdlog", func() {
	Describe("message commands", func() {
		DescribeTable("should write to the expected channels",
			func(command, wantStdout, wantStderr string) {
				res := run("--host", "std", "--prefix", "Build", command, "asset", "cache")

				Expect(res.code).To(Equal(0))
				Expect(res.stdout).To(Equal(wantStdout))
				Expect(res.stderr).To(Equal(wantStderr))
			},
			Entry("print", "print", "Build: asset cache\n", ""),
			Entry("warn", "warn", "Build: asset cache\n", "WARNING: Build: asset cache\n"),
			Entry("error", "error", "Build: asset cache\n", "ERROR: Build: asset cache\n"),
		)

		It("should use the default prefix without --prefix", func() {
			res := run("--host", "std", "print", "hello")
			Expect(res.stdout).To(Equal("gdlog: hello\n"))
		})

		It("should require a message", func() {
			res := run("--host", "std", "print")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(ContainSubstring("requires at least 1 arg"))
		})
	})

	Describe("trace", func() {
		It("should print one prefixed line per frame", func() {
			res := run("--host", "std", "--prefix", "T", "trace")

			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(HavePrefix("T: "))
			Expect(res.stdout).To(ContainSubstring("commands.go("))
			Expect(res.stdout).To(MatchRegexp(`\(\d+,0\)\n$`))
		})
	})

	Describe("assert", func() {
		It("should stay silent when the condition holds", func() {
			res := run("--host", "std", "assert", "true", "never shown")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(BeEmpty())
		})

		It("should report the message and exit 1 when the condition fails", func() {
			res := run("--host", "std", "--prefix", "A", "assert", "0", "player", "missing")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(Equal("ERROR: A: player missing\n"))
		})

		It("should reject a condition that is not a boolean", func() {
			res := run("--host", "std", "assert", "maybe", "x")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(ContainSubstring(`invalid condition "maybe"`))
		})
	})

	Describe("subprocesses", func() {
		BeforeEach(func() {
			if _, err := exec.LookPath("sh"); err != nil {
				Skip("sh is not available")
			}
		})

		It("should pass through a successful command", func() {
			res := run("--host", "std", "run", "--", "sh", "-c", "echo hi")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(Equal("hi\n"))
			Expect(res.stderr).To(BeEmpty())
		})

		It("should log a failed command and exit with its status", func() {
			res := run("--host", "std", "--prefix", "Build", "run", "--", "sh", "-c", "exit 3")

			Expect(res.code).To(Equal(3))
			Expect(res.stdout).To(Equal("Build: An error occurred.\nBuild: exec.ExitError: exit status 3\n"))
			Expect(res.stderr).To(Equal("ERROR: Build: An error occurred.\nERROR: Build: exec.ExitError: exit status 3\n"))
		})

		It("should print the command output from always", func() {
			res := run("--host", "std", "always", "--fallback", "0.8", "--", "sh", "-c", "echo 0.5")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(Equal("0.5\n"))
		})

		It("should print the fallback from always when the command fails", func() {
			res := run("--host", "std", "--prefix", "V", "always", "--fallback", "0.8", "--", "sh", "-c", "exit 1")

			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(HaveSuffix("0.8\n"))
			Expect(res.stderr).To(Equal(
				"WARNING: V: An error occurred. Using fallback value `0.8`.\n" +
					"WARNING: V: exec.ExitError: exit status 1\n"))
		})
	})

	Describe("settings", func() {
		It("should load a settings file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "gdlog.yaml")
			Expect(os.WriteFile(path, []byte("prefix: FromFile\nhost: std\n"), 0o600)).To(Succeed())

			res := run("--config", path, "print", "x")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(Equal("FromFile: x\n"))
		})

		It("should let flags override the settings file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "gdlog.toml")
			Expect(os.WriteFile(path, []byte("prefix = \"FromFile\"\nhost = \"std\"\n"), 0o600)).To(Succeed())

			res := run("--config", path, "--prefix", "FromFlag", "print", "x")
			Expect(res.stdout).To(Equal("FromFlag: x\n"))
		})

		It("should print the effective settings", func() {
			res := run("--host", "charm", "config", "--format", "json")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(ContainSubstring(`"host": "charm"`))
			Expect(res.stdout).To(ContainSubstring(`"prefix": "gdlog"`))
		})

		It("should reject an unknown output format", func() {
			res := run("config", "--format", "ini")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(ContainSubstring("unknown codec type"))
		})

		It("should reject an unknown host", func() {
			res := run("--host", "browser", "print", "x")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(HavePrefix("gdlog: "))
			Expect(res.stdout).To(BeEmpty())
		})

		It("should reject a missing settings file", func() {
			res := run("--config", filepath.Join(GinkgoT().TempDir(), "missing.json"), "print", "x")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(ContainSubstring("missing.json"))
		})
	})

	Describe("metrics", func() {
		It("should dump emission counts on exit", func() {
			res := run("--host", "std", "--metrics", "warn", "x")

			Expect(res.code).To(Equal(0))
			Expect(res.stderr).To(HavePrefix("WARNING: gdlog: x\n"))
			Expect(res.stderr).To(ContainSubstring("gdlog_messages_total"))
			Expect(res.stderr).To(ContainSubstring(`channel="warning"`))
		})
	})
})
