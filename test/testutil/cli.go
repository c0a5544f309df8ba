// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// scoutBinary compiles cmd/scout into a temporary directory the first time
// it is called and returns the same path afterwards.
var scoutBinary = sync.OnceValues(func() (string, error) {
	gomod, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("locate module: %w", err)
	}
	root := filepath.Dir(strings.TrimSpace(string(gomod)))

	dir, err := os.MkdirTemp("", "sirseer-scout-bin")
	if err != nil {
		return "", err
	}
	bin := filepath.Join(dir, "sirseer-scout")

	build := exec.Command("go", "build", "-o", bin, "./cmd/scout")
	build.Dir = root
	if out, err := build.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build: %w\n%s", err, out)
	}
	return bin, nil
})

// CLIResult is the outcome of one sirseer-scout invocation.
type CLIResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RequireSuccess stops the test unless the command exited with status 0.
func (r CLIResult) RequireSuccess(t *testing.T) {
	t.Helper()
	if r.ExitCode != 0 {
		t.Fatalf("exit code %d, want 0\nstderr: %s", r.ExitCode, r.Stderr)
	}
}

// RequireFailure checks the exit status and that stderr mentions msg.
func (r CLIResult) RequireFailure(t *testing.T, exitCode int, msg string) {
	t.Helper()
	if r.ExitCode != exitCode {
		t.Errorf("exit code %d, want %d\nstderr: %s", r.ExitCode, exitCode, r.Stderr)
	}
	if msg != "" && !strings.Contains(r.Stderr, msg) {
		t.Errorf("stderr does not mention %q: %s", msg, r.Stderr)
	}
}

// RunCLI runs sirseer-scout in dir with HOME pointed at dir, so host
// configuration files stay out of the run. env entries are added to the
// inherited environment and win over it.
func RunCLI(t *testing.T, dir string, args []string, env map[string]string) CLIResult {
	t.Helper()

	bin, err := scoutBinary()
	if err != nil {
		t.Fatalf("build sirseer-scout: %v", err)
	}

	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+dir)
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := CLIResult{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("run sirseer-scout: %v", err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}

// RunScan runs "scan repo args..." against server with a test token.
func RunScan(t *testing.T, server *MockServer, dir, repo string, args ...string) CLIResult {
	t.Helper()
	return RunCLI(t, dir, append([]string{"scan", repo}, args...), map[string]string{
		"GITHUB_TOKEN":            "test-token",
		"GITHUB_GRAPHQL_ENDPOINT": server.Endpoint(),
	})
}
