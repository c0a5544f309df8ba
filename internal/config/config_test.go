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

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirseerhq/sirseer-scout/internal/bio"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s, want https://api.github.com/graphql", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("TokenEnv = %s, want GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Scan.MaxCommits != 12000 {
		t.Errorf("MaxCommits = %d, want 12000", cfg.Scan.MaxCommits)
	}
	if !reflect.DeepEqual(cfg.Scan.Keywords, bio.DefaultKeywords) {
		t.Errorf("Keywords = %v, want %v", cfg.Scan.Keywords, bio.DefaultKeywords)
	}
	if cfg.Output.Path != "contributors.txt" || cfg.Output.Format != "text" {
		t.Errorf("Output = %+v, want contributors.txt/text", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}

	// Defaults must not alias the package-level keyword list.
	cfg.Scan.Keywords[0] = "changed"
	if bio.DefaultKeywords[0] == "changed" {
		t.Error("DefaultConfig shares the DefaultKeywords backing array")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	configPath := writeConfig(t, `
github:
  graphql_endpoint: https://github.enterprise.com/api/graphql
  token_env: GHE_TOKEN

scan:
  max_commits: 500
  keywords: [Writer, Editor]

output:
  path: docs-people.ndjson
  format: ndjson

log:
  level: debug
  format: json

repositories:
  "MicrosoftDocs/PowerShell-Docs":
    max_commits: 50
    keywords: [Curator]
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.GraphQLEndpoint != "https://github.enterprise.com/api/graphql" {
		t.Errorf("GraphQLEndpoint = %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("TokenEnv = %s, want GHE_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Scan.MaxCommits != 500 {
		t.Errorf("MaxCommits = %d, want 500", cfg.Scan.MaxCommits)
	}
	if !reflect.DeepEqual(cfg.Scan.Keywords, []string{"Writer", "Editor"}) {
		t.Errorf("Keywords = %v", cfg.Scan.Keywords)
	}
	if cfg.Output.Format != "ndjson" || cfg.Output.Path != "docs-people.ndjson" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}

	repoCfg, err := LoadConfigForRepo(configPath, "MicrosoftDocs/PowerShell-Docs")
	if err != nil {
		t.Fatalf("LoadConfigForRepo failed: %v", err)
	}
	if repoCfg.Scan.MaxCommits != 50 {
		t.Errorf("repo MaxCommits = %d, want 50", repoCfg.Scan.MaxCommits)
	}
	if !reflect.DeepEqual(repoCfg.Scan.Keywords, []string{"Curator"}) {
		t.Errorf("repo Keywords = %v", repoCfg.Scan.Keywords)
	}

	otherCfg, err := LoadConfigForRepo(configPath, "MicrosoftDocs/other")
	if err != nil {
		t.Fatalf("LoadConfigForRepo failed: %v", err)
	}
	if otherCfg.Scan.MaxCommits != 500 {
		t.Errorf("unlisted repo MaxCommits = %d, want 500", otherCfg.Scan.MaxCommits)
	}
}

func TestLoadConfig_BadFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}

	path := writeConfig(t, "scan: [not, a, map]")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	t.Setenv("GITHUB_GRAPHQL_ENDPOINT", "https://custom.graphql.com")
	t.Setenv("SCOUT_MAX_COMMITS", "300")
	t.Setenv("SCOUT_KEYWORDS", "Writer, Content Developer ,,")
	t.Setenv("SCOUT_OUTPUT", "-")
	t.Setenv("SCOUT_FORMAT", "NDJSON")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.GraphQLEndpoint != "https://custom.graphql.com" {
		t.Errorf("GraphQLEndpoint = %s, want https://custom.graphql.com", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.Scan.MaxCommits != 300 {
		t.Errorf("MaxCommits = %d, want 300", cfg.Scan.MaxCommits)
	}
	if !reflect.DeepEqual(cfg.Scan.Keywords, []string{"Writer", "Content Developer"}) {
		t.Errorf("Keywords = %q", cfg.Scan.Keywords)
	}
	if cfg.Output.Path != "-" || cfg.Output.Format != "ndjson" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	env := "SCOUT_MAX_COMMITS=700\nSCOUT_FORMAT=ndjson\nSCOUT_DOTENV_TOKEN=from-dotenv\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	// Real environment wins over .env.
	t.Setenv("SCOUT_FORMAT", "text")
	// Registered so the value loaded from .env is cleared after the test.
	t.Setenv("SCOUT_MAX_COMMITS", "")
	t.Setenv("SCOUT_DOTENV_TOKEN", "")
	os.Unsetenv("SCOUT_MAX_COMMITS")
	os.Unsetenv("SCOUT_DOTENV_TOKEN")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Scan.MaxCommits != 700 {
		t.Errorf("MaxCommits = %d, want 700 from .env", cfg.Scan.MaxCommits)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %s, want text from the environment", cfg.Output.Format)
	}

	cfg.GitHub.TokenEnv = "SCOUT_DOTENV_TOKEN"
	if got := cfg.Token(); got != "from-dotenv" {
		t.Errorf("Token() = %q, want from-dotenv", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "non-positive max commits",
			mutate:  func(c *Config) { c.Scan.MaxCommits = 0 },
			wantErr: "max commits must be positive",
		},
		{
			name:    "empty GraphQL endpoint",
			mutate:  func(c *Config) { c.GitHub.GraphQLEndpoint = "" },
			wantErr: "GitHub GraphQL endpoint cannot be empty",
		},
		{
			name:    "empty token env",
			mutate:  func(c *Config) { c.GitHub.TokenEnv = "" },
			wantErr: "token environment variable name cannot be empty",
		},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: "output format \"csv\" is not supported",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log format \"xml\" is not supported",
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: "output path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() error = nil, want %s", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Validate() error = %v, want containing %s", err, tt.wantErr)
				}
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"-", "-"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"50", 50, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{" 42 ", 42, false},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePositiveInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePositiveInt(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePositiveInt(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" Writer ,Editor,, Content ")
	want := []string{"Writer", "Editor", "Content"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList() = %q, want %q", got, want)
	}
	if splitList(" , ") != nil {
		t.Error("expected nil for a list of blanks")
	}
}

func TestLoadConfig_InvalidMaxCommitsEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	for _, value := range []string{"12abc", "0", "many"} {
		t.Setenv("SCOUT_MAX_COMMITS", value)
		_, err := LoadConfig("")
		if err == nil {
			t.Errorf("SCOUT_MAX_COMMITS=%q: expected error", value)
			continue
		}
		if !strings.Contains(err.Error(), "SCOUT_MAX_COMMITS") {
			t.Errorf("SCOUT_MAX_COMMITS=%q: error %q does not name the variable", value, err)
		}
	}
}

func TestCleanKeywords(t *testing.T) {
	got := CleanKeywords([]string{"Writer", "", "  ", " Editor "})
	want := []string{"Writer", " Editor "}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanKeywords() = %q, want %q", got, want)
	}
	if CleanKeywords([]string{"", "\t"}) != nil {
		t.Error("expected nil for a list of blanks")
	}
}

func TestLoadConfig_DropsBlankKeywords(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SCOUT_KEYWORDS", "")

	path := writeConfig(t, `
scan:
  keywords: ["Writer", "", " "]
repositories:
  owner/repo:
    keywords: ["", "Editor"]
  owner/blank:
    keywords: [" "]
`)

	cfg, err := LoadConfigForRepo(path, "owner/other")
	if err != nil {
		t.Fatalf("LoadConfigForRepo failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Scan.Keywords, []string{"Writer"}) {
		t.Errorf("Keywords = %q, want [Writer]", cfg.Scan.Keywords)
	}

	cfg, err = LoadConfigForRepo(path, "owner/repo")
	if err != nil {
		t.Fatalf("LoadConfigForRepo failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Scan.Keywords, []string{"Editor"}) {
		t.Errorf("repo Keywords = %q, want [Editor]", cfg.Scan.Keywords)
	}

	cfg, err = LoadConfigForRepo(path, "owner/blank")
	if err != nil {
		t.Fatalf("LoadConfigForRepo failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Scan.Keywords, []string{"Writer"}) {
		t.Errorf("blank repo override should keep global keywords, got %q", cfg.Scan.Keywords)
	}
}
