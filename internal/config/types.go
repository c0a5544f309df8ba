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

// Package config loads sirseer-scout settings from defaults, a YAML file,
// a .env file and environment variables, in increasing order of precedence.
// Command-line flags are applied on top by the CLI.
package config

import "github.com/sirseerhq/sirseer-scout/internal/bio"

// Config is the complete configuration.
type Config struct {
	GitHub       GitHubConfig          `yaml:"github"`
	Scan         ScanConfig            `yaml:"scan"`
	Output       OutputConfig          `yaml:"output"`
	Log          LogConfig             `yaml:"log"`
	Repositories map[string]RepoConfig `yaml:"repositories"`
}

// GitHubConfig holds API connection settings.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
}

// ScanConfig holds the defaults for a scan.
type ScanConfig struct {
	MaxCommits int      `yaml:"max_commits"`
	Keywords   []string `yaml:"keywords"`
}

// OutputConfig selects where and how matches are written.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// LogConfig controls logrus.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RepoConfig overrides scan settings for one "owner/repo".
type RepoConfig struct {
	MaxCommits int      `yaml:"max_commits"`
	Keywords   []string `yaml:"keywords"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
		},
		Scan: ScanConfig{
			MaxCommits: 12000,
			Keywords:   append([]string(nil), bio.DefaultKeywords...),
		},
		Output: OutputConfig{
			Path:   "contributors.txt",
			Format: "text",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Repositories: make(map[string]RepoConfig),
	}
}
