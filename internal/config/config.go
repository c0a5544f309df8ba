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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from defaults, config file, .env and environment variables.
// Priority: environment > .env > config file > defaults
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".sirseer-scout.yaml",
			".sirseer-scout.yml",
			filepath.Join(os.Getenv("HOME"), ".sirseer", "scout.yaml"),
			filepath.Join(os.Getenv("HOME"), ".sirseer", "scout.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Variables already present in the environment win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.Scan.Keywords = CleanKeywords(cfg.Scan.Keywords)

	cfg.Output.Path = expandPath(cfg.Output.Path)

	return cfg, nil
}

// LoadConfigForRepo loads configuration and applies the overrides for repo ("owner/name").
func LoadConfigForRepo(configPath, repo string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if repoConfig, ok := cfg.Repositories[repo]; ok {
		if repoConfig.MaxCommits > 0 {
			cfg.Scan.MaxCommits = repoConfig.MaxCommits
		}
		if keywords := CleanKeywords(repoConfig.Keywords); len(keywords) > 0 {
			cfg.Scan.Keywords = keywords
		}
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}

	if maxCommits := os.Getenv("SCOUT_MAX_COMMITS"); maxCommits != "" {
		n, err := parsePositiveInt(maxCommits)
		if err != nil {
			return fmt.Errorf("invalid SCOUT_MAX_COMMITS: %w", err)
		}
		cfg.Scan.MaxCommits = n
	}
	if keywords := os.Getenv("SCOUT_KEYWORDS"); keywords != "" {
		cfg.Scan.Keywords = splitList(keywords)
	}

	if path := os.Getenv("SCOUT_OUTPUT"); path != "" {
		cfg.Output.Path = path
	}
	if format := os.Getenv("SCOUT_FORMAT"); format != "" {
		cfg.Output.Format = strings.ToLower(format)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("SCOUT_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	return nil
}

// Token returns the credential from the configured environment variable.
func (c *Config) Token() string {
	return os.Getenv(c.GitHub.TokenEnv)
}

// Validate checks the configuration for values a scan cannot run with.
func (c *Config) Validate() error {
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("token environment variable name cannot be empty")
	}
	if c.Scan.MaxCommits <= 0 {
		return fmt.Errorf("max commits must be positive, got: %d", c.Scan.MaxCommits)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	switch c.Output.Format {
	case "text", "ndjson":
	default:
		return fmt.Errorf("output format %q is not supported (want text or ndjson)", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q is not supported (want text or json)", c.Log.Format)
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func parsePositiveInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// CleanKeywords drops keywords that are empty or whitespace only. The
// matcher treats an empty keyword as matching every bio, so such entries
// are removed where keywords enter the configuration.
func CleanKeywords(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			out = append(out, k)
		}
	}
	return out
}

// splitList splits a comma-separated list, trimming blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
