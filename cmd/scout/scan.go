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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-scout/internal/bio"
	"github.com/sirseerhq/sirseer-scout/internal/config"
	"github.com/sirseerhq/sirseer-scout/internal/contributors"
	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/internal/github"
	"github.com/sirseerhq/sirseer-scout/internal/logging"
	"github.com/sirseerhq/sirseer-scout/internal/output"
)

// scanOptions holds flag values. Zero values mean "not set on the command
// line" and defer to the configuration.
type scanOptions struct {
	configPath string
	token      string
	keywords   []string
	maxCommits int
	outputPath string
	format     string
	logLevel   string
	list       bool
}

// clientFactory builds the API client; tests substitute a mock.
type clientFactory func(token, endpoint string) github.Client

func newGraphQLClient(token, endpoint string) github.Client {
	return github.NewGraphQLClient(token, endpoint)
}

func newScanCommand() *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Use:   "scan <owner>/<repo>",
		Short: "Scan a repository's commit authors for keyword matches in their bio",
		Long: `Scan the default branch history of a GitHub repository, collect the unique
commit authors, and write those whose profile bio contains one of the keywords.

The repository must be specified in the format: <owner>/<repo>
For example: MicrosoftDocs/azure-devops-docs

Matches are written two lines per author (display name, then login) to
contributors.txt unless --output or --format say otherwise.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), newGraphQLClient)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringArrayVarP(&opts.keywords, "keyword", "k", nil, "Keyword to look for in author bios (repeatable)")
	cmd.Flags().IntVar(&opts.maxCommits, "max-commits", 0, "Stop after inspecting about this many commits (default 12000)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path, - for stdout (default contributors.txt)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text or ndjson (default text)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "Also list every contributor found on stderr")

	return cmd
}

func runScan(ctx context.Context, repoArg string, opts scanOptions, stdout, stderr io.Writer, newClient clientFactory) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfigForRepo(opts.configPath, owner+"/"+repo)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		return err
	}
	log := logger.WithFields(logrus.Fields{
		"owner": owner,
		"repo":  repo,
	})

	token := opts.token
	if token == "" {
		token = cfg.Token()
	}
	if token == "" {
		return fmt.Errorf("GitHub token not found. Set %s or use --token flag", cfg.GitHub.TokenEnv)
	}

	matcher := bio.NewMatcher(cfg.Scan.Keywords)
	if len(matcher.Keywords()) == 0 {
		log.Warn("no keywords configured; no contributor can match")
	}

	log.WithField("max_commits", cfg.Scan.MaxCommits).Info("scanning commit history")

	client := newClient(token, cfg.GitHub.GraphQLEndpoint)
	res, err := contributors.Fetch(ctx, client, owner, repo, cfg.Scan.MaxCommits,
		contributors.WithLogger(log),
		contributors.WithPageHook(func(r *contributors.Result) {
			log.WithFields(logrus.Fields{
				"page":         r.Pages,
				"commits":      r.CommitsProcessed,
				"contributors": len(r.Authors),
			}).Info("fetched page")
		}),
	)
	if err != nil {
		return err
	}

	if opts.list {
		listContributors(stderr, res.Authors)
	}

	writer, err := output.New(cfg.Output.Format, cfg.Output.Path, stdout)
	if err != nil {
		return err
	}

	for _, author := range res.Authors {
		keyword, ok := matcher.Matched(author.Bio)
		if !ok {
			continue
		}
		log.WithFields(logrus.Fields{
			"login":   author.Login,
			"keyword": keyword,
		}).Debug("bio matched")
		if err := writer.Write(author); err != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write contributor: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish output: %w", err)
	}

	log.WithFields(logrus.Fields{
		"commits":      res.CommitsProcessed,
		"pages":        res.Pages,
		"contributors": len(res.Authors),
		"matched":      writer.Count(),
		"output":       cfg.Output.Path,
	}).Info("scan complete")

	return nil
}

// applyFlags layers explicitly set flags over the loaded configuration.
func applyFlags(cfg *config.Config, opts scanOptions) {
	if keywords := config.CleanKeywords(opts.keywords); len(keywords) > 0 {
		cfg.Scan.Keywords = keywords
	}
	if opts.maxCommits > 0 {
		cfg.Scan.MaxCommits = opts.maxCommits
	}
	if opts.outputPath != "" {
		cfg.Output.Path = opts.outputPath
	}
	if opts.format != "" {
		cfg.Output.Format = strings.ToLower(opts.format)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
}

func listContributors(w io.Writer, authors []github.Author) {
	fmt.Fprintln(w, "########## Code Contributors ##########")
	for _, a := range authors {
		fmt.Fprintf(w, "Name: %s, Login: %s, Job Title: %s\n", a.Name, a.Login, a.Bio)
	}
}

func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, scouterrors.ErrInvalidToken) ||
		errors.Is(err, scouterrors.ErrRepoNotFound) ||
		errors.Is(err, scouterrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, scouterrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	if errors.Is(err, scouterrors.ErrTransport) {
		return 4
	}

	if errors.Is(err, scouterrors.ErrProtocol) {
		return 5
	}

	return 1 // General error
}
