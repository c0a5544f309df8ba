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

package github

import (
	"context"
	"fmt"

	"github.com/shurcooL/graphql"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/internal/giterror"
)

// GraphQLClient implements the GitHub Client interface using GraphQL API.
// The token is bound at construction and sent as a bearer credential on
// every request.
type GraphQLClient struct {
	client    *graphql.Client
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// The client is configured with:
//   - Bearer authentication via oauth2 with a static token source
//   - Custom GraphQL endpoint URL (e.g., for GitHub Enterprise)
//   - Response size limiting to prevent memory issues
//   - Typed errors for non-200 statuses and malformed bodies
//   - User-Agent header for API compliance
func NewGraphQLClient(token string, endpoint string) *GraphQLClient {
	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, newHTTPClient(token)),
		inspector: giterror.NewInspector(),
	}
}

// historyQuery selects the author of each commit on the default branch.
// Every level that GitHub may return as null is a pointer.
type historyQuery struct {
	Repository *struct {
		DefaultBranchRef *struct {
			Target struct {
				Commit struct {
					History struct {
						PageInfo struct {
							HasNextPage graphql.Boolean
							EndCursor   *graphql.String
						}
						Nodes []struct {
							Author *struct {
								User *struct {
									Login graphql.String
									Name  *graphql.String
									Bio   *graphql.String
								}
							}
						}
					} `graphql:"history(first: $first, after: $after)"`
				} `graphql:"... on Commit"`
			}
		}
	} `graphql:"repository(owner: $owner, name: $repo)"`
}

// FetchCommitAuthors fetches one page of default-branch history. The first
// page is requested with a null cursor; later pages pass the previous
// EndCursor in opts.After.
func (c *GraphQLClient) FetchCommitAuthors(ctx context.Context, owner, repo string, opts FetchOptions) (*CommitPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	var after *graphql.String
	if opts.After != "" {
		after = graphql.NewString(graphql.String(opts.After))
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"repo":  graphql.String(repo),
		"first": graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 100
		"after": after,
	}

	var query historyQuery
	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, owner, repo)
	}

	if query.Repository == nil {
		return nil, fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w", owner, repo, scouterrors.ErrRepoNotFound)
	}

	// An empty repository has no default branch and therefore no history.
	if query.Repository.DefaultBranchRef == nil {
		return &CommitPage{}, nil
	}

	history := query.Repository.DefaultBranchRef.Target.Commit.History
	page := &CommitPage{
		HasNextPage: bool(history.PageInfo.HasNextPage),
		Authors:     make([]*Author, 0, len(history.Nodes)),
	}
	if history.PageInfo.EndCursor != nil {
		page.EndCursor = string(*history.PageInfo.EndCursor)
	}

	for _, node := range history.Nodes {
		if node.Author == nil || node.Author.User == nil {
			page.Authors = append(page.Authors, nil)
			continue
		}
		user := node.Author.User
		page.Authors = append(page.Authors, &Author{
			Login: string(user.Login),
			Name:  stringValue(user.Name),
			Bio:   stringValue(user.Bio),
		})
	}

	return page, nil
}

// mapError maps GraphQL and transport errors to our domain errors with actionable
// messages. The underlying error stays in the chain so callers can still reach
// the TransportError or ProtocolError and its raw body.
func (c *GraphQLClient) mapError(err error, owner, repo string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w: %w", scouterrors.ErrRateLimit, err)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w: %w", scouterrors.ErrInvalidToken, err)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w: %w", owner, repo, scouterrors.ErrRepoNotFound, err)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w: %w", scouterrors.ErrNetworkFailure, err)
	}

	return fmt.Errorf("failed to fetch commit history for %s/%s: %w", owner, repo, err)
}

func stringValue(s *graphql.String) string {
	if s == nil {
		return ""
	}
	return string(*s)
}
