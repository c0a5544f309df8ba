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

import "fmt"

// AuthorNode builds a commit node whose author is linked to a GitHub user.
func AuthorNode(login, name, bio string) map[string]interface{} {
	return map[string]interface{}{
		"author": map[string]interface{}{
			"user": map[string]interface{}{
				"login": login,
				"name":  name,
				"bio":   bio,
			},
		},
	}
}

// UnlinkedNode builds a commit node whose author has no GitHub account.
func UnlinkedNode() map[string]interface{} {
	return map[string]interface{}{
		"author": map[string]interface{}{
			"user": nil,
		},
	}
}

// GenerateAuthorNodes returns one commit node per index in [start, end],
// each authored by a distinct user "user<N>" carrying the given bio.
func GenerateAuthorNodes(start, end int, bio string) []map[string]interface{} {
	if end < start {
		return []map[string]interface{}{}
	}
	nodes := make([]map[string]interface{}, 0, end-start+1)
	for i := start; i <= end; i++ {
		nodes = append(nodes, AuthorNode(fmt.Sprintf("user%d", i), fmt.Sprintf("User %d", i), bio))
	}
	return nodes
}

// HistoryResponseBuilder builds commit-history GraphQL responses
type HistoryResponseBuilder struct {
	nodes       []map[string]interface{}
	hasNextPage bool
	endCursor   string
	emptyRepo   bool
	errors      []map[string]interface{}
}

// NewHistoryResponseBuilder creates a new response builder
func NewHistoryResponseBuilder() *HistoryResponseBuilder {
	return &HistoryResponseBuilder{
		nodes: []map[string]interface{}{},
	}
}

// WithNodes appends commit nodes to the page
func (b *HistoryResponseBuilder) WithNodes(nodes ...map[string]interface{}) *HistoryResponseBuilder {
	b.nodes = append(b.nodes, nodes...)
	return b
}

// WithAuthor appends a commit by a linked user
func (b *HistoryResponseBuilder) WithAuthor(login, name, bio string) *HistoryResponseBuilder {
	return b.WithNodes(AuthorNode(login, name, bio))
}

// WithUnlinkedCommit appends a commit with no linked user
func (b *HistoryResponseBuilder) WithUnlinkedCommit() *HistoryResponseBuilder {
	return b.WithNodes(UnlinkedNode())
}

// WithPagination sets pagination info
func (b *HistoryResponseBuilder) WithPagination(hasNext bool, cursor string) *HistoryResponseBuilder {
	b.hasNextPage = hasNext
	b.endCursor = cursor
	return b
}

// WithEmptyRepository makes the response describe a repository with no
// default branch.
func (b *HistoryResponseBuilder) WithEmptyRepository() *HistoryResponseBuilder {
	b.emptyRepo = true
	return b
}

// WithError adds an error to the response
func (b *HistoryResponseBuilder) WithError(errType, message string) *HistoryResponseBuilder {
	entry := map[string]interface{}{"message": message}
	if errType != "" {
		entry["type"] = errType
	}
	b.errors = append(b.errors, entry)
	return b
}

// Build creates the GraphQL response
func (b *HistoryResponseBuilder) Build() map[string]interface{} {
	if len(b.errors) > 0 {
		return map[string]interface{}{
			"data":   map[string]interface{}{"repository": nil},
			"errors": b.errors,
		}
	}

	if b.emptyRepo {
		return map[string]interface{}{
			"data": map[string]interface{}{
				"repository": map[string]interface{}{
					"defaultBranchRef": nil,
				},
			},
		}
	}

	var cursor *string
	if b.endCursor != "" {
		cursor = &b.endCursor
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"repository": map[string]interface{}{
				"defaultBranchRef": map[string]interface{}{
					"target": map[string]interface{}{
						"history": map[string]interface{}{
							"nodes": b.nodes,
							"pageInfo": map[string]interface{}{
								"hasNextPage": b.hasNextPage,
								"endCursor":   cursor,
							},
						},
					},
				},
			},
		},
	}
}

// GenerateHistoryResponse generates a page with commits by user<start> through
// user<end>. When hasMore is set the page links to cursor "cursor-<end>".
func GenerateHistoryResponse(start, end int, hasMore bool) map[string]interface{} {
	b := NewHistoryResponseBuilder().WithNodes(GenerateAuthorNodes(start, end, "Technical Writer")...)
	if hasMore {
		b.WithPagination(true, fmt.Sprintf("cursor-%d", end))
	}
	return b.Build()
}
