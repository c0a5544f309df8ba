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

// Package github provides a client for GitHub's GraphQL API that walks the
// commit history of a repository's default branch and reports who authored
// each commit, including the author's profile name and bio.
//
// The package includes:
//   - A Client interface for fetching one page of commit authors
//   - A GraphQL implementation using the shurcooL/graphql library
//   - HTTP transports for bearer auth, response limits, and status checks
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	page, err := client.FetchCommitAuthors(ctx, "MicrosoftDocs", "azure-devops-docs", github.FetchOptions{})
//	if err != nil {
//	    // Handle error
//	}
//	for _, author := range page.Authors {
//	    // author is nil for commits without a linked GitHub user
//	}
package github
