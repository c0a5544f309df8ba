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

// Package main implements the sirseer-scout command-line interface.
// The tool walks the commit history of a GitHub repository's default branch,
// collects the distinct commit authors, and writes out the ones whose
// profile bio mentions one of a set of keywords.
//
// The CLI supports:
//   - Keyword selection via repeated --keyword flags, config file, or SCOUT_KEYWORDS
//   - A ceiling on the number of commits inspected (--max-commits)
//   - Text (name, login) or NDJSON output to a file or stdout
//   - GitHub token authentication via flag or environment variable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	sirseer-scout scan <owner>/<repo> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-scout scan MicrosoftDocs/azure-devops-docs -k Writer -k Editor -o writers.txt
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
//   - 4: Unexpected HTTP status from the API
//   - 5: Malformed API response
package main
