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

// Author is the GitHub user linked to a commit. All three fields take part in
// equality, so two observations of the same login with a different bio are
// distinct authors. A null name or bio is represented by the empty string.
type Author struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
}

// CommitPage is one page of default-branch commit history.
type CommitPage struct {
	// Authors has one entry per commit node, in history order. An entry is
	// nil when the commit is not linked to a GitHub user.
	Authors     []*Author
	HasNextPage bool
	EndCursor   string
}

// Len returns the number of commits on the page, attributed or not.
func (p *CommitPage) Len() int {
	return len(p.Authors)
}

// FetchOptions configures a single history request.
type FetchOptions struct {
	// PageSize controls how many commits to fetch per page.
	// Defaults to 100, which is also GitHub's maximum.
	PageSize int

	// After is the pagination cursor. Empty fetches from the branch head.
	// Use CommitPage.EndCursor from the previous response for the next page.
	After string
}

// MaxPageSize is the largest page GitHub's GraphQL connections return.
const MaxPageSize = 100
