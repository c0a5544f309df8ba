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

// Package contributors walks a repository's commit history page by page and
// collects the distinct commit authors in the order they were first seen.
package contributors

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/internal/github"
)

// DefaultMaxCommits bounds the number of commits inspected when the caller
// does not choose a ceiling.
const DefaultMaxCommits = 12000

// PageSize is the number of commits requested per page.
const PageSize = github.MaxPageSize

// Result is the outcome of a completed Fetch.
type Result struct {
	// Authors are the unique commit authors in discovery order.
	Authors []github.Author
	// CommitsProcessed counts every commit on every fetched page,
	// including commits without a linked user.
	CommitsProcessed int
	// Pages is the number of history requests issued.
	Pages int
}

// Option configures Fetch.
type Option func(*fetcher)

// WithLogger sets the logger used for per-page debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(f *fetcher) {
		f.log = log
	}
}

// WithPageHook registers fn to be called after each page is folded into the
// running result. The Result passed to fn must not be retained.
func WithPageHook(fn func(*Result)) Option {
	return func(f *fetcher) {
		f.onPage = fn
	}
}

type fetcher struct {
	log    *logrus.Entry
	onPage func(*Result)
}

// Fetch pages through the default branch history of owner/repo and returns
// its unique authors. It keeps requesting pages while the API reports more
// and fewer than maxCommits commits have been processed; maxCommits <= 0
// selects DefaultMaxCommits. The ceiling is checked between requests only,
// so the last page can take the total up to PageSize-1 past maxCommits.
//
// Any client error ends the walk and is returned without partial results.
// A page that reports more history but carries no end cursor would restart
// the walk from the branch head, so it is rejected with an
// errors.ProtocolError.
func Fetch(ctx context.Context, client github.Client, owner, repo string, maxCommits int, opts ...Option) (*Result, error) {
	if maxCommits <= 0 {
		maxCommits = DefaultMaxCommits
	}

	f := &fetcher{
		log: logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(f)
	}
	log := f.log.WithFields(logrus.Fields{
		"owner": owner,
		"repo":  repo,
	})

	acc := newCollector()
	res := &Result{}
	cursor := ""

	for {
		page, err := client.FetchCommitAuthors(ctx, owner, repo, github.FetchOptions{
			PageSize: PageSize,
			After:    cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("page %d of %s/%s: %w", res.Pages+1, owner, repo, err)
		}
		res.Pages++

		added := 0
		for _, author := range page.Authors {
			if author != nil && acc.add(*author) {
				added++
			}
		}
		res.CommitsProcessed += page.Len()
		res.Authors = acc.authors

		log.WithFields(logrus.Fields{
			"page":        res.Pages,
			"commits":     page.Len(),
			"new_authors": added,
			"processed":   res.CommitsProcessed,
			"has_next":    page.HasNextPage,
		}).Debug("processed history page")

		if f.onPage != nil {
			f.onPage(res)
		}

		if !page.HasNextPage || res.CommitsProcessed >= maxCommits {
			break
		}
		if page.EndCursor == "" {
			return nil, fmt.Errorf("page %d of %s/%s: %w", res.Pages, owner, repo, &scouterrors.ProtocolError{
				Reason: "hasNextPage is true but endCursor is empty",
			})
		}
		cursor = page.EndCursor
	}

	return res, nil
}
