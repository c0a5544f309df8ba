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

// Package bio decides whether a GitHub profile biography is relevant to a
// set of keywords. Matching is a case-insensitive substring test on the
// lower-cased bio and keywords, so "WRITER", "Writer" and "writer" are
// equivalent. Keywords are taken literally: an empty keyword occurs in every
// non-empty bio.
package bio

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultKeywords are the documentation-related job titles searched for when
// no keywords are configured.
var DefaultKeywords = []string{
	"Writer",
	"Documentation",
	"Content Developer",
	"Information Curator",
	"Editor",
	"Knowledge Manager",
	"Content",
	"User Assistance Designer",
}

// IsRelevant reports whether any keyword occurs in bio, ignoring case.
// An empty bio or an empty keyword set is never relevant.
func IsRelevant(bio string, keywords []string) bool {
	return NewMatcher(keywords).Match(bio)
}

// Matcher holds the lower-cased keywords so they are converted once, not on
// every bio check.
type Matcher struct {
	keywords []string
	folded   []string
}

// NewMatcher builds a Matcher. Keywords that lower-case to an already seen
// value are dropped; the order of first appearance is kept.
func NewMatcher(keywords []string) *Matcher {
	m := &Matcher{}
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		f := fold(k)
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		m.keywords = append(m.keywords, k)
		m.folded = append(m.folded, f)
	}
	return m
}

// Keywords returns the effective keyword list.
func (m *Matcher) Keywords() []string {
	return append([]string(nil), m.keywords...)
}

// Match reports whether bio contains at least one keyword.
func (m *Matcher) Match(bio string) bool {
	_, ok := m.Matched(bio)
	return ok
}

// Matched returns the first keyword, in configured order, found in bio.
func (m *Matcher) Matched(bio string) (string, bool) {
	if bio == "" || len(m.folded) == 0 {
		return "", false
	}
	b := fold(bio)
	for i, k := range m.folded {
		if strings.Contains(b, k) {
			return m.keywords[i], true
		}
	}
	return "", false
}

// fold lower-cases s without language-specific rules. A fresh Caser is used
// per call since cases.Caser is stateful and not safe for concurrent use.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
