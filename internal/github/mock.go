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

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
// It serves Pages in order, one per call, and records the cursor of each call.
type MockClient struct {
	// Pages to return, in call order
	Pages []*CommitPage

	// Error to return
	Error error
	// ErrorOnCall selects the 1-based call that returns Error; 0 means every call.
	ErrorOnCall int

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// Track calls for verification
	CallCount int
	LastOwner string
	LastRepo  string
	Cursors   []string
	PageSizes []int
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Pages: generateTestPages(),
	}
}

// FetchCommitAuthors implements the Client interface
func (m *MockClient) FetchCommitAuthors(ctx context.Context, owner, repo string, opts FetchOptions) (*CommitPage, error) {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo
	m.Cursors = append(m.Cursors, opts.After)
	m.PageSizes = append(m.PageSizes, opts.PageSize)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", scouterrors.ErrInvalidToken)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", scouterrors.ErrNetworkFailure)
	}

	if m.Error != nil && (m.ErrorOnCall == 0 || m.ErrorOnCall == m.CallCount) {
		return nil, m.Error
	}

	if m.CallCount > len(m.Pages) {
		return &CommitPage{}, nil
	}
	return m.Pages[m.CallCount-1], nil
}

// generateTestPages creates two short pages of commit authors for testing.
// The second page repeats one author and has an unattributed commit.
func generateTestPages() []*CommitPage {
	alice := &Author{Login: "alice", Name: "Alice Doe", Bio: "Senior Technical Writer"}
	bob := &Author{Login: "bob", Name: "Bob Roe", Bio: "Backend engineer"}
	carol := &Author{Login: "carol", Name: "Carol", Bio: ""}

	return []*CommitPage{
		{
			Authors:     []*Author{alice, bob, alice},
			HasNextPage: true,
			EndCursor:   "cursor-1",
		},
		{
			Authors:     []*Author{nil, carol, bob},
			HasNextPage: false,
			EndCursor:   "cursor-2",
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPages sets specific pages to return
func WithPages(pages ...*CommitPage) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithError makes the client return a specific error on every call
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithErrorOnCall makes the client return err on the given 1-based call
func WithErrorOnCall(call int, err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
		m.ErrorOnCall = call
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
