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
	"errors"
	"testing"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// Compile-time check that MockClient implements Client
var _ Client = (*MockClient)(nil)

func TestMockClient_FetchCommitAuthors(t *testing.T) {
	ctx := context.Background()

	t.Run("serves pages in order", func(t *testing.T) {
		mock := NewMockClient()

		first, err := mock.FetchCommitAuthors(ctx, "test", "repo", FetchOptions{PageSize: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.HasNextPage || first.EndCursor != "cursor-1" {
			t.Errorf("first page = %+v, want HasNextPage with cursor-1", first)
		}

		second, err := mock.FetchCommitAuthors(ctx, "test", "repo", FetchOptions{PageSize: 100, After: first.EndCursor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.HasNextPage {
			t.Error("expected last page")
		}

		if mock.CallCount != 2 {
			t.Errorf("expected 2 calls, got %d", mock.CallCount)
		}
		if len(mock.Cursors) != 2 || mock.Cursors[0] != "" || mock.Cursors[1] != "cursor-1" {
			t.Errorf("cursors = %q, want [\"\" \"cursor-1\"]", mock.Cursors)
		}
		if mock.LastOwner != "test" || mock.LastRepo != "repo" {
			t.Errorf("last target = %s/%s, want test/repo", mock.LastOwner, mock.LastRepo)
		}
	})

	t.Run("simulates auth failure", func(t *testing.T) {
		mock := NewMockClientWithOptions(WithAuthFailure())

		_, err := mock.FetchCommitAuthors(ctx, "test", "repo", FetchOptions{})
		if !errors.Is(err, scouterrors.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("fails only on the selected call", func(t *testing.T) {
		boom := errors.New("boom")
		mock := NewMockClientWithOptions(WithErrorOnCall(2, boom))

		if _, err := mock.FetchCommitAuthors(ctx, "test", "repo", FetchOptions{}); err != nil {
			t.Fatalf("first call failed: %v", err)
		}
		if _, err := mock.FetchCommitAuthors(ctx, "test", "repo", FetchOptions{}); !errors.Is(err, boom) {
			t.Errorf("second call error = %v, want boom", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewMockClient().FetchCommitAuthors(cctx, "test", "repo", FetchOptions{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
