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

package giterror

import (
	"errors"
	"net/http"
	"strings"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
)

// Inspector provides methods to classify errors from the GitHub API.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a missing repository.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// GitHubErrorInspector implements Inspector. When the error chain holds a
// TransportError the status code decides; otherwise the error text is matched
// against the messages GitHub and net/http are known to produce.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHubErrorInspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

var (
	authMarkers      = []string{"unauthorized", "bad credentials", "requires authentication", "authentication"}
	notFoundMarkers  = []string{"could not resolve to a repository", "not found"}
	rateLimitMarkers = []string{"rate limit", "secondary rate"}
	networkMarkers   = []string{
		"connection refused",
		"connection reset",
		"no such host",
		"timeout",
		"temporary failure",
		"dial tcp",
		"tls handshake",
		"network is unreachable",
	}
)

// IsAuthError checks if the error is an authentication or authorization error.
// A 403 that is really a rate limit is not reported as an auth error.
func (i *GitHubErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if te, ok := transportError(err); ok {
		switch te.StatusCode {
		case http.StatusUnauthorized:
			return true
		case http.StatusForbidden:
			return !containsAny(te.Body, rateLimitMarkers)
		}
		return false
	}
	return containsAny(err.Error(), authMarkers)
}

// IsNotFoundError checks if the error is a not found error.
func (i *GitHubErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if te, ok := transportError(err); ok {
		return te.StatusCode == http.StatusNotFound
	}
	return containsAny(err.Error(), notFoundMarkers)
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *GitHubErrorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if te, ok := transportError(err); ok {
		if te.StatusCode == http.StatusTooManyRequests {
			return true
		}
		return te.StatusCode == http.StatusForbidden && containsAny(te.Body, rateLimitMarkers)
	}
	return containsAny(err.Error(), rateLimitMarkers)
}

// IsNetworkError checks if the error is a network connectivity error.
// Errors that reached the server and came back with a body are never network errors.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, scouterrors.ErrTransport) || errors.Is(err, scouterrors.ErrProtocol) {
		return false
	}
	return containsAny(err.Error(), networkMarkers)
}

func transportError(err error) (*scouterrors.TransportError, bool) {
	var te *scouterrors.TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func containsAny(s string, markers []string) bool {
	s = strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
