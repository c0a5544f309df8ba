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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidToken indicates GitHub authentication failed.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrRepoNotFound indicates the specified repository does not exist or is not accessible.
	// Maps to exit code 2.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrTransport indicates the API answered with a non-200 status.
	// Maps to exit code 4.
	ErrTransport = errors.New("unexpected api response status")

	// ErrProtocol indicates a 200 response whose body is not a usable GraphQL payload.
	// Maps to exit code 5.
	ErrProtocol = errors.New("malformed api response")
)

// TransportError carries the status and raw body of a non-200 API response.
type TransportError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error fetching data: status %s: %s", e.Status, e.Body)
}

// Unwrap lets errors.Is match ErrTransport.
func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// ProtocolError carries the raw body of a successful response that lacked
// the expected top-level data field or could not be decoded.
type ProtocolError struct {
	Reason string
	Body   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("error fetching data: %s: %s", e.Reason, e.Body)
}

// Unwrap lets errors.Is match ErrProtocol.
func (e *ProtocolError) Unwrap() error {
	return ErrProtocol
}
