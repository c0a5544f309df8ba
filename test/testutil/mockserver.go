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

// Package testutil provides common test helpers for sirseer-scout
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// GraphQLRequest is the decoded body of a GraphQL POST.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server
	RequestCount int32

	mu       sync.Mutex
	requests []GraphQLRequest
}

// NewMockServer creates a basic mock server that responds to GraphQL requests
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&m.RequestCount, 1)
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// NewHistoryServer serves the given responses in order, one per request.
// Requests beyond the last response receive the last response again.
// Every decoded request is recorded and available through Requests.
func NewHistoryServer(t *testing.T, responses ...map[string]interface{}) *MockServer {
	t.Helper()
	if len(responses) == 0 {
		responses = []map[string]interface{}{GenerateHistoryResponse(1, 3, false)}
	}

	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&m.RequestCount, 1)

		var req GraphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		m.requests = append(m.requests, req)
		m.mu.Unlock()

		idx := int(count) - 1
		if idx >= len(responses) {
			idx = len(responses) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(responses[idx])
	}))
	t.Cleanup(m.Close)
	return m
}

// NewErrorServer creates a mock server that returns a specific status code
// with the given body on every request.
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	})
}

// Endpoint returns the GraphQL endpoint URL of the server.
func (m *MockServer) Endpoint() string {
	return m.URL + "/graphql"
}

// Requests returns a copy of the decoded requests received so far.
func (m *MockServer) Requests() []GraphQLRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GraphQLRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Cursors returns the "after" variable of each recorded request. A request
// sent without a cursor is reported as the empty string.
func (m *MockServer) Cursors() []string {
	reqs := m.Requests()
	cursors := make([]string, 0, len(reqs))
	for _, req := range reqs {
		after, _ := req.Variables["after"].(string)
		cursors = append(cursors, after)
	}
	return cursors
}

// Requested returns the number of requests served.
func (m *MockServer) Requested() int {
	return int(atomic.LoadInt32(&m.RequestCount))
}

// AssertGraphQLRequest validates a GraphQL request structure
func AssertGraphQLRequest(t *testing.T, r *http.Request) {
	t.Helper()
	if r.URL.Path != "/graphql" {
		t.Errorf("Unexpected path: %s", r.URL.Path)
	}
	if r.Method != "POST" {
		t.Errorf("Expected POST method, got: %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got: %s", ct)
	}
}
