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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/pkg/version"
)

// maxResponseBytes caps a single GraphQL response body.
const maxResponseBytes = 10 * 1024 * 1024

// newHTTPClient assembles the transport chain used by GraphQLClient:
//
//	responseTransport -> oauth2.Transport -> userAgentTransport -> http.Transport
//
// No client timeout is set; callers bound a run through the request context.
func newHTTPClient(token string) *http.Client {
	base := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        2,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	auth := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   &userAgentTransport{base: base},
	}

	return &http.Client{
		Transport: &responseTransport{base: auth},
	}
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// userAgentTransport identifies the tool and applies the response size limit.
type userAgentTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", fmt.Sprintf("sirseer-scout/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseBytes,
		}
	}

	return resp, nil
}

// responseTransport turns responses the GraphQL decoder cannot use into typed
// errors that keep the raw body:
//   - any status other than 200 becomes a TransportError;
//   - a 200 body that is not JSON, has no "data" member, or has a null
//     "data" without GraphQL errors becomes a ProtocolError.
//
// A null "data" accompanied by an "errors" array is passed through so the
// GraphQL library can surface those errors.
type responseTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *responseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &scouterrors.TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if reason := checkEnvelope(body); reason != "" {
		return nil, &scouterrors.ProtocolError{
			Reason: reason,
			Body:   string(body),
		}
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

// checkEnvelope returns a non-empty reason when body is not a usable GraphQL
// response envelope.
func checkEnvelope(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "response is not a JSON object"
	}

	data, ok := envelope["data"]
	if !ok {
		return "response has no data field"
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		if errs, ok := envelope["errors"]; ok && !bytes.Equal(bytes.TrimSpace(errs), []byte("null")) {
			return ""
		}
		return "response data is null"
	}

	return ""
}
