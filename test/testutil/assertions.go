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

package testutil

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// AssertTextOutput validates a contributors file in the text format: a name
// line followed by a login line for each author, in the given order.
func AssertTextOutput(t *testing.T, filePath string, logins ...string) {
	t.Helper()

	lines := ReadLines(t, filePath)
	if len(lines) != 2*len(logins) {
		t.Fatalf("Expected %d lines for %d authors, got %d: %q", 2*len(logins), len(logins), len(lines), lines)
	}
	for i, login := range logins {
		if got := lines[2*i+1]; got != login {
			t.Errorf("Author %d: login line = %q, want %q", i+1, got, login)
		}
	}
}

// AssertNDJSONOutput validates that a file contains valid NDJSON with the
// expected number of authors
func AssertNDJSONOutput(t *testing.T, filePath string, expectedCount int) {
	t.Helper()

	file, err := os.Open(filePath)
	if err != nil {
		t.Fatalf("Failed to open output file: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	count := 0

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var author map[string]interface{}
		if err := json.Unmarshal([]byte(line), &author); err != nil {
			t.Errorf("Line %d: invalid JSON: %v", count+1, err)
			continue
		}

		for _, field := range []string{"login", "name", "bio"} {
			if _, ok := author[field]; !ok {
				t.Errorf("Line %d: missing required field '%s'", count+1, field)
			}
		}

		count++
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("Error reading file: %v", err)
	}

	if count != expectedCount {
		t.Errorf("Expected %d authors, got %d", expectedCount, count)
	}
}

// AssertContainsString checks if a string contains a substring
func AssertContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected string to contain %q, but it didn't.\nString: %s", needle, haystack)
	}
}

// AssertNotContainsString checks if a string does not contain a substring
func AssertNotContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Errorf("Expected string to not contain %q, but it did.\nString: %s", needle, haystack)
	}
}
