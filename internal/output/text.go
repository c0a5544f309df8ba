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

package output

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

// TextWriter writes each author as two lines: display name, then login.
// Output is buffered until Close.
type TextWriter struct {
	mu        sync.Mutex
	buf       *bufio.Writer
	count     int
	closeFunc func() error
}

// NewTextWriter creates a text writer on w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		buf: bufio.NewWriter(w),
	}
}

// Write appends author's name and login lines.
func (w *TextWriter) Write(author github.Author) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintf(w.buf, "%s\n%s\n", author.Name, author.Login); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of authors written.
func (w *TextWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes buffered lines and closes the underlying file, if any.
func (w *TextWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	flushErr := w.buf.Flush()
	if w.closeFunc != nil {
		if err := w.closeFunc(); err != nil && flushErr == nil {
			return err
		}
	}
	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	return nil
}
