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
	"fmt"
	"io"
	"os"

	"github.com/sirseerhq/sirseer-scout/internal/github"
)

// Supported output formats.
const (
	FormatText   = "text"
	FormatNDJSON = "ndjson"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// OutputWriter defines the interface for writing matched authors.
type OutputWriter interface {
	// Write writes a single author to the output.
	Write(author github.Author) error

	// Count returns the number of authors written so far.
	Count() int

	// Close flushes buffered data and closes the underlying file, if any.
	// This should be called when all writing is complete.
	Close() error
}

// New returns a writer for format that writes to path, or to stdout when
// path is StdoutPath. The file is created or truncated.
func New(format, path string, stdout io.Writer) (OutputWriter, error) {
	var (
		w         io.Writer = stdout
		closeFunc func() error
	)
	if path != StdoutPath {
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		w = file
		closeFunc = file.Close
	}

	switch format {
	case FormatText, "":
		tw := NewTextWriter(w)
		tw.closeFunc = closeFunc
		return tw, nil
	case FormatNDJSON:
		nw := NewWriter(w)
		nw.closeFunc = closeFunc
		return nw, nil
	default:
		if closeFunc != nil {
			_ = closeFunc()
		}
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatNDJSON)
	}
}
