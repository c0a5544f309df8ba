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

// Package output writes the authors selected by a scan.
//
// Two formats are supported:
//   - text: two lines per author, the display name followed by the login
//   - ndjson: one JSON object per author with login, name and bio
//
// Example usage:
//
//	w, err := output.New(output.FormatText, "contributors.txt", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for _, author := range matches {
//	    if err := w.Write(author); err != nil {
//	        return err
//	    }
//	}
package output
