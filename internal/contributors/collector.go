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

package contributors

import "github.com/sirseerhq/sirseer-scout/internal/github"

// collector is an insertion-ordered set of authors. Author is a comparable
// struct, so the map key is the full login/name/bio triple.
type collector struct {
	authors []github.Author
	seen    map[github.Author]struct{}
}

func newCollector() *collector {
	return &collector{
		seen: make(map[github.Author]struct{}),
	}
}

// add appends a unless an equal author is already present and reports
// whether it was appended.
func (c *collector) add(a github.Author) bool {
	if _, ok := c.seen[a]; ok {
		return false
	}
	c.seen[a] = struct{}{}
	c.authors = append(c.authors, a)
	return true
}
