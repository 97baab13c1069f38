//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package killring holds text removed by kill commands so that it can be
// yanked back. Unlike a clipboard it keeps every kill, most recent last.
package killring

import (
	"errors"
)

// ErrEmpty is returned when yanking from an empty ring.
var ErrEmpty = errors.New("kill ring is empty")

type Ring struct {
	entries []string
}

func New() *Ring {
	return &Ring{entries: make([]string, 0)}
}

// Append pushes text onto the ring. Empty kills are not recorded.
func (r *Ring) Append(text string) {
	if text == "" {
		return
	}
	r.entries = append(r.entries, text)
}

// Yank returns the k-th most recent kill, where 1 is the latest.
// A k outside the ring yanks the latest kill.
func (r *Ring) Yank(k int) (string, error) {
	if len(r.entries) == 0 {
		return "", ErrEmpty
	}
	if k < 1 || k > len(r.entries) {
		k = 1
	}
	return r.entries[len(r.entries)-k], nil
}

func (r *Ring) Len() int {
	return len(r.entries)
}

// Entries returns the kills, oldest first.
func (r *Ring) Entries() []string {
	return append([]string(nil), r.entries...)
}
