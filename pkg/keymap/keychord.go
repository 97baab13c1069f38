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
package keymap

import (
	"strings"
)

// ParseKeychord splits a written keychord such as "C-x C-f" into key
// tokens. Since tokens are separated by spaces, the space key is written
// SPC, so "C-SPC" is the token "C- ".
func ParseKeychord(s string) []string {
	fields := strings.Fields(s)
	keys := make([]string, len(fields))
	for i, field := range fields {
		keys[i] = parseToken(field)
	}
	return keys
}

func parseToken(field string) string {
	if strings.HasSuffix(field, "SPC") {
		return strings.TrimSuffix(field, "SPC") + " "
	}
	return field
}

// FormatKeychord writes keys the way ParseKeychord reads them.
func FormatKeychord(keys []string) string {
	fields := make([]string, len(keys))
	for i, key := range keys {
		if strings.HasSuffix(key, " ") {
			key = strings.TrimSuffix(key, " ") + "SPC"
		}
		fields[i] = key
	}
	return strings.Join(fields, " ")
}
