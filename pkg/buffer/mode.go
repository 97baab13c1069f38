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
package buffer

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/timburks/gomacs/pkg/keymap"
)

// A Mode is the editing policy shared by buffers of one kind: what
// separates words, and which bindings it adds to the global keymap.
// Modes are never modified after they are created.
type Mode struct {
	Name           string
	Modemap        *keymap.Keymap
	wordDelimiters []string
	delimiter      *regexp.Regexp
	word           *regexp.Regexp
}

// NewMode creates a mode. Each word delimiter is a regular expression
// fragment valid inside a character class, such as `\s` or `\-`.
func NewMode(name string, wordDelimiters []string, modemap *keymap.Keymap) (*Mode, error) {
	class := strings.Join(wordDelimiters, "")
	delimiter, err := regexp.Compile("[" + class + "]+")
	if err != nil {
		return nil, err
	}
	word, err := regexp.Compile("[^" + class + "]+")
	if err != nil {
		return nil, err
	}
	return &Mode{
		Name:           name,
		Modemap:        modemap,
		wordDelimiters: wordDelimiters,
		delimiter:      delimiter,
		word:           word,
	}, nil
}

func mustMode(name string, wordDelimiters []string) *Mode {
	m, err := NewMode(name, wordDelimiters, nil)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	// Words are separated by whitespace, dashes, and underscores.
	Fundamental = mustMode("Fundamental", []string{`\s`, `\-`, `_`})

	// Go mode also stops words at punctuation, and formats with C-c C-f.
	Go = mustMode("Go", []string{`\s`, `\-`, `_`, `.`, `,`, `;`, `:`, `(`, `)`, `\[`, `\]`, `{`, `}`, `"`, `'`, `*`, `&`}).
		WithModemap(keymap.Build([]keymap.Binding{{Keys: []string{"C-c", "C-f"}, Command: "gofmt-buffer"}}))

	// LinePattern matches the runs of newlines that separate lines.
	LinePattern = regexp.MustCompile(`\n+`)

	// FilenamePattern matches text that looks like a file path.
	FilenamePattern = regexp.MustCompile(`[\w~./-]+`)
)

// WordDelimiters returns the delimiter fragments the mode was built from.
func (m *Mode) WordDelimiters() []string {
	return m.wordDelimiters
}

// WordDelimiterPattern matches the runs of text between words.
func (m *Mode) WordDelimiterPattern() *regexp.Regexp {
	return m.delimiter
}

// WordPattern matches words.
func (m *Mode) WordPattern() *regexp.Regexp {
	return m.word
}

// WithModemap returns a copy of the mode that adds modemap to the global keymap.
func (m *Mode) WithModemap(modemap *keymap.Keymap) *Mode {
	c := *m
	c.Modemap = modemap
	return &c
}

// ModeForPath picks a mode from a file name.
func ModeForPath(path string) *Mode {
	switch filepath.Ext(path) {
	case ".go":
		return Go
	default:
		return Fundamental
	}
}
