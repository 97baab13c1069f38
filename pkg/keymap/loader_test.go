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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	doc := `
bindings:
  - keys: C-x C-r
    command: find-file
  - keys: C-SPC
    command: exchange-point-and-mark
`
	k, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []Binding{
		{Keys: []string{"C- "}, Command: "exchange-point-and-mark"},
		{Keys: []string{"C-x", "C-r"}, Command: "find-file"},
	}, k.Flatten())
}

func TestDecodeTOML(t *testing.T) {
	doc := `
[[bindings]]
keys = "C-c g"
command = "gofmt-buffer"
`
	k, err := Decode(strings.NewReader(doc), FormatTOML)
	require.NoError(t, err)
	command, ok := k.Lookup([]string{"C-c", "g"})
	require.True(t, ok)
	assert.Equal(t, "gofmt-buffer", command)
}

func TestDecodeEmptyYAML(t *testing.T) {
	k, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, k.Flatten())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format string
	}{
		{"empty keys", "bindings:\n  - keys: ''\n    command: yank\n", FormatYAML},
		{"empty command", "bindings:\n  - keys: C-y\n", FormatYAML},
		{"bad yaml", "bindings: [", FormatYAML},
		{"bad toml", "[[bindings]\n", FormatTOML},
		{"unknown format", "", "ini"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yml")
	require.NoError(t, os.WriteFile(path, []byte("bindings:\n  - keys: C-z\n    command: undefined\n"), 0644))

	k, err := LoadFile(path)
	require.NoError(t, err)
	command, ok := k.Lookup([]string{"C-z"})
	require.True(t, ok)
	assert.Equal(t, Undefined, command)

	_, err = LoadFile(filepath.Join(dir, "keys.json"))
	assert.Error(t, err)
	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
