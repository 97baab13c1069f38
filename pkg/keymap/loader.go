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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Binding file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// bindingsFile is the document read from a binding file:
//
//	bindings:
//	  - keys: C-x C-r
//	    command: find-file
type bindingsFile struct {
	Bindings []bindingConfig `yaml:"bindings" toml:"bindings"`
}

type bindingConfig struct {
	Keys    string `yaml:"keys" toml:"keys"`
	Command string `yaml:"command" toml:"command"`
}

// FormatForPath picks a binding file format from the file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown keymap format for %s", path)
	}
}

// LoadFile reads a keymap from a YAML or TOML binding file.
func LoadFile(path string) (*Keymap, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads a keymap from r in the given format.
func Decode(r io.Reader, format string) (*Keymap, error) {
	var doc bindingsFile
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("unknown keymap format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	bindings := make([]Binding, 0, len(doc.Bindings))
	for i, b := range doc.Bindings {
		keys := ParseKeychord(b.Keys)
		if len(keys) == 0 {
			return nil, fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Command == "" {
			return nil, fmt.Errorf("binding %d (%s): empty command", i, b.Keys)
		}
		bindings = append(bindings, Binding{Keys: keys, Command: b.Command})
	}
	return Build(bindings), nil
}
