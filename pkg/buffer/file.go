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
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoPath is returned when saving a buffer that is not visiting a file.
var ErrNoPath = errors.New("buffer is not visiting a file")

// Revert replaces the text with the contents of the visited file.
// If the file does not exist the buffer is emptied and the error
// satisfies errors.Is(err, fs.ErrNotExist).
func (b *Buffer) Revert() error {
	if b.path == "" {
		return ErrNoPath
	}
	bytes, err := os.ReadFile(b.path)
	if err != nil {
		b.Load("")
		return fmt.Errorf("reading %s: %w", b.path, err)
	}
	b.Load(string(bytes))
	return nil
}

// Save writes the text to the visited file.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(b.path, []byte(string(b.text)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", b.path, err)
	}
	b.modified = false
	return nil
}

// WriteFile makes path the visited file, renames the buffer after it,
// and saves.
func (b *Buffer) WriteFile(path string) error {
	b.path = path
	b.name = filepath.Base(path)
	return b.Save()
}
