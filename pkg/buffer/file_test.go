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
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gettysburg = "Four score and seven years ago our fathers brought forth on this\n" +
	"continent a new nation, conceived in liberty and dedicated to the\n" +
	"proposition that all men are created equal.\n"

// read and write a file without changing it
func TestRevertSaveInvariance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gettysburg.txt")
	require.NoError(t, os.WriteFile(path, []byte(gettysburg), 0644))

	b := New("gettysburg.txt", WithPath(path))
	require.NoError(t, b.Revert())
	assert.Equal(t, gettysburg, b.Text())
	assert.False(t, b.Modified())

	copyPath := filepath.Join(dir, "copy.txt")
	require.NoError(t, b.WriteFile(copyPath))
	assert.Equal(t, "copy.txt", b.Name())
	assert.Equal(t, copyPath, b.Path())

	written, err := os.ReadFile(copyPath)
	require.NoError(t, err)
	assert.Equal(t, gettysburg, string(written))
}

func TestSaveClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	b := New("notes.txt", WithPath(path))
	_, err := b.Insert("hello")
	require.NoError(t, err)
	assert.True(t, b.Modified())

	require.NoError(t, b.Save())
	assert.False(t, b.Modified())
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(written))
}

func TestRevertMissingFile(t *testing.T) {
	b := New("new.txt", WithPath(filepath.Join(t.TempDir(), "new.txt")), WithText("stale"))
	err := b.Revert()
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "", b.Text())
}

func TestSaveWithoutPath(t *testing.T) {
	b := New("*scratch*")
	assert.ErrorIs(t, b.Save(), ErrNoPath)
	assert.ErrorIs(t, b.Revert(), ErrNoPath)
}

func TestModeForPath(t *testing.T) {
	assert.Same(t, Go, ModeForPath("main.go"))
	assert.Same(t, Fundamental, ModeForPath("README"))
	assert.Same(t, Go, New("x", WithPath("pkg/x.go")).Mode())
	assert.Same(t, Fundamental, New("x", WithMode(Fundamental), WithPath("pkg/x.go")).Mode())
}

func TestNewMode(t *testing.T) {
	m, err := NewMode("Comma", []string{`,`}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{`,`}, m.WordDelimiters())
	assert.True(t, m.WordDelimiterPattern().MatchString(",,"))
	assert.False(t, m.WordPattern().MatchString(","))

	_, err = NewMode("Broken", []string{`\`}, nil)
	assert.Error(t, err)
}

func TestGoModemap(t *testing.T) {
	command, ok := Go.Modemap.Lookup([]string{"C-c", "C-f"})
	require.True(t, ok)
	assert.Equal(t, "gofmt-buffer", command)
	assert.Nil(t, Fundamental.Modemap)
}
