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
package commander

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/editor"
)

// keys is a KeySource that replays a fixed list of tokens.
type keys struct {
	tokens []string
}

func (k *keys) ReadKey() (string, error) {
	if len(k.tokens) == 0 {
		return "", io.EOF
	}
	token := k.tokens[0]
	k.tokens = k.tokens[1:]
	return token, nil
}

// typed returns the tokens for typing s.
func typed(s string) []string {
	tokens := make([]string, 0, len(s))
	for _, c := range s {
		tokens = append(tokens, string(c))
	}
	return tokens
}

// recorder remembers the messages, minibuffer contents and pending keys
// shown at each render.
type recorder struct {
	echoes []string
}

func (r *recorder) Render(e *editor.Editor) {
	if msg := e.Message(); msg != "" {
		r.echoes = append(r.echoes, msg)
	}
	if mb := e.Minibuffer(); mb != nil {
		r.echoes = append(r.echoes, mb.Prompt+mb.Buffer.Text())
	}
	if pending := e.Pending(); len(pending) > 0 {
		r.echoes = append(r.echoes, pending[0]+"-")
	}
}

func setup(t *testing.T, text string, tokens ...string) (*editor.Editor, *buffer.Buffer, *Commander, *recorder) {
	t.Helper()
	e := editor.NewEditor()
	b := e.CreateBuffer("test", buffer.WithText(text))
	r := &recorder{}
	c := NewCommander(e, &keys{tokens: tokens}, r)
	return e, b, c, r
}

func TestRunInsertsAndQuits(t *testing.T) {
	e, b, c, _ := setup(t, "", "h", "i", "C-x", "C-c", "x")
	require.NoError(t, c.Run())
	assert.True(t, e.Done())
	assert.Equal(t, "hi", b.Text())
}

func TestRunEndsAtEndOfInput(t *testing.T) {
	e, b, c, _ := setup(t, "abc", "C-e", "d")
	require.NoError(t, c.Run())
	assert.False(t, e.Done())
	assert.Equal(t, "abcd", b.Text())
}

func TestReadKeychord(t *testing.T) {
	e, _, c, r := setup(t, "", "C-x", "C-f")
	command, keychord, err := c.ReadKeychord()
	require.NoError(t, err)
	assert.Equal(t, "find-file", command)
	assert.Equal(t, []string{"C-x", "C-f"}, keychord)
	assert.Equal(t, []string{"C-x-"}, r.echoes)
	assert.Empty(t, e.Pending())
}

func TestReadKeychordUsesBufferKeymap(t *testing.T) {
	e, _, c, _ := setup(t, "", "C-c", "C-f")
	e.CreateBuffer("main.go", buffer.WithMode(buffer.Go))
	command, _, err := c.ReadKeychord()
	require.NoError(t, err)
	assert.Equal(t, "gofmt-buffer", command)
}

func TestUndefinedKeychord(t *testing.T) {
	e, b, c, _ := setup(t, "abc", "C-x", "q")
	require.NoError(t, c.Run())
	assert.Equal(t, "C-x q is undefined", e.Message())
	assert.Equal(t, "abc", b.Text())
}

func TestStepClearsMessage(t *testing.T) {
	e, _, c, _ := setup(t, "", "C-y", "a")
	require.NoError(t, c.Step())
	assert.Equal(t, "Kill ring is empty", e.Message())
	require.NoError(t, c.Step())
	assert.Equal(t, "", e.Message())
}

func TestFindFileThroughMinibuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("remember"), 0644))

	tokens := append([]string{"C-x", "C-f"}, typed(path)...)
	tokens = append(tokens, "RET", "C-e", "!")
	e, _, c, r := setup(t, "", tokens...)
	require.NoError(t, c.Run())

	b := e.ActiveBuffer()
	assert.Equal(t, "notes.txt", b.Name())
	assert.Equal(t, "remember!", b.Text())
	assert.Nil(t, e.Minibuffer())
	assert.Contains(t, r.echoes, "Find file: "+path)
}

func TestMinibufferEditing(t *testing.T) {
	tokens := []string{"C-x", "b", "n", "o", "p", "e", "DEL", "DEL", "t", "e", "s", "C-a", "C-d", "RET"}
	e, _, c, _ := setup(t, "", tokens...)
	require.NoError(t, c.Run())
	assert.Equal(t, "otes", e.ActiveBuffer().Name())
}

func TestQuitMinibuffer(t *testing.T) {
	e, _, c, _ := setup(t, "", "C-x", "C-f", "a", "C-g", "b")
	require.NoError(t, c.Run())
	assert.Equal(t, "b", e.ActiveBuffer().Text())
	assert.Len(t, e.Buffers(), 1)
	assert.Nil(t, e.Minibuffer())
}

func TestMinibufferRefusesBufferCommands(t *testing.T) {
	e, _, c, r := setup(t, "", "M-x", "C-x", "b", "RET")
	require.NoError(t, c.Run())
	assert.Contains(t, r.echoes, "C-x b is undefined")
	assert.Len(t, e.Buffers(), 1)
}

func TestExtendedCommandThroughMinibuffer(t *testing.T) {
	tokens := append([]string{"M-x"}, typed("end-of-buffer")...)
	tokens = append(tokens, "RET")
	_, b, c, _ := setup(t, "one two", tokens...)
	require.NoError(t, c.Run())
	assert.Equal(t, 7, b.Point())
}

func TestInputEndsInsideMinibuffer(t *testing.T) {
	e, _, c, _ := setup(t, "", "C-x", "C-f", "a")
	require.NoError(t, c.Run())
	assert.Nil(t, e.Minibuffer())
}
