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
package editor

import (
	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/keymap"
)

// minibufferModemap finishes input with RET or C-j.
var minibufferModemap = keymap.Build([]keymap.Binding{
	{Keys: []string{"RET"}, Command: "exit-minibuffer"},
	{Keys: []string{"C-j"}, Command: "exit-minibuffer"},
	{Keys: []string{"C-g"}, Command: "keyboard-quit"},
})

// Commands that make no sense while typing into the minibuffer.
var minibufferExcluded = map[string]bool{
	"find-file":                true,
	"save-buffer":              true,
	"write-file":               true,
	"switch-to-buffer":         true,
	"list-buffers":             true,
	"kill-buffer":              true,
	"next-buffer":              true,
	"previous-buffer":          true,
	"kill-editor":              true,
	"execute-extended-command": true,
	"eval-expression":          true,
	"markov-insert":            true,
	"gofmt-buffer":             true,
	"scroll-up-command":        true,
	"scroll-down-command":      true,
	"scroll-up":                true,
	"scroll-down":              true,
}

// A Minibuffer is the one-line buffer used to read input from the user.
type Minibuffer struct {
	Buffer  *buffer.Buffer
	Prompt  string
	done    bool
	aborted bool
}

// Done reports whether the user has finished typing.
func (m *Minibuffer) Done() bool {
	return m.done
}

// Aborted reports whether the user cancelled the input.
func (m *Minibuffer) Aborted() bool {
	return m.aborted
}

// Minibuffer returns the minibuffer being read, or nil.
func (e *Editor) Minibuffer() *Minibuffer {
	return e.minibuffer
}

// MinibufferKeymap returns the keymap used in the minibuffer: the global
// keymap with buffer and session commands unbound.
func (e *Editor) MinibufferKeymap() *keymap.Keymap {
	restricted := keymap.ReplaceLeaves(e.keymap, func(command string) bool {
		return minibufferExcluded[command]
	}, keymap.Undefined)
	return keymap.Merge(restricted, minibufferModemap)
}

// OpenMinibuffer starts reading input. Until CloseMinibuffer is called,
// commands edit the minibuffer instead of the active buffer.
func (e *Editor) OpenMinibuffer(prompt, initial string) (*Minibuffer, error) {
	if e.minibuffer != nil {
		return nil, ErrRecursiveMinibuffer
	}
	mode := e.fundamental.WithModemap(minibufferModemap)
	mode.Name = "Minibuffer"
	b := buffer.New("*minibuffer*", buffer.WithMode(mode), buffer.WithText(initial), buffer.WithKeymap(e.MinibufferKeymap()))
	b.SetPoint(b.Len())
	e.minibuffer = &Minibuffer{Buffer: b, Prompt: prompt}
	return e.minibuffer, nil
}

// CloseMinibuffer stops reading input.
func (e *Editor) CloseMinibuffer() {
	e.minibuffer = nil
}
