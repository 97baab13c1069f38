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
	"errors"
	"io"

	"github.com/timburks/gomacs/pkg/editor"
	"github.com/timburks/gomacs/pkg/keymap"
	"github.com/timburks/gomacs/pkg/log"
)

// A KeySource produces key tokens such as "a", "C-f" or "KEY_LEFT".
// ReadKey blocks until a key is available.
type KeySource interface {
	ReadKey() (string, error)
}

// A Renderer draws the editor on screen.
type Renderer interface {
	Render(e *editor.Editor)
}

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor   *editor.Editor
	keys     KeySource
	renderer Renderer
}

// NewCommander creates a commander reading keys from keys. It becomes
// the editor's way of reading minibuffer input.
func NewCommander(e *editor.Editor, keys KeySource, renderer Renderer) *Commander {
	c := &Commander{editor: e, keys: keys, renderer: renderer}
	e.SetPrompter(c)
	return c
}

func (c *Commander) render() {
	if c.renderer != nil {
		c.renderer.Render(c.editor)
	}
}

// keymap returns the keymap keys are resolved against: that of the
// buffer being edited, falling back to the global keymap.
func (c *Commander) keymap() *keymap.Keymap {
	if k := c.editor.Current().Keymap(); k != nil {
		return k
	}
	return c.editor.Keymap()
}

// ReadKeychord reads keys until they make up a complete keychord and
// returns the command it is bound to along with the keys read.
func (c *Commander) ReadKeychord() (string, []string, error) {
	var keychord []string
	for {
		key, err := c.keys.ReadKey()
		if err != nil {
			c.editor.SetPending(nil)
			return "", keychord, err
		}
		keychord = append(keychord, key)
		if command, complete := c.keymap().Resolve(keychord); complete {
			c.editor.SetPending(nil)
			return command, keychord, nil
		}
		c.editor.SetPending(keychord)
		c.render()
	}
}

// Step reads one keychord and executes its command. Command failures are
// shown in the echo area; only a failure to read keys is returned.
func (c *Commander) Step() error {
	command, keychord, err := c.ReadKeychord()
	if err != nil {
		return err
	}
	log.Debug(log.CatDispatch, "resolved keychord", "keys", keymap.FormatKeychord(keychord), "command", command)
	c.editor.SetMessage("")
	c.editor.Execute(command, keychord)
	return nil
}

// Run processes keys until the session ends. Running out of keys ends
// the session cleanly.
func (c *Commander) Run() error {
	for !c.editor.Done() {
		c.render()
		if err := c.Step(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// ReadMinibuffer reads a line of input by running commands against the
// minibuffer until it is exited or aborted.
func (c *Commander) ReadMinibuffer(prompt, initial string) (string, error) {
	mb, err := c.editor.OpenMinibuffer(prompt, initial)
	if err != nil {
		return "", err
	}
	defer c.editor.CloseMinibuffer()
	for !mb.Done() && !mb.Aborted() {
		c.render()
		if err := c.Step(); err != nil {
			return "", err
		}
	}
	if mb.Aborted() {
		return "", editor.ErrQuit
	}
	return mb.Buffer.Text(), nil
}
