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
	"errors"
	"fmt"

	"github.com/timburks/gomacs/pkg/keymap"
)

var (
	// ErrQuit is returned when the user cancels a command with C-g.
	ErrQuit = errors.New("quit")

	// ErrNoPrompter is returned by commands that need to ask for input
	// when the editor has no way to read it, such as in batch mode.
	ErrNoPrompter = errors.New("no minibuffer available")

	// ErrRecursiveMinibuffer is returned when a command run from the
	// minibuffer tries to open another one.
	ErrRecursiveMinibuffer = errors.New("command attempted to use minibuffer while in minibuffer")

	// ErrUnknownCommand is returned when executing a name with no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// UndefinedError reports a keychord with no binding.
type UndefinedError struct {
	Keychord []string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("%s is undefined", keymap.FormatKeychord(e.Keychord))
}
