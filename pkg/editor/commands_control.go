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
	"fmt"
)

// UniversalArgument begins or extends a numeric prefix argument. The
// first C-u gives 4 and each further one multiplies by 4; digits typed
// afterwards replace it.
func UniversalArgument(e *Editor, args Args) (string, error) {
	if e.hasPrefix {
		e.prefix = min(e.prefix*4, MaxCount)
	} else {
		e.prefix = 4
		e.hasPrefix = true
	}
	e.digitPrefix = true
	e.typedDigit = false
	e.keepPrefix = true
	return "", nil
}

// KeyboardQuit cancels the prefix argument and any input being read.
func KeyboardQuit(e *Editor, args Args) (string, error) {
	if e.minibuffer != nil {
		e.minibuffer.aborted = true
	}
	return "", ErrQuit
}

// ExecuteExtendedCommand reads a command name and runs it with the
// current prefix argument.
func ExecuteExtendedCommand(e *Editor, args Args) (string, error) {
	name, err := e.ReadArg(args, 0, "M-x ", "")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", nil
	}
	cmd, ok := e.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	rest := args
	rest.Strings = nil
	if len(args.Strings) > 1 {
		rest.Strings = args.Strings[1:]
	}
	return cmd(e, rest)
}

// ExitMinibuffer finishes reading input.
func ExitMinibuffer(e *Editor, args Args) (string, error) {
	if e.minibuffer == nil {
		return "", nil
	}
	e.minibuffer.done = true
	return e.minibuffer.Buffer.Text(), nil
}

// Undefined reports a keychord with no binding.
func Undefined(e *Editor, args Args) (string, error) {
	return "", &UndefinedError{Keychord: args.Keychord}
}
