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
	"sort"

	"github.com/timburks/gomacs/pkg/keymap"
)

// MaxCount bounds numeric arguments in either direction.
const MaxCount = 1 << 20

func clampCount(n int) int {
	return max(-MaxCount, min(n, MaxCount))
}

// Args are the inputs a command is called with.
type Args struct {
	Keychord []string // keys that invoked the command
	Count    int      // numeric argument, 1 unless a prefix was given
	Raw      bool     // true if the user gave a prefix argument
	Strings  []string // answers for commands that would otherwise prompt
}

// A Command acts on the editor. The returned string is the text the
// command inserted, deleted, or produced, when that is meaningful.
type Command func(e *Editor, args Args) (string, error)

// Register makes cmd callable as name, replacing any command of that name.
func (e *Editor) Register(name string, cmd Command) {
	e.commands[name] = cmd
}

// Lookup returns the command called name.
func (e *Editor) Lookup(name string) (Command, bool) {
	cmd, ok := e.commands[name]
	return cmd, ok
}

// CommandNames returns the names of all commands in sorted order.
func (e *Editor) CommandNames() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadArg returns the i-th answer given in args, or asks the user.
func (e *Editor) ReadArg(args Args, i int, prompt, initial string) (string, error) {
	if i < len(args.Strings) {
		return args.Strings[i], nil
	}
	return e.ReadMinibuffer(prompt, initial)
}

// Call runs the command called name with explicit arguments, leaving
// the prefix argument and the echo area alone. It is used by scripts.
// Counts beyond MaxCount are reduced to it.
func (e *Editor) Call(name string, args Args) (string, error) {
	cmd, ok := e.commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if args.Count == 0 && !args.Raw {
		args.Count = 1
	}
	args.Count = clampCount(args.Count)
	result, err := cmd(e, args)
	e.ensureVisible()
	return result, err
}

func (e *Editor) registerBuiltins() {
	builtins := map[string]Command{
		// inserting and deleting
		"self-insert-command":    SelfInsertCommand,
		"newline":                Newline,
		"indent-for-tab-command": IndentForTabCommand,
		"delete-char":            DeleteChar,
		"delete-backward-char":   DeleteBackwardChar,
		"markov-insert":          MarkovInsert,

		// moving
		"forward-char":           ForwardChar,
		"backward-char":          BackwardChar,
		"forward-word":           ForwardWord,
		"backward-word":          BackwardWord,
		"next-line":              NextLine,
		"previous-line":          PreviousLine,
		"move-beginning-of-line": MoveBeginningOfLine,
		"move-end-of-line":       MoveEndOfLine,
		"beginning-of-buffer":    BeginningOfBuffer,
		"end-of-buffer":          EndOfBuffer,
		"scroll-up-command":      ScrollUpCommand,
		"scroll-down-command":    ScrollDownCommand,

		// the mark and the kill ring
		"set-mark-command":        SetMarkCommand,
		"exchange-point-and-mark": ExchangePointAndMark,
		"kill-line":               KillLine,
		"backward-kill-line":      BackwardKillLine,
		"kill-word":               KillWord,
		"backward-kill-word":      BackwardKillWord,
		"kill-region":             KillRegion,
		"kill-ring-save":          KillRingSave,
		"yank":                    Yank,

		// files and buffers
		"find-file":        FindFile,
		"save-buffer":      SaveBuffer,
		"write-file":       WriteFile,
		"switch-to-buffer": SwitchToBuffer,
		"list-buffers":     ListBuffers,
		"kill-buffer":      KillBufferCommand,
		"next-buffer":      NextBufferCommand,
		"previous-buffer":  PreviousBufferCommand,
		"kill-editor":      KillEditor,
		"gofmt-buffer":     GofmtBuffer,

		// control
		"universal-argument":       UniversalArgument,
		"keyboard-quit":            KeyboardQuit,
		"execute-extended-command": ExecuteExtendedCommand,
		"exit-minibuffer":          ExitMinibuffer,
		keymap.Undefined:           Undefined,
	}
	for name, cmd := range builtins {
		e.Register(name, cmd)
	}
	for alias, name := range aliases {
		e.Register(alias, builtins[name])
	}
}

// Older names some keymap files still use.
var aliases = map[string]string{
	"delete-forward-char": "delete-char",
	"beginning-of-line":   "move-beginning-of-line",
	"end-of-line":         "move-end-of-line",
	"scroll-up":           "scroll-up-command",
	"scroll-down":         "scroll-down-command",
	"set-mark":            "set-mark-command",
	"forward-kill-word":   "kill-word",
}
