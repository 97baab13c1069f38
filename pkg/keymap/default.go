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

// printable is every key that inserts itself.
const printable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" "

var defaultBindings = []struct {
	keys    []string
	command string
}{
	{[]string{"C-j"}, "newline"},
	{[]string{"RET"}, "newline"},
	{[]string{"C-i"}, "indent-for-tab-command"},
	{[]string{"TAB"}, "indent-for-tab-command"},
	{[]string{"DEL"}, "delete-backward-char"},
	{[]string{"KEY_DC"}, "delete-char"},
	{[]string{"C-d"}, "delete-char"},
	{[]string{"C-f"}, "forward-char"},
	{[]string{"KEY_RIGHT"}, "forward-char"},
	{[]string{"M-f"}, "forward-word"},
	{[]string{"C-b"}, "backward-char"},
	{[]string{"KEY_LEFT"}, "backward-char"},
	{[]string{"M-b"}, "backward-word"},
	{[]string{"C-n"}, "next-line"},
	{[]string{"KEY_DOWN"}, "next-line"},
	{[]string{"C-p"}, "previous-line"},
	{[]string{"KEY_UP"}, "previous-line"},
	{[]string{"C-a"}, "move-beginning-of-line"},
	{[]string{"KEY_HOME"}, "move-beginning-of-line"},
	{[]string{"C-e"}, "move-end-of-line"},
	{[]string{"KEY_END"}, "move-end-of-line"},
	{[]string{"M-<"}, "beginning-of-buffer"},
	{[]string{"M->"}, "end-of-buffer"},
	{[]string{"C-v"}, "scroll-up-command"},
	{[]string{"KEY_NPAGE"}, "scroll-up-command"},
	{[]string{"M-v"}, "scroll-down-command"},
	{[]string{"KEY_PPAGE"}, "scroll-down-command"},
	{[]string{"C-k"}, "kill-line"},
	{[]string{"C-y"}, "yank"},
	{[]string{"C- "}, "set-mark-command"},
	{[]string{"C-w"}, "kill-region"},
	{[]string{"M-w"}, "kill-ring-save"},
	{[]string{"M-DEL"}, "backward-kill-word"},
	{[]string{"M-d"}, "kill-word"},
	{[]string{"C-g"}, "keyboard-quit"},
	{[]string{"C-u"}, "universal-argument"},
	{[]string{"M-x"}, "execute-extended-command"},
	{[]string{"M-:"}, "eval-expression"},
	{[]string{"C-x", "C-f"}, "find-file"},
	{[]string{"C-x", "C-s"}, "save-buffer"},
	{[]string{"C-x", "C-w"}, "write-file"},
	{[]string{"C-x", "b"}, "switch-to-buffer"},
	{[]string{"C-x", "C-b"}, "list-buffers"},
	{[]string{"C-x", "k"}, "kill-buffer"},
	{[]string{"C-x", "KEY_RIGHT"}, "next-buffer"},
	{[]string{"C-x", "KEY_LEFT"}, "previous-buffer"},
	{[]string{"C-x", "C-c"}, "kill-editor"},
	{[]string{"C-x", "C-x"}, "exchange-point-and-mark"},
	{[]string{"C-c", "m"}, "markov-insert"},
}

// Default returns the global keymap gomacs starts with.
func Default() *Keymap {
	bindings := make([]Binding, 0, len(printable)+len(defaultBindings))
	for _, c := range printable {
		bindings = append(bindings, Binding{Keys: []string{string(c)}, Command: "self-insert-command"})
	}
	for _, b := range defaultBindings {
		bindings = append(bindings, Binding{Keys: b.keys, Command: b.command})
	}
	return Build(bindings)
}
