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
package screen

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/editor"
	"github.com/timburks/gomacs/pkg/keymap"
)

// A cell is one character placed on screen.
type cell struct {
	x, y int
	ch   rune
}

// layout places the text of b on a width x rows grid, starting with the
// buffer's display line. Lines longer than the screen are cut off. It
// returns the cells and the screen position of point, or -1, -1 if
// point is off screen.
func layout(b *buffer.Buffer, width, rows, tabWidth int) ([]cell, int, int) {
	var cells []cell
	cursorX, cursorY := -1, -1
	text := []rune(b.Text())
	point := b.Point()
	x, y := 0, 0
	for offset := b.LineOffset(b.DisplayLine()); offset <= len(text) && y < rows; offset++ {
		if offset == point {
			cursorX, cursorY = min(x, width-1), y
		}
		if offset == len(text) {
			break
		}
		ch := text[offset]
		switch {
		case ch == '\n':
			x, y = 0, y+1
		case ch == '\t':
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next; x++ {
				if x < width {
					cells = append(cells, cell{x, y, ' '})
				}
			}
		default:
			w := runewidth.RuneWidth(ch)
			if x+w <= width {
				cells = append(cells, cell{x, y, ch})
			}
			x += w
		}
	}
	return cells, cursorX, cursorY
}

// ModeLine describes the active buffer: its state, name, mode and the
// position of point.
func ModeLine(b *buffer.Buffer, width int) string {
	state := "--"
	switch {
	case b.ReadOnly():
		state = "%%"
	case b.Modified():
		state = "**"
	}
	line := fmt.Sprintf("-%s- %-20s (%s) L%d C%d ", state, b.Name(), b.Mode().Name, b.Line(), b.Column())
	if pad := width - runewidth.StringWidth(line); pad > 0 {
		line += strings.Repeat("-", pad)
	}
	return runewidth.Truncate(line, width, "")
}

// EchoLine is the bottom line of the screen: the minibuffer while input
// is being read, the keys of an unfinished keychord, or the last message.
func EchoLine(e *editor.Editor) string {
	if mb := e.Minibuffer(); mb != nil {
		return mb.Prompt + mb.Buffer.Text()
	}
	if pending := e.Pending(); len(pending) > 0 {
		return keymap.FormatKeychord(pending) + "-"
	}
	return e.Message()
}
