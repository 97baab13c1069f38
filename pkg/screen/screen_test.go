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
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/editor"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		want string
	}{
		{"letter", termbox.Event{Type: termbox.EventKey, Ch: 'a'}, "a"},
		{"unicode", termbox.Event{Type: termbox.EventKey, Ch: 'é'}, "é"},
		{"space", termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, " "},
		{"control", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlF}, "C-f"},
		{"control x", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlX}, "C-x"},
		{"control space", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlSpace}, "C- "},
		{"backspace", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace2}, "DEL"},
		{"enter", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, "RET"},
		{"tab", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyTab}, "TAB"},
		{"escape", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, "ESC"},
		{"arrow", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, "KEY_LEFT"},
		{"page down", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyPgdn}, "KEY_NPAGE"},
		{"delete", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyDelete}, "KEY_DC"},
		{"meta letter", termbox.Event{Type: termbox.EventKey, Mod: termbox.ModAlt, Ch: 'f'}, "M-f"},
		{"meta less", termbox.Event{Type: termbox.EventKey, Mod: termbox.ModAlt, Ch: '<'}, "M-<"},
		{"meta backspace", termbox.Event{Type: termbox.EventKey, Mod: termbox.ModAlt, Key: termbox.KeyBackspace2}, "M-DEL"},
		{"resize", termbox.Event{Type: termbox.EventResize}, ""},
		{"mouse", termbox.Event{Type: termbox.EventKey, Key: termbox.MouseLeft}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Token(tt.ev))
		})
	}
}

// grid renders cells into rows of text for comparison.
func grid(cells []cell, width, rows int) []string {
	lines := make([][]rune, rows)
	for i := range lines {
		lines[i] = []rune{}
	}
	for _, c := range cells {
		for len(lines[c.y]) <= c.x {
			lines[c.y] = append(lines[c.y], ' ')
		}
		lines[c.y][c.x] = c.ch
	}
	out := make([]string, rows)
	for i, l := range lines {
		out[i] = string(l)
	}
	return out
}

func TestLayout(t *testing.T) {
	b := buffer.New("t", buffer.WithText("ab\n\tc\nline three is long\nfour"))
	b.SetPoint(5)

	cells, x, y := layout(b, 10, 3, 4)
	assert.Equal(t, []string{"ab", "    c", "line three"}, grid(cells, 10, 3))
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, y)
}

func TestLayoutFromDisplayLine(t *testing.T) {
	b := buffer.New("t", buffer.WithText("1\n2\n3\n4"))
	b.ScrollBy(2)
	b.SetPoint(b.Len())

	cells, x, y := layout(b, 10, 2, 8)
	assert.Equal(t, []string{"3", "4"}, grid(cells, 10, 2))
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	b.SetPoint(0)
	_, x, y = layout(b, 10, 2, 8)
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)
}

func TestLayoutWideRunes(t *testing.T) {
	b := buffer.New("t", buffer.WithText("日本x"))
	b.SetPoint(2)
	cells, x, _ := layout(b, 10, 1, 8)
	assert.Equal(t, 4, x)
	require.Len(t, cells, 3)
	assert.Equal(t, 2, cells[1].x)
	assert.Equal(t, 4, cells[2].x)
}

func TestModeLine(t *testing.T) {
	b := buffer.New("notes.txt", buffer.WithText("ab\ncd"))
	b.SetPoint(4)
	assert.Equal(t, "---- notes.txt            (Fundamental) L2 C1 ", ModeLine(b, 46))

	_, err := b.Insert("x")
	require.NoError(t, err)
	line := ModeLine(b, 60)
	assert.Contains(t, line, "-**- notes.txt")
	assert.Len(t, line, 60)

	ro := buffer.New("ro", buffer.WithReadOnly(true), buffer.WithMode(buffer.Go))
	assert.Contains(t, ModeLine(ro, 80), "-%%- ro")
	assert.Contains(t, ModeLine(ro, 80), "(Go)")
	assert.Len(t, ModeLine(ro, 10), 10)
}

func TestEchoLine(t *testing.T) {
	e := editor.NewEditor()
	e.SetMessage("hello")
	assert.Equal(t, "hello", EchoLine(e))

	e.SetPending([]string{"C-x"})
	assert.Equal(t, "C-x-", EchoLine(e))

	_, err := e.OpenMinibuffer("Find file: ", "/tmp/")
	require.NoError(t, err)
	assert.Equal(t, "Find file: /tmp/", EchoLine(e))
}
