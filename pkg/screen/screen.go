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
// Package screen draws the editor on a terminal with termbox and reads
// keys from it.
package screen

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/gomacs/pkg/editor"
	"github.com/timburks/gomacs/pkg/log"
)

// The default number of columns between tab stops.
const DefaultTabWidth = 8

// The Screen draws the state of an Editor.
type Screen struct {
	tabWidth int
	editor   *editor.Editor // last editor drawn, redrawn on resize
}

type Option func(*Screen)

// WithTabWidth sets the number of columns between tab stops.
func WithTabWidth(n int) Option {
	return func(s *Screen) {
		if n > 0 {
			s.tabWidth = n
		}
	}
}

// NewScreen opens the terminal.
func NewScreen(opts ...Option) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputAlt)
	s := &Screen{tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		opt(s)
	}
	log.Debug(log.CatScreen, "terminal opened", "tab_width", s.tabWidth)
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Render draws the active buffer, its mode line, and the echo area.
func (s *Screen) Render(e *editor.Editor) {
	s.editor = e
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	width, height := termbox.Size()
	rows := max(1, height-2)
	e.ViewHeight = rows

	b := e.ActiveBuffer()
	cells, cursorX, cursorY := layout(b, width, rows, s.tabWidth)
	for _, c := range cells {
		termbox.SetCell(c.x, c.y, c.ch, termbox.ColorDefault, termbox.ColorDefault)
	}
	s.drawLine(rows, ModeLine(b, width), termbox.ColorBlack, termbox.ColorWhite)
	echo := runewidth.Truncate(EchoLine(e), width, "")
	s.drawLine(rows+1, echo, termbox.ColorDefault, termbox.ColorDefault)

	if mb := e.Minibuffer(); mb != nil {
		x := runewidth.StringWidth(mb.Prompt) + runewidth.StringWidth(mb.Buffer.Substring(0, mb.Buffer.Point()))
		termbox.SetCursor(min(x, width-1), rows+1)
	} else if cursorY >= 0 {
		termbox.SetCursor(cursorX, cursorY)
	} else {
		termbox.HideCursor()
	}
	termbox.Flush()
}

func (s *Screen) drawLine(y int, text string, fg, bg termbox.Attribute) {
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

// ReadKey waits for the next key and returns its token. The screen is
// redrawn when the terminal is resized.
func (s *Screen) ReadKey() (string, error) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if token := Token(ev); token != "" {
				return token, nil
			}
			log.Debug(log.CatScreen, "ignored key", "key", ev.Key, "ch", ev.Ch)
		case termbox.EventResize:
			if s.editor != nil {
				s.Render(s.editor)
			}
		case termbox.EventError:
			return "", fmt.Errorf("reading terminal: %w", ev.Err)
		case termbox.EventInterrupt:
			return "", io.EOF
		}
	}
}
