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
	"github.com/nsf/termbox-go"
)

var namedKeys = map[termbox.Key]string{
	termbox.KeyArrowUp:    "KEY_UP",
	termbox.KeyArrowDown:  "KEY_DOWN",
	termbox.KeyArrowLeft:  "KEY_LEFT",
	termbox.KeyArrowRight: "KEY_RIGHT",
	termbox.KeyHome:       "KEY_HOME",
	termbox.KeyEnd:        "KEY_END",
	termbox.KeyPgup:       "KEY_PPAGE",
	termbox.KeyPgdn:       "KEY_NPAGE",
	termbox.KeyDelete:     "KEY_DC",
	termbox.KeyInsert:     "KEY_IC",
	termbox.KeyF1:         "KEY_F1",
	termbox.KeyF2:         "KEY_F2",
	termbox.KeyF3:         "KEY_F3",
	termbox.KeyF4:         "KEY_F4",
	termbox.KeyF5:         "KEY_F5",
	termbox.KeyF6:         "KEY_F6",
	termbox.KeyF7:         "KEY_F7",
	termbox.KeyF8:         "KEY_F8",
	termbox.KeyF9:         "KEY_F9",
	termbox.KeyF10:        "KEY_F10",
	termbox.KeyF11:        "KEY_F11",
	termbox.KeyF12:        "KEY_F12",
}

// Token converts a key event into the token used in keymaps, such as
// "a", "C-f", "M-<" or "KEY_LEFT". Events with no token give "".
func Token(ev termbox.Event) string {
	if ev.Type != termbox.EventKey {
		return ""
	}
	token := baseToken(ev)
	if token == "" {
		return ""
	}
	if ev.Mod&termbox.ModAlt != 0 {
		return "M-" + token
	}
	return token
}

func baseToken(ev termbox.Event) string {
	if ev.Ch != 0 {
		return string(ev.Ch)
	}
	switch k := ev.Key; {
	case k == termbox.KeyCtrlSpace:
		return "C- "
	case k == termbox.KeySpace:
		return " "
	case k == termbox.KeyEnter:
		return "RET"
	case k == termbox.KeyTab:
		return "TAB"
	case k == termbox.KeyEsc:
		return "ESC"
	case k == termbox.KeyBackspace2:
		return "DEL"
	case k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ:
		return "C-" + string(rune('a'+int(k-termbox.KeyCtrlA)))
	}
	return namedKeys[ev.Key]
}
