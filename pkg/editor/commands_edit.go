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
	"strings"
	"unicode/utf8"

	"github.com/timburks/gomacs/pkg/markov"
)

// SelfInsertCommand inserts the last key typed. While a prefix argument
// is being entered with C-u, digits add to the argument instead.
func SelfInsertCommand(e *Editor, args Args) (string, error) {
	if len(args.Keychord) == 0 {
		return "", nil
	}
	key := args.Keychord[len(args.Keychord)-1]
	if e.digitPrefix && len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		digit := int(key[0] - '0')
		if !e.typedDigit {
			e.prefix = digit
		} else {
			e.prefix = min(e.prefix*10+digit, MaxCount)
		}
		e.typedDigit = true
		e.keepPrefix = true
		return "", nil
	}
	if utf8.RuneCountInString(key) != 1 {
		return "", nil
	}
	return e.Current().Insert(strings.Repeat(key, max(0, args.Count)))
}

// Insert inserts text at point.
func Insert(e *Editor, text string) (string, error) {
	return e.Current().Insert(text)
}

func Newline(e *Editor, args Args) (string, error) {
	return e.Current().Insert(strings.Repeat("\n", max(0, args.Count)))
}

func IndentForTabCommand(e *Editor, args Args) (string, error) {
	return e.Current().Insert(strings.Repeat("\t", max(0, args.Count)))
}

// DeleteChar deletes characters after point, or before point when the
// argument is negative.
func DeleteChar(e *Editor, args Args) (string, error) {
	return e.Current().DeleteChars(args.Count)
}

func DeleteBackwardChar(e *Editor, args Args) (string, error) {
	return e.Current().DeleteChars(-args.Count)
}

// MarkovInsert inserts sentences generated from the words of the buffer.
func MarkovInsert(e *Editor, args Args) (string, error) {
	n := e.sentences
	if args.Raw {
		n = args.Count
	}
	b := e.Current()
	return b.Insert(markov.GenerateFromText(b.Text(), n, e.rng))
}
