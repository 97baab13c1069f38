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
	"github.com/timburks/gomacs/pkg/buffer"
)

func ForwardChar(e *Editor, args Args) (string, error) {
	e.Current().MoveBy(args.Count)
	return "", nil
}

func BackwardChar(e *Editor, args Args) (string, error) {
	e.Current().MoveBy(-args.Count)
	return "", nil
}

// ForwardWord moves point to the end of the next word. Words are the
// runs of text between the delimiters of the buffer's mode.
func ForwardWord(e *Editor, args Args) (string, error) {
	b := e.Current()
	b.MoveForwardByDelimiter(b.Mode().WordDelimiterPattern(), args.Count)
	return "", nil
}

// BackwardWord moves point to the start of the previous word.
func BackwardWord(e *Editor, args Args) (string, error) {
	b := e.Current()
	b.MoveBackwardByDelimiter(b.Mode().WordDelimiterPattern(), args.Count)
	return "", nil
}

func NextLine(e *Editor, args Args) (string, error) {
	e.Current().NextLine(args.Count)
	return "", nil
}

func PreviousLine(e *Editor, args Args) (string, error) {
	e.Current().PreviousLine(args.Count)
	return "", nil
}

// MoveBeginningOfLine moves to the start of the line. It never leaves the
// line, even at column 0.
func MoveBeginningOfLine(e *Editor, args Args) (string, error) {
	e.Current().MoveBeginningOfLine()
	return "", nil
}

func MoveEndOfLine(e *Editor, args Args) (string, error) {
	e.Current().MoveEndOfLine()
	return "", nil
}

func BeginningOfBuffer(e *Editor, args Args) (string, error) {
	e.Current().SetPoint(0)
	return "", nil
}

func EndOfBuffer(e *Editor, args Args) (string, error) {
	b := e.Current()
	b.SetPoint(b.Len())
	return "", nil
}

// pageSize is the number of lines a scroll command moves: a screenful
// less two lines of context, or the prefix argument when one was given.
func (e *Editor) pageSize(args Args) int {
	if args.Raw {
		return args.Count
	}
	return max(1, e.ViewHeight-2)
}

// ScrollUpCommand shows the next page of the buffer, taking point along.
func ScrollUpCommand(e *Editor, args Args) (string, error) {
	scroll(e.Current(), e.pageSize(args))
	return "", nil
}

// ScrollDownCommand shows the previous page of the buffer.
func ScrollDownCommand(e *Editor, args Args) (string, error) {
	scroll(e.Current(), -e.pageSize(args))
	return "", nil
}

func scroll(b *buffer.Buffer, lines int) {
	b.ScrollBy(lines)
	b.NextLine(lines)
}
