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
package buffer

import (
	"errors"
	"math"

	"github.com/timburks/gomacs/pkg/keymap"
)

// ErrReadOnly is returned by every mutating operation on a read-only buffer.
var ErrReadOnly = errors.New("buffer is read-only")

// A Buffer holds the text of a file or scratch area being edited.
type Buffer struct {
	name        string
	path        string
	text        []rune
	point       int
	mark        int
	modified    bool
	readOnly    bool
	displayLine int // first line shown in the view, 1-indexed
	mode        *Mode
	keymap      *keymap.Keymap
}

// An Option configures a buffer when it is created.
type Option func(*Buffer)

// WithPath associates the buffer with a file. The mode is chosen from the
// file extension unless WithMode is also given.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
		if b.mode == nil {
			b.mode = ModeForPath(path)
		}
	}
}

// WithReadOnly marks the buffer read-only for its whole lifetime.
func WithReadOnly(readOnly bool) Option {
	return func(b *Buffer) {
		b.readOnly = readOnly
	}
}

// WithMode sets the major mode of the buffer.
func WithMode(mode *Mode) Option {
	return func(b *Buffer) {
		b.mode = mode
	}
}

// WithText sets the initial text. The buffer starts unmodified.
func WithText(text string) Option {
	return func(b *Buffer) {
		b.text = []rune(text)
	}
}

// WithKeymap sets the keymap used to resolve keychords typed in the buffer.
func WithKeymap(k *keymap.Keymap) Option {
	return func(b *Buffer) {
		b.keymap = k
	}
}

// New creates an empty buffer.
func New(name string, opts ...Option) *Buffer {
	b := &Buffer{
		name:        name,
		text:        make([]rune, 0),
		displayLine: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.mode == nil {
		b.mode = Fundamental
	}
	return b
}

func (b *Buffer) Name() string {
	return b.name
}

func (b *Buffer) SetName(name string) {
	b.name = name
}

func (b *Buffer) Path() string {
	return b.path
}

func (b *Buffer) Text() string {
	return string(b.text)
}

func (b *Buffer) Len() int {
	return len(b.text)
}

func (b *Buffer) Point() int {
	return b.point
}

func (b *Buffer) Mark() int {
	return b.mark
}

func (b *Buffer) Modified() bool {
	return b.modified
}

func (b *Buffer) ReadOnly() bool {
	return b.readOnly
}

func (b *Buffer) DisplayLine() int {
	return b.displayLine
}

func (b *Buffer) Mode() *Mode {
	return b.mode
}

// Keymap returns the keymap of the buffer, or nil if the buffer uses the
// editor's global keymap.
func (b *Buffer) Keymap() *keymap.Keymap {
	return b.keymap
}

// SetKeymap replaces the keymap of the buffer.
func (b *Buffer) SetKeymap(k *keymap.Keymap) {
	b.keymap = k
}

// Line returns the 1-indexed line containing point.
func (b *Buffer) Line() int {
	line := 1
	for _, c := range b.text[:b.point] {
		if c == '\n' {
			line++
		}
	}
	return line
}

// Column returns the distance from point back to the start of its line.
func (b *Buffer) Column() int {
	col := 0
	for b.point-col > 0 {
		if b.text[b.point-col-1] == '\n' {
			return col
		}
		col++
	}
	return col
}

// LineCount returns the number of lines; an empty buffer has one line.
func (b *Buffer) LineCount() int {
	count := 1
	for _, c := range b.text {
		if c == '\n' {
			count++
		}
	}
	return count
}

// LineOffset returns the offset of the start of a 1-indexed line. Lines
// past the end of the buffer give the end of the buffer.
func (b *Buffer) LineOffset(line int) int {
	if line <= 1 {
		return 0
	}
	for i, c := range b.text {
		if c == '\n' {
			line--
			if line == 1 {
				return i + 1
			}
		}
	}
	return len(b.text)
}

func (b *Buffer) clamp(pos int) int {
	return max(0, min(pos, len(b.text)))
}

// offset returns the position n characters from point, clamped to the
// text. It never computes point+n, which can overflow for large n.
func (b *Buffer) offset(n int) int {
	switch {
	case n > len(b.text)-b.point:
		return len(b.text)
	case n < -b.point:
		return 0
	}
	return b.point + n
}

// negate is -n, with math.MinInt mapped to math.MaxInt.
func negate(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	return -n
}

// Substring returns the text between two offsets, clamped to the buffer.
func (b *Buffer) Substring(start, end int) string {
	start, end = b.clamp(start), b.clamp(end)
	if start > end {
		start, end = end, start
	}
	return string(b.text[start:end])
}

// Region returns the text between point and mark.
func (b *Buffer) Region() string {
	return b.Substring(b.point, b.mark)
}

// SetPoint moves point, clamping it to the text.
func (b *Buffer) SetPoint(pos int) {
	b.point = b.clamp(pos)
}

// MoveBy moves point n characters, forward for positive n and backward
// for negative n, stopping at the ends of the text.
func (b *Buffer) MoveBy(n int) {
	b.point = b.offset(n)
}

// SetMark moves mark, clamping it to the text.
func (b *Buffer) SetMark(pos int) {
	b.mark = b.clamp(pos)
}

// ScrollBy moves the first displayed line, keeping it between the first
// and last lines of the buffer.
func (b *Buffer) ScrollBy(lines int) {
	last := b.LineCount()
	switch {
	case lines > last-b.displayLine:
		b.displayLine = last
	case lines < 1-b.displayLine:
		b.displayLine = 1
	default:
		b.displayLine = max(1, min(last, b.displayLine+lines))
	}
}

// Insert inserts s at point and leaves point after it. Mark moves with the
// text only if it was after point.
func (b *Buffer) Insert(s string) (string, error) {
	if b.readOnly {
		return "", ErrReadOnly
	}
	inserted := []rune(s)
	text := make([]rune, 0, len(b.text)+len(inserted))
	text = append(text, b.text[:b.point]...)
	text = append(text, inserted...)
	text = append(text, b.text[b.point:]...)
	b.text = text
	if b.mark > b.point {
		b.mark += len(inserted)
	}
	b.point += len(inserted)
	b.modified = true
	return s, nil
}

// DeleteChars deletes n characters after point, or -n characters before
// point when n is negative, and returns the deleted text. Deleting before
// point moves point to the start of the deletion.
func (b *Buffer) DeleteChars(n int) (string, error) {
	if b.readOnly {
		return "", ErrReadOnly
	}
	other := b.offset(n)
	start, end := min(b.point, other), max(b.point, other)
	deleted := b.cut(start, end)
	if n < 0 {
		b.point = start
	}
	switch {
	case start <= b.mark && b.mark <= end:
		b.mark = start
	case b.mark > end:
		b.mark -= end - start
	}
	return deleted, nil
}

// DeleteRegion deletes the text between point and mark and leaves both at
// the start of the deletion.
func (b *Buffer) DeleteRegion() (string, error) {
	if b.readOnly {
		return "", ErrReadOnly
	}
	start, end := min(b.point, b.mark), max(b.point, b.mark)
	deleted := b.cut(start, end)
	b.point = start
	b.mark = start
	return deleted, nil
}

func (b *Buffer) cut(start, end int) string {
	deleted := string(b.text[start:end])
	b.text = append(b.text[:start:start], b.text[end:]...)
	b.modified = true
	return deleted
}

// Append adds s to the end of the buffer without moving point or mark.
func (b *Buffer) Append(s string) (string, error) {
	if b.readOnly {
		return "", ErrReadOnly
	}
	b.text = append(b.text, []rune(s)...)
	b.modified = true
	return s, nil
}

// Replace replaces the whole text as an edit, keeping point and mark
// where they were as far as the new text allows.
func (b *Buffer) Replace(s string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.text = []rune(s)
	b.point = b.clamp(b.point)
	b.mark = b.clamp(b.mark)
	b.displayLine = max(1, min(b.LineCount(), b.displayLine))
	b.modified = true
	return nil
}

// Load replaces the whole text. It is used for reverting and for buffers
// whose contents are generated, so it is allowed on read-only buffers and
// leaves the buffer unmodified.
func (b *Buffer) Load(text string) {
	b.text = []rune(text)
	b.point = 0
	b.mark = 0
	b.displayLine = 1
	b.modified = false
}
