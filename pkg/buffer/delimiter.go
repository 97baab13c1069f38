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
	"regexp"
	"unicode/utf8"
)

// spans returns the rune offsets of every match of re in the text.
func (b *Buffer) spans(re *regexp.Regexp) [][2]int {
	s := string(b.text)
	locs := re.FindAllStringIndex(s, -1)
	spans := make([][2]int, 0, len(locs))
	byteOffset, runeOffset := 0, 0
	advance := func(to int) int {
		runeOffset += utf8.RuneCountInString(s[byteOffset:to])
		byteOffset = to
		return runeOffset
	}
	for _, loc := range locs {
		start := advance(loc[0])
		end := advance(loc[1])
		spans = append(spans, [2]int{start, end})
	}
	return spans
}

// PointForwardByDelimiter returns the start of the n-th delimiter after
// point, or the end of the buffer when there are fewer than n of them.
func (b *Buffer) PointForwardByDelimiter(re *regexp.Regexp, n int) int {
	if n == 0 {
		return b.point
	}
	if n < 0 {
		return b.PointBackwardByDelimiter(re, negate(n))
	}
	for _, span := range b.spans(re) {
		if span[0] > b.point {
			n--
			if n == 0 {
				return span[0]
			}
		}
	}
	return len(b.text)
}

// PointBackwardByDelimiter returns the end of the n-th delimiter before
// point, counting from point, or the start of the buffer when there are
// fewer than n of them.
func (b *Buffer) PointBackwardByDelimiter(re *regexp.Regexp, n int) int {
	if n == 0 {
		return b.point
	}
	if n < 0 {
		return b.PointForwardByDelimiter(re, negate(n))
	}
	spans := b.spans(re)
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i][1] < b.point {
			n--
			if n == 0 {
				return spans[i][1]
			}
		}
	}
	return 0
}

func (b *Buffer) MoveForwardByDelimiter(re *regexp.Regexp, n int) {
	b.SetPoint(b.PointForwardByDelimiter(re, n))
}

func (b *Buffer) MoveBackwardByDelimiter(re *regexp.Regexp, n int) {
	b.SetPoint(b.PointBackwardByDelimiter(re, n))
}

// ThingAtPoint returns the first match of unit that touches point,
// or "" if point is not in or next to one.
func (b *Buffer) ThingAtPoint(unit *regexp.Regexp) string {
	for _, span := range b.spans(unit) {
		if span[0] <= b.point && b.point <= span[1] {
			return string(b.text[span[0]:span[1]])
		}
	}
	return ""
}

// LineStart returns the offset of the first character of the line
// containing point.
func (b *Buffer) LineStart() int {
	return b.point - b.Column()
}

// LineEnd returns the offset of the newline ending the line containing
// point, or the end of the buffer on the last line.
func (b *Buffer) LineEnd() int {
	for i := b.point; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			return i
		}
	}
	return len(b.text)
}

func (b *Buffer) MoveBeginningOfLine() {
	b.point = b.LineStart()
}

func (b *Buffer) MoveEndOfLine() {
	b.point = b.LineEnd()
}

// NextLine moves point down n lines, staying as close to its column as
// the destination line allows.
func (b *Buffer) NextLine(n int) {
	if n < 0 {
		b.PreviousLine(negate(n))
		return
	}
	column := b.Column()
	for range n {
		b.MoveEndOfLine()
		if b.point == len(b.text) {
			break
		}
		b.point++
	}
	if shortfall := column - b.Column(); shortfall > 0 {
		b.point = min(b.point+shortfall, b.LineEnd())
	}
}

// PreviousLine moves point up n lines, staying as close to its column as
// the destination line allows.
func (b *Buffer) PreviousLine(n int) {
	if n < 0 {
		b.NextLine(negate(n))
		return
	}
	column := b.Column()
	for range n {
		b.MoveBeginningOfLine()
		if b.point == 0 {
			break
		}
		b.point--
	}
	if overshoot := b.Column() - column; overshoot > 0 {
		b.point -= overshoot
	}
}
