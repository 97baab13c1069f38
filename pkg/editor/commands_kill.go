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
	"regexp"

	"github.com/timburks/gomacs/pkg/buffer"
)

// KillForwardByDelimiter deletes from point to the n-th delimiter matched
// by re and pushes the text onto the kill ring.
func (e *Editor) KillForwardByDelimiter(re *regexp.Regexp, n int) (string, error) {
	b := e.Current()
	target := b.PointForwardByDelimiter(re, n)
	return e.kill(b, target-b.Point())
}

// KillBackwardByDelimiter deletes from the end of the n-th delimiter
// before point up to point and pushes the text onto the kill ring.
func (e *Editor) KillBackwardByDelimiter(re *regexp.Regexp, n int) (string, error) {
	b := e.Current()
	target := b.PointBackwardByDelimiter(re, n)
	return e.kill(b, target-b.Point())
}

func (e *Editor) kill(b *buffer.Buffer, n int) (string, error) {
	killed, err := b.DeleteChars(n)
	if err != nil {
		return "", err
	}
	e.KillRing.Append(killed)
	return killed, nil
}

// KillLine kills the rest of the line. At the end of a line it kills the
// newline, joining the next line onto this one.
func KillLine(e *Editor, args Args) (string, error) {
	b := e.Current()
	if args.Count == 1 && b.Point() < b.Len() && b.Substring(b.Point(), b.Point()+1) == "\n" {
		return e.kill(b, 1)
	}
	return e.KillForwardByDelimiter(buffer.LinePattern, args.Count)
}

// BackwardKillLine kills from the start of the line to point. At the
// start of a line it kills the preceding newline.
func BackwardKillLine(e *Editor, args Args) (string, error) {
	b := e.Current()
	if args.Count == 1 && b.Point() > 0 && b.Column() == 0 {
		return e.kill(b, -1)
	}
	return e.KillBackwardByDelimiter(buffer.LinePattern, args.Count)
}

func KillWord(e *Editor, args Args) (string, error) {
	return e.KillForwardByDelimiter(e.Current().Mode().WordDelimiterPattern(), args.Count)
}

func BackwardKillWord(e *Editor, args Args) (string, error) {
	return e.KillBackwardByDelimiter(e.Current().Mode().WordDelimiterPattern(), args.Count)
}

// KillRegion kills the text between point and mark.
func KillRegion(e *Editor, args Args) (string, error) {
	killed, err := e.Current().DeleteRegion()
	if err != nil {
		return "", err
	}
	e.KillRing.Append(killed)
	return killed, nil
}

// KillRingSave copies the region to the kill ring without deleting it.
func KillRingSave(e *Editor, args Args) (string, error) {
	region := e.Current().Region()
	e.KillRing.Append(region)
	return region, nil
}

// Yank inserts the most recent kill, or with a prefix argument N the
// N-th most recent. Mark is left at the start of the inserted text.
func Yank(e *Editor, args Args) (string, error) {
	text, err := e.KillRing.Yank(args.Count)
	if err != nil {
		return "", err
	}
	b := e.Current()
	start := b.Point()
	inserted, err := b.Insert(text)
	if err != nil {
		return "", err
	}
	b.SetMark(start)
	return inserted, nil
}

func SetMarkCommand(e *Editor, args Args) (string, error) {
	b := e.Current()
	b.SetMark(b.Point())
	e.SetMessage("Mark set")
	return "", nil
}

func ExchangePointAndMark(e *Editor, args Args) (string, error) {
	b := e.Current()
	point, mark := b.Point(), b.Mark()
	b.SetPoint(mark)
	b.SetMark(point)
	return "", nil
}
