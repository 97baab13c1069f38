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
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/keymap"
	"github.com/timburks/gomacs/pkg/killring"
	"github.com/timburks/gomacs/pkg/log"
)

// The name of the buffer created when there is nothing else to edit.
const ScratchBufferName = "*scratch*"

// A Prompter reads a line of input from the user in the minibuffer.
type Prompter interface {
	ReadMinibuffer(prompt, initial string) (string, error)
}

// The Editor holds everything a command can act on.
type Editor struct {
	KillRing *killring.Ring

	// ViewHeight is the number of buffer lines the screen shows. Commands
	// keep point within the view; zero disables this.
	ViewHeight int

	buffers     []*buffer.Buffer
	active      int
	keymap      *keymap.Keymap  // global keymap
	fundamental *buffer.Mode    // mode for buffers not visiting a known file type
	minibuffer  *Minibuffer     // non-nil while reading input
	commands    map[string]Command
	prompter    Prompter
	message     string   // echo area message
	pending     []string // keys of an incomplete keychord
	prefix      int      // numeric prefix argument
	hasPrefix   bool
	keepPrefix  bool // set by commands that build up the prefix argument
	digitPrefix bool // digits typed now extend the prefix argument
	typedDigit  bool
	sentences   int  // default number of sentences for markov-insert
	rng         *rand.Rand
	done        bool
}

// An Option configures an editor when it is created.
type Option func(*Editor)

// WithKeymap sets the global keymap. The default is keymap.Default().
func WithKeymap(k *keymap.Keymap) Option {
	return func(e *Editor) {
		e.keymap = k
	}
}

// WithFundamentalMode replaces the mode used for buffers with no more
// specific mode.
func WithFundamentalMode(m *buffer.Mode) Option {
	return func(e *Editor) {
		e.fundamental = m
	}
}

// WithRand sets the random source used for generated text.
func WithRand(rng *rand.Rand) Option {
	return func(e *Editor) {
		e.rng = rng
	}
}

// WithMarkovSentences sets how many sentences markov-insert generates
// without a prefix argument.
func WithMarkovSentences(n int) Option {
	return func(e *Editor) {
		e.sentences = n
	}
}

// NewEditor creates an editor with no buffers; a scratch buffer is
// created the first time one is needed.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		KillRing:    killring.New(),
		ViewHeight:  0,
		buffers:     make([]*buffer.Buffer, 0),
		keymap:      keymap.Default(),
		fundamental: buffer.Fundamental,
		commands:    make(map[string]Command),
		sentences:   1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.registerBuiltins()
	return e
}

// Keymap returns the global keymap.
func (e *Editor) Keymap() *keymap.Keymap {
	return e.keymap
}

// SetKeymap replaces the global keymap and rebuilds the keymap of every
// buffer from it.
func (e *Editor) SetKeymap(k *keymap.Keymap) {
	e.keymap = k
	for _, b := range e.buffers {
		b.SetKeymap(e.keymapForMode(b.Mode()))
	}
}

func (e *Editor) keymapForMode(m *buffer.Mode) *keymap.Keymap {
	if m == nil || m.Modemap == nil {
		return e.keymap
	}
	return keymap.Merge(e.keymap, m.Modemap)
}

// ModeForPath returns the mode for a buffer visiting path.
func (e *Editor) ModeForPath(path string) *buffer.Mode {
	m := buffer.ModeForPath(path)
	if m == buffer.Fundamental {
		return e.fundamental
	}
	return m
}

// SetPrompter sets how commands read input from the user.
func (e *Editor) SetPrompter(p Prompter) {
	e.prompter = p
}

// ReadMinibuffer asks the user for a line of input.
func (e *Editor) ReadMinibuffer(prompt, initial string) (string, error) {
	if e.prompter == nil {
		return "", ErrNoPrompter
	}
	return e.prompter.ReadMinibuffer(prompt, initial)
}

// SetMessage shows a message in the echo area.
func (e *Editor) SetMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	if e.message != "" {
		log.Info(log.CatMessage, e.message)
	}
}

// Message returns the text of the echo area.
func (e *Editor) Message() string {
	return e.message
}

// SetPending records the keys of a keychord still being typed.
func (e *Editor) SetPending(keys []string) {
	e.pending = keys
}

// Pending returns the keys of a keychord still being typed.
func (e *Editor) Pending() []string {
	return e.pending
}

// Done reports whether the session has been ended with kill-editor.
func (e *Editor) Done() bool {
	return e.done
}

// Buffers returns the open buffers in order.
func (e *Editor) Buffers() []*buffer.Buffer {
	return append([]*buffer.Buffer(nil), e.buffers...)
}

// ActiveIndex returns the position of the active buffer in the buffer list.
func (e *Editor) ActiveIndex() int {
	return e.active
}

// ActiveBuffer returns the buffer shown on screen. If there are no
// buffers a scratch buffer is created, and an invalid active index is
// reset to the first buffer.
func (e *Editor) ActiveBuffer() *buffer.Buffer {
	if len(e.buffers) == 0 {
		e.CreateBuffer(ScratchBufferName)
	}
	if e.active < 0 || e.active >= len(e.buffers) {
		e.active = 0
	}
	return e.buffers[e.active]
}

// Current returns the buffer commands edit: the minibuffer while input is
// being read, otherwise the active buffer.
func (e *Editor) Current() *buffer.Buffer {
	if e.minibuffer != nil {
		return e.minibuffer.Buffer
	}
	return e.ActiveBuffer()
}

func (e *Editor) newBuffer(name string, opts ...buffer.Option) *buffer.Buffer {
	opts = append([]buffer.Option{buffer.WithMode(e.fundamental)}, opts...)
	b := buffer.New(name, opts...)
	b.SetKeymap(e.keymapForMode(b.Mode()))
	return b
}

// uniqueName returns name, or name<2>, name<3> and so on if a buffer
// already has that name.
func (e *Editor) uniqueName(name string) string {
	unique := name
	for i := 2; e.FindBuffer(unique) != nil; i++ {
		unique = fmt.Sprintf("%s<%d>", name, i)
	}
	return unique
}

// CreateBufferNoSwitch adds a buffer to the end of the buffer list
// without making it active.
func (e *Editor) CreateBufferNoSwitch(name string, opts ...buffer.Option) *buffer.Buffer {
	name = e.uniqueName(name)
	b := e.newBuffer(name, opts...)
	e.buffers = append(e.buffers, b)
	log.Debug(log.CatBuffer, "created buffer", "name", name, "count", len(e.buffers))
	return b
}

// CreateBuffer adds a buffer to the end of the buffer list and makes it
// active. A name already in use gets a <n> suffix.
func (e *Editor) CreateBuffer(name string, opts ...buffer.Option) *buffer.Buffer {
	b := e.CreateBufferNoSwitch(name, opts...)
	e.active = len(e.buffers) - 1
	return b
}

// SwitchBuffer makes the buffer at index active. Indices outside the
// buffer list are ignored.
func (e *Editor) SwitchBuffer(index int) {
	if index < 0 || index >= len(e.buffers) {
		return
	}
	e.active = index
}

// KillBuffer removes the buffer at index. Indices outside the buffer
// list are ignored. Unsaved changes are discarded.
func (e *Editor) KillBuffer(index int) {
	if index < 0 || index >= len(e.buffers) {
		return
	}
	log.Debug(log.CatBuffer, "killed buffer", "name", e.buffers[index].Name())
	e.buffers = append(e.buffers[:index:index], e.buffers[index+1:]...)
	if e.active > index || e.active >= len(e.buffers) {
		e.active = max(0, e.active-1)
	}
}

// IndexOf returns the position of b in the buffer list, or -1.
func (e *Editor) IndexOf(b *buffer.Buffer) int {
	for i, candidate := range e.buffers {
		if candidate == b {
			return i
		}
	}
	return -1
}

// FindBuffer returns the first buffer named name, or nil.
func (e *Editor) FindBuffer(name string) *buffer.Buffer {
	for _, b := range e.buffers {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// FindBufferByPath returns the buffer visiting path, or nil.
func (e *Editor) FindBufferByPath(path string) *buffer.Buffer {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, b := range e.buffers {
		if b.Path() == "" {
			continue
		}
		if candidate, err := filepath.Abs(b.Path()); err == nil && candidate == abs {
			return b
		}
	}
	return nil
}

// NextBuffer makes the following buffer active, wrapping around.
func (e *Editor) NextBuffer() {
	if len(e.buffers) == 0 {
		return
	}
	e.active = (e.active + 1) % len(e.buffers)
}

// PreviousBuffer makes the preceding buffer active, wrapping around.
func (e *Editor) PreviousBuffer() {
	if len(e.buffers) == 0 {
		return
	}
	e.active = (e.active - 1 + len(e.buffers)) % len(e.buffers)
}

// Execute runs the command called name. Failures are shown in the echo
// area as well as returned; none of them end the session.
func (e *Editor) Execute(name string, keychord []string) (string, error) {
	cmd, ok := e.commands[name]
	if !ok {
		e.resetPrefix()
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		e.SetMessage("%s", err)
		return "", err
	}
	args := Args{Keychord: keychord, Count: 1}
	if e.hasPrefix {
		args.Count = clampCount(e.prefix)
		args.Raw = true
	}
	e.keepPrefix = false
	result, err := cmd(e, args)
	if !e.keepPrefix {
		e.resetPrefix()
	}
	if err != nil {
		e.report(err)
	}
	e.ensureVisible()
	return result, err
}

func (e *Editor) resetPrefix() {
	e.hasPrefix = false
	e.digitPrefix = false
	e.typedDigit = false
	e.prefix = 0
}

func (e *Editor) report(err error) {
	var undefined *UndefinedError
	switch {
	case errors.Is(err, buffer.ErrReadOnly):
		e.SetMessage("Buffer is read-only: %s", e.Current().Name())
	case errors.Is(err, killring.ErrEmpty):
		e.SetMessage("Kill ring is empty")
	case errors.Is(err, ErrQuit):
		e.SetMessage("Quit")
	case errors.As(err, &undefined):
		e.SetMessage("%s", undefined.Error())
	default:
		e.SetMessage("%s", err)
	}
}

// ensureVisible scrolls the active buffer so that the line with point is
// on screen.
func (e *Editor) ensureVisible() {
	if e.ViewHeight <= 0 {
		return
	}
	b := e.ActiveBuffer()
	top := b.DisplayLine()
	bottom := top + e.ViewHeight
	line := b.Line()
	if line < top {
		b.ScrollBy(line - top)
	}
	if line >= bottom {
		b.ScrollBy(line - bottom + 1)
	}
}
