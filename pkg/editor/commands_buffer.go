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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/timburks/gomacs/pkg/buffer"
	"github.com/timburks/gomacs/pkg/log"
)

// The name of the buffer written by list-buffers.
const BufferListName = "*Buffer List*"

// FindFile visits a file, switching to its buffer if it is already open.
// The name of an existing file at point is offered as the default.
func FindFile(e *Editor, args Args) (string, error) {
	path, err := e.ReadArg(args, 0, "Find file: ", fileAtPoint(e.ActiveBuffer()))
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}
	_, err = e.VisitFile(path)
	return path, err
}

func fileAtPoint(b *buffer.Buffer) string {
	name := b.ThingAtPoint(buffer.FilenamePattern)
	if name == "" {
		return ""
	}
	if _, err := os.Stat(name); err != nil {
		return ""
	}
	return name
}

// VisitFile opens path in a new buffer and makes it active. A missing
// file gives an empty buffer that will create the file when saved.
func (e *Editor) VisitFile(path string, opts ...buffer.Option) (*buffer.Buffer, error) {
	if b := e.FindBufferByPath(path); b != nil {
		e.SwitchBuffer(e.IndexOf(b))
		return b, nil
	}
	opts = append([]buffer.Option{buffer.WithPath(path), buffer.WithMode(e.ModeForPath(path))}, opts...)
	b := e.CreateBuffer(filepath.Base(path), opts...)
	err := b.Revert()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.SetMessage("(New file)")
		return b, nil
	case err != nil:
		log.ErrorErr(log.CatBuffer, "visit failed", err, "path", path)
		return b, err
	}
	log.Debug(log.CatBuffer, "visited file", "path", path, "chars", b.Len())
	return b, nil
}

// SaveBuffer writes the current buffer to its file, asking for a file
// name if it has none.
func SaveBuffer(e *Editor, args Args) (string, error) {
	b := e.ActiveBuffer()
	if b.Path() == "" {
		return WriteFile(e, args)
	}
	if err := b.Save(); err != nil {
		return "", err
	}
	e.SetMessage("Wrote %s", b.Path())
	return b.Path(), nil
}

// WriteFile writes the current buffer to a new file and visits it.
func WriteFile(e *Editor, args Args) (string, error) {
	b := e.ActiveBuffer()
	path, err := e.ReadArg(args, 0, "Write file: ", b.Path())
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}
	if err := b.WriteFile(path); err != nil {
		return "", err
	}
	e.SetMessage("Wrote %s", path)
	return path, nil
}

// SwitchToBuffer makes the named buffer active, creating it if needed.
// An empty name selects the next buffer.
func SwitchToBuffer(e *Editor, args Args) (string, error) {
	name, err := e.ReadArg(args, 0, "Switch to buffer: ", "")
	if err != nil {
		return "", err
	}
	if name == "" {
		e.NextBuffer()
		return e.ActiveBuffer().Name(), nil
	}
	if b := e.FindBuffer(name); b != nil {
		e.SwitchBuffer(e.IndexOf(b))
		return name, nil
	}
	e.CreateBuffer(name)
	return name, nil
}

// ListBuffers shows a read-only buffer describing every open buffer.
func ListBuffers(e *Editor, args Args) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %-20s %8s  %s\n", "M", "Buffer", "Size", "File")
	for _, b := range e.buffers {
		if b.Name() == BufferListName {
			continue
		}
		flag := " "
		switch {
		case b.ReadOnly():
			flag = "%"
		case b.Modified():
			flag = "*"
		}
		fmt.Fprintf(&sb, "%s %-20s %8d  %s\n", flag, b.Name(), b.Len(), b.Path())
	}
	list := e.FindBuffer(BufferListName)
	if list == nil {
		list = e.CreateBufferNoSwitch(BufferListName, buffer.WithReadOnly(true))
	}
	list.Load(sb.String())
	e.SwitchBuffer(e.IndexOf(list))
	return sb.String(), nil
}

// KillBufferCommand closes the named buffer, or the current one when no
// name is given. Unsaved changes are lost.
func KillBufferCommand(e *Editor, args Args) (string, error) {
	current := e.ActiveBuffer()
	name, err := e.ReadArg(args, 0, "Kill buffer: ", current.Name())
	if err != nil && !errors.Is(err, ErrNoPrompter) {
		return "", err
	}
	target := current
	if name != "" {
		target = e.FindBuffer(name)
		if target == nil {
			return "", fmt.Errorf("no buffer named %s", name)
		}
	}
	e.KillBuffer(e.IndexOf(target))
	return target.Name(), nil
}

func NextBufferCommand(e *Editor, args Args) (string, error) {
	for range max(1, args.Count) {
		e.NextBuffer()
	}
	return e.ActiveBuffer().Name(), nil
}

func PreviousBufferCommand(e *Editor, args Args) (string, error) {
	for range max(1, args.Count) {
		e.PreviousBuffer()
	}
	return e.ActiveBuffer().Name(), nil
}

// KillEditor ends the session. Modified buffers are not saved.
func KillEditor(e *Editor, args Args) (string, error) {
	e.done = true
	return "", nil
}
