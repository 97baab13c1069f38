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

// Package log writes gomacs' diagnostic log. The terminal belongs to the
// editor while it runs, so everything goes to a file (~/.gomacslog unless
// configured otherwise). Entries carry a level, a category, and optional
// key=value fields:
//
//	2026/10/15 10:45:00 [INFO] [dispatch] resolved keys="C-x C-f" command=find-file
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related entries.
type Category string

const (
	CatBuffer   Category = "buffer"   // buffer list and file operations
	CatConfig   Category = "config"   // configuration loading
	CatDispatch Category = "dispatch" // keychord resolution and command execution
	CatKeymap   Category = "keymap"   // keymap files and rebinding
	CatLisp     Category = "lisp"     // golisp evaluation
	CatScreen   Category = "screen"   // terminal setup and input decoding
	CatMessage  Category = "message"  // echo area messages
)

type logger struct {
	out      *stdlog.Logger
	minLevel Level
}

var current = &logger{out: stdlog.New(io.Discard, "", 0), minLevel: LevelInfo}

// Init opens path for appending and sends all further entries there.
// Debug entries are written only when debug is true.
// The returned function closes the file.
func Init(path string, debug bool) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f, debug)
	return func() {
		f.Close()
		SetOutput(io.Discard, false)
	}, nil
}

// SetOutput sends entries to w. It is used by Init and by tests.
func SetOutput(w io.Writer, debug bool) {
	current = &logger{out: stdlog.New(w, "", stdlog.LstdFlags), minLevel: LevelInfo}
	if debug {
		current.minLevel = LevelDebug
	}
}

func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs err with msg at error level.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	write(LevelError, cat, msg, append(fields, "error", err)...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	if level < current.minLevel {
		return
	}
	var entry strings.Builder
	fmt.Fprintf(&entry, "[%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&entry, " %v=%q", fields[i], fmt.Sprint(fields[i+1]))
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&entry, " %v=<missing>", fields[len(fields)-1])
	}
	current.out.Output(3, entry.String())
}
