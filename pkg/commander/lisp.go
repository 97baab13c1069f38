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
package commander

import (
	"errors"
	"fmt"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/gomacs/pkg/editor"
	"github.com/timburks/gomacs/pkg/keymap"
	"github.com/timburks/gomacs/pkg/log"
)

// The editor that lisp functions act on.
var current *editor.Editor

var errNoEditor = errors.New("no editor for lisp to act on")

// Install makes e the editor that lisp functions act on, defines a lisp
// function for each of its commands, and adds eval-expression.
func Install(e *editor.Editor) {
	current = e
	e.Register("eval-expression", EvalExpression)
	for _, name := range e.CommandNames() {
		golisp.MakePrimitiveFunction(name, "*", commandImpl(name))
	}
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("goto-char", "1", GotoCharImpl)
	golisp.MakePrimitiveFunction("point", "0", PointImpl)
	golisp.MakePrimitiveFunction("mark", "0", MarkImpl)
	golisp.MakePrimitiveFunction("buffer-string", "0", BufferStringImpl)
	golisp.MakePrimitiveFunction("buffer-name", "0", BufferNameImpl)
	golisp.MakePrimitiveFunction("message", "1", MessageImpl)
	golisp.MakePrimitiveFunction("global-set-key", "2", GlobalSetKeyImpl)
	golisp.MakePrimitiveFunction("kill-ring-length", "0", KillRingLengthImpl)
	golisp.MakePrimitiveFunction("word-at-point", "0", WordAtPointImpl)
}

// commandImpl calls a command. An integer argument is the numeric prefix
// and strings answer the questions the command would otherwise ask.
func commandImpl(name string) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, errNoEditor
		}
		cmdArgs := editor.Args{Count: 1}
		for a := args; !golisp.NilP(a); a = golisp.Cdr(a) {
			val := golisp.Car(a)
			switch {
			case golisp.IntegerP(val):
				cmdArgs.Count = int(golisp.IntegerValue(val))
				cmdArgs.Raw = true
			case golisp.StringP(val):
				cmdArgs.Strings = append(cmdArgs.Strings, golisp.StringValue(val))
			default:
				return nil, fmt.Errorf("%s: unexpected argument %s", name, golisp.String(val))
			}
		}
		result, err := current.Call(name, cmdArgs)
		if err != nil {
			return nil, err
		}
		return golisp.StringWithValue(result), nil
	}
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	if current == nil {
		return nil, errNoEditor
	}
	inserted, err := current.Current().Insert(golisp.StringValue(val))
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(inserted), nil
}

func GotoCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto-char requires an integer argument")
	}
	if current == nil {
		return nil, errNoEditor
	}
	b := current.Current()
	b.SetPoint(int(golisp.IntegerValue(val)))
	return golisp.IntegerWithValue(int64(b.Point())), nil
}

func PointImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return golisp.IntegerWithValue(int64(current.Current().Point())), nil
}

func MarkImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return golisp.IntegerWithValue(int64(current.Current().Mark())), nil
}

func BufferStringImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return golisp.StringWithValue(current.Current().Text()), nil
}

func BufferNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return golisp.StringWithValue(current.Current().Name()), nil
}

func MessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	val := golisp.Car(args)
	text := golisp.String(val)
	if golisp.StringP(val) {
		text = golisp.StringValue(val)
	}
	current.SetMessage("%s", text)
	return golisp.StringWithValue(text), nil
}

// GlobalSetKeyImpl binds a keychord such as "C-x C-r" to a command in the
// global keymap.
func GlobalSetKeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	keys, command := golisp.Car(args), golisp.Cadr(args)
	if !golisp.StringP(keys) || !golisp.StringP(command) {
		return nil, errors.New("global-set-key requires two string arguments")
	}
	if current == nil {
		return nil, errNoEditor
	}
	name := golisp.StringValue(command)
	if _, ok := current.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %s", editor.ErrUnknownCommand, name)
	}
	keychord := keymap.ParseKeychord(golisp.StringValue(keys))
	current.SetKeymap(current.Keymap().Bind(keychord, name))
	log.Info(log.CatKeymap, "bound key", "keys", keymap.FormatKeychord(keychord), "command", name)
	return command, nil
}

// WordAtPointImpl returns the word under or next to point, using the
// word delimiters of the buffer's mode.
func WordAtPointImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	b := current.Current()
	return golisp.StringWithValue(b.ThingAtPoint(b.Mode().WordPattern())), nil
}

func KillRingLengthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return golisp.IntegerWithValue(int64(current.KillRing.Len())), nil
}

// EvalString evaluates every expression in src and returns the value of
// the last one, printed.
func EvalString(src string) (string, error) {
	value, err := golisp.ParseAndEvalAll(src)
	if err != nil {
		log.ErrorErr(log.CatLisp, "evaluation failed", err)
		return "", err
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}

// EvalFile evaluates the lisp file at path.
func EvalFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	log.Info(log.CatLisp, "evaluating file", "path", path)
	return EvalString(string(src))
}

// EvalExpression reads a lisp expression, evaluates it, and shows the
// result in the echo area.
func EvalExpression(e *editor.Editor, args editor.Args) (string, error) {
	src, err := e.ReadArg(args, 0, "Eval: ", "")
	if err != nil {
		return "", err
	}
	if src == "" {
		return "", nil
	}
	result, err := EvalString(src)
	if err != nil {
		return "", err
	}
	e.SetMessage("%s", result)
	return result, nil
}
