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
package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultResolve(t *testing.T) {
	k := Default()
	tests := []struct {
		keys     string
		want     string
		complete bool
	}{
		{"C-x C-f", "find-file", true},
		{"C-x q", Undefined, true},
		{"C-x", "", false},
		{"C-f", "forward-char", true},
		{"M-DEL", "backward-kill-word", true},
		{"C-SPC", "set-mark-command", true},
		{"SPC", "self-insert-command", true},
		{"a", "self-insert-command", true},
		{"C-q", Undefined, true},
		{"C-q C-x", Undefined, true},
		{"C-c m", "markov-insert", true},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			command, complete := k.Resolve(ParseKeychord(tt.keys))
			assert.Equal(t, tt.complete, complete)
			assert.Equal(t, tt.want, command)
		})
	}
}

func TestResolveLeafIgnoresRemainingKeys(t *testing.T) {
	command, complete := Resolve(nil, leaf("yank"))
	assert.True(t, complete)
	assert.Equal(t, "yank", command)

	command, complete = Default().Resolve([]string{"C-f", "C-x", "C-f"})
	assert.True(t, complete)
	assert.Equal(t, "forward-char", command)
}

func TestResolveEmptyKeychordIsIncomplete(t *testing.T) {
	_, complete := Default().Resolve(nil)
	assert.False(t, complete)
}

func TestBuildLaterBindingWins(t *testing.T) {
	k := Build([]Binding{
		{Keys: []string{"C-a"}, Command: "first"},
		{Keys: []string{"C-a"}, Command: "second"},
		{Keys: []string{"C-x", "C-a"}, Command: "prefixed"},
	})
	command, ok := k.Lookup([]string{"C-a"})
	require.True(t, ok)
	assert.Equal(t, "second", command)

	// A longer binding through an existing leaf turns it into a prefix.
	k = Build([]Binding{
		{Keys: []string{"C-c"}, Command: "leaf"},
		{Keys: []string{"C-c", "x"}, Command: "nested"},
	})
	_, ok = k.Lookup([]string{"C-c"})
	assert.False(t, ok)
	command, ok = k.Lookup([]string{"C-c", "x"})
	require.True(t, ok)
	assert.Equal(t, "nested", command)

	// A shorter binding replaces the prefix.
	k = Build([]Binding{
		{Keys: []string{"C-c", "x"}, Command: "nested"},
		{Keys: []string{"C-c"}, Command: "leaf"},
	})
	command, ok = k.Lookup([]string{"C-c"})
	require.True(t, ok)
	assert.Equal(t, "leaf", command)
}

func TestFlatten(t *testing.T) {
	k := Build([]Binding{
		{Keys: []string{"b"}, Command: "two"},
		{Keys: []string{"C-x", "a"}, Command: "three"},
		{Keys: []string{"a"}, Command: "one"},
	})
	assert.Equal(t, []Binding{
		{Keys: []string{"C-x", "a"}, Command: "three"},
		{Keys: []string{"a"}, Command: "one"},
		{Keys: []string{"b"}, Command: "two"},
	}, k.Flatten())
	assert.Equal(t, []string{"three", "one", "two"}, k.Commands())
}

func TestMerge(t *testing.T) {
	a := Build([]Binding{
		{Keys: []string{"C-a"}, Command: "a-only"},
		{Keys: []string{"C-x", "C-f"}, Command: "from-a"},
	})
	b := Build([]Binding{
		{Keys: []string{"C-x", "C-f"}, Command: "from-b"},
		{Keys: []string{"C-b"}, Command: "b-only"},
	})
	merged := Merge(a, b)
	for keys, want := range map[string]string{
		"C-a":     "a-only",
		"C-b":     "b-only",
		"C-x C-f": "from-b",
	} {
		command, ok := merged.Lookup(ParseKeychord(keys))
		require.True(t, ok, keys)
		assert.Equal(t, want, command, keys)
	}

	assert.Equal(t, a.Flatten(), Merge(a, nil).Flatten())
	assert.Equal(t, b.Flatten(), Merge(nil, b).Flatten())
}

func TestMergePriority(t *testing.T) {
	keyGen := rapid.SampledFrom([]string{"a", "b", "C-x", "C-c", "M-f"})
	bindingGen := rapid.Custom(func(t *rapid.T) Binding {
		return Binding{
			Keys:    rapid.SliceOfN(keyGen, 1, 3).Draw(t, "keys"),
			Command: rapid.SampledFrom([]string{"one", "two", "three"}).Draw(t, "command"),
		}
	})
	rapid.Check(t, func(rt *rapid.T) {
		a := Build(rapid.SliceOf(bindingGen).Draw(rt, "a"))
		b := Build(rapid.SliceOf(bindingGen).Draw(rt, "b"))
		merged := Merge(a, b)
		for _, binding := range b.Flatten() {
			command, ok := merged.Lookup(binding.Keys)
			if !ok || command != binding.Command {
				rt.Fatalf("%v resolved to %q, want %q", binding.Keys, command, binding.Command)
			}
		}
	})
}

func TestResolveIsDeterministic(t *testing.T) {
	k := Default()
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfN(rapid.SampledFrom([]string{"C-x", "C-f", "b", "q", "C-c", "m"}), 0, 4).Draw(rt, "keys")
		c1, ok1 := k.Resolve(keys)
		c2, ok2 := k.Resolve(keys)
		if c1 != c2 || ok1 != ok2 {
			rt.Fatalf("resolve of %v changed from %q to %q", keys, c1, c2)
		}
	})
}

func TestReplaceLeaves(t *testing.T) {
	k := ReplaceLeaves(Default(), func(command string) bool {
		return command == "find-file" || command == "kill-editor"
	}, Undefined)

	command, _ := k.Resolve(ParseKeychord("C-x C-f"))
	assert.Equal(t, Undefined, command)
	command, _ = k.Resolve(ParseKeychord("C-x C-c"))
	assert.Equal(t, Undefined, command)
	command, _ = k.Resolve(ParseKeychord("C-x C-s"))
	assert.Equal(t, "save-buffer", command)

	// the original is untouched
	command, _ = Default().Resolve(ParseKeychord("C-x C-f"))
	assert.Equal(t, "find-file", command)
}

func TestBindDoesNotMutate(t *testing.T) {
	k := Default()
	rebound := k.Bind(ParseKeychord("C-x C-r"), "find-file")

	command, ok := rebound.Lookup(ParseKeychord("C-x C-r"))
	require.True(t, ok)
	assert.Equal(t, "find-file", command)
	_, ok = k.Lookup(ParseKeychord("C-x C-r"))
	assert.False(t, ok)
}

func TestParseAndFormatKeychord(t *testing.T) {
	assert.Equal(t, []string{"C-x", "C-f"}, ParseKeychord("C-x C-f"))
	assert.Equal(t, []string{"C- "}, ParseKeychord("C-SPC"))
	assert.Equal(t, []string{" "}, ParseKeychord("SPC"))
	assert.Empty(t, ParseKeychord("   "))
	assert.Equal(t, "C-x C-SPC", FormatKeychord([]string{"C-x", "C- "}))
	assert.Equal(t, "M-x", FormatKeychord([]string{"M-x"}))
}
