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
	"sort"
)

// Undefined is the command resolved for a keychord with no binding.
const Undefined = "undefined"

// A Node is either a leaf naming a command or a map of key tokens to
// child nodes.
type Node struct {
	command  string
	children map[string]*Node
}

func leaf(command string) *Node {
	return &Node{command: command}
}

func newNode() *Node {
	return &Node{children: make(map[string]*Node)}
}

// IsLeaf reports whether the node names a command.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Command returns the command name of a leaf.
func (n *Node) Command() string {
	return n.command
}

// Child returns the node bound to key, if any.
func (n *Node) Child(key string) (*Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// A Binding pairs a keychord with the command it runs.
type Binding struct {
	Keys    []string
	Command string
}

// A Keymap is the root of a tree of bindings.
type Keymap struct {
	root *Node
}

// Build folds bindings into a new keymap. When two bindings share a
// path, the later one wins; a binding whose path passes through an
// existing leaf replaces that leaf with a node.
func Build(bindings []Binding) *Keymap {
	root := newNode()
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		node := root
		for _, key := range b.Keys[:len(b.Keys)-1] {
			child, ok := node.children[key]
			if !ok || child.IsLeaf() {
				child = newNode()
				node.children[key] = child
			}
			node = child
		}
		node.children[b.Keys[len(b.Keys)-1]] = leaf(b.Command)
	}
	return &Keymap{root: root}
}

// Root returns the top node of the keymap.
func (k *Keymap) Root() *Node {
	return k.root
}

// Flatten lists every binding in the keymap, ordered by keychord.
// Nodes without leaves below them are dropped.
func (k *Keymap) Flatten() []Binding {
	bindings := make([]Binding, 0)
	var walk func(n *Node, path []string)
	walk = func(n *Node, path []string) {
		keys := make([]string, 0, len(n.children))
		for key := range n.children {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			child := n.children[key]
			childPath := append(append([]string{}, path...), key)
			if child.IsLeaf() {
				bindings = append(bindings, Binding{Keys: childPath, Command: child.command})
			} else {
				walk(child, childPath)
			}
		}
	}
	walk(k.root, nil)
	return bindings
}

// Commands lists the leaves of the keymap in keychord order.
func (k *Keymap) Commands() []string {
	bindings := k.Flatten()
	commands := make([]string, len(bindings))
	for i, b := range bindings {
		commands[i] = b.Command
	}
	return commands
}

// Merge combines two keymaps. Where both bind the same path, b wins.
func Merge(a, b *Keymap) *Keymap {
	if a == nil {
		a = Build(nil)
	}
	if b == nil {
		b = Build(nil)
	}
	return Build(append(a.Flatten(), b.Flatten()...))
}

// ReplaceLeaves rebuilds k with every command satisfying pred replaced
// by replacement.
func ReplaceLeaves(k *Keymap, pred func(command string) bool, replacement string) *Keymap {
	bindings := k.Flatten()
	for i := range bindings {
		if pred(bindings[i].Command) {
			bindings[i].Command = replacement
		}
	}
	return Build(bindings)
}

// Bind returns a copy of k with keys bound to command.
func (k *Keymap) Bind(keys []string, command string) *Keymap {
	return Merge(k, Build([]Binding{{Keys: keys, Command: command}}))
}

// Resolve walks keychord down from node. A leaf resolves to its command
// even if keys remain; the remaining keys are dropped. A key with no
// binding resolves to Undefined. If the keys run out on an inner node,
// the keychord is incomplete and complete is false.
func Resolve(keychord []string, node *Node) (command string, complete bool) {
	for {
		if node.IsLeaf() {
			return node.command, true
		}
		if len(keychord) == 0 {
			return "", false
		}
		child, ok := node.children[keychord[0]]
		if !ok {
			child = leaf(Undefined)
		}
		node = child
		keychord = keychord[1:]
	}
}

// Resolve resolves keychord from the root of the keymap.
func (k *Keymap) Resolve(keychord []string) (string, bool) {
	return Resolve(keychord, k.root)
}

// Lookup returns the command bound to exactly keys.
func (k *Keymap) Lookup(keys []string) (string, bool) {
	node := k.root
	for _, key := range keys {
		if node.IsLeaf() {
			return "", false
		}
		child, ok := node.children[key]
		if !ok {
			return "", false
		}
		node = child
	}
	if !node.IsLeaf() {
		return "", false
	}
	return node.command, true
}
