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

// Package keymap maps keychords to command names.
// A keymap is a prefix tree: each node maps one key token to either a
// command name (a leaf) or another node, so multi-key bindings such as
// "C-x C-f" share the "C-x" node. Keymaps are never changed once built;
// rebinding a key builds a new keymap.
package keymap
