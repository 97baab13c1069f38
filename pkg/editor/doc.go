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

// Package editor implements the editing state and commands of gomacs.
// An Editor holds the list of open buffers, the kill ring, the global
// keymap, and a registry of named commands. Keymaps bind keychords to
// command names; the commander resolves a keychord and asks the editor
// to execute the command it names. Commands can also be run by name
// from lisp, which makes every command scriptable.
//
// There is typically only one editor in a gomacs instance, and it is only
// ever touched by the goroutine reading keys.
package editor
