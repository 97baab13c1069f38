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

// Package buffer implements the text buffers edited by gomacs.
// A buffer owns its text and tracks two offsets into it: point, the
// cursor, and mark, the other end of the region. Every edit keeps both
// offsets inside the text, so commands can move and delete freely
// without checking bounds themselves.
//
// Text is held as a flat sequence of code points; columns count code
// points, not display cells.
package buffer
