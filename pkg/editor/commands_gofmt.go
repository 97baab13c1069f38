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
	"fmt"
	"go/format"
	"strings"

	"github.com/timburks/gomacs/pkg/log"
)

// GofmtBuffer reformats the current buffer as Go source. Source with
// syntax errors is left alone and the first error is shown.
func GofmtBuffer(e *Editor, args Args) (string, error) {
	b := e.ActiveBuffer()
	src := b.Text()
	out, err := format.Source([]byte(src))
	if err != nil {
		msg := strings.SplitN(err.Error(), "\n", 2)[0]
		log.Warn(log.CatBuffer, "gofmt failed", "name", b.Name(), "error", err)
		return "", fmt.Errorf("%s: %s", b.Name(), msg)
	}
	if string(out) == src {
		e.SetMessage("(No changes)")
		return src, nil
	}
	if err := b.Replace(string(out)); err != nil {
		return "", err
	}
	return string(out), nil
}
