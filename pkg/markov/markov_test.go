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
package markov

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndsSentence(t *testing.T) {
	assert.True(t, EndsSentence("end."))
	assert.True(t, EndsSentence("what?"))
	assert.True(t, EndsSentence("wow!"))
	assert.False(t, EndsSentence("comma,"))
	assert.False(t, EndsSentence(""))
}

func TestBuildChain(t *testing.T) {
	assert.Equal(t, Chain{"": {""}}, BuildChain(nil))

	chain := BuildChain(strings.Fields("the cat sat. the dog ran"))
	assert.Equal(t, Chain{
		"":     {"the", "the"},
		"the":  {"cat", "dog"},
		"cat":  {"sat."},
		"sat.": {""},
		"dog":  {"ran"},
		"ran":  {""},
	}, chain)
}

func TestGenerateSentence(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	chain := BuildChain(strings.Fields("the cat sat. the dog ran"))
	allowed := map[string]bool{
		"the cat sat.": true,
		"the dog ran":  true,
	}
	for range 20 {
		sentence := GenerateSentence(chain, rng)
		assert.True(t, allowed[sentence], sentence)
	}
}

func TestGenerateSentenceIsBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	chain := Chain{"": {"a"}, "a": {"a"}}
	assert.Len(t, strings.Fields(GenerateSentence(chain, rng)), MaxWords)
}

func TestGenerateFromText(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	assert.Equal(t, "", GenerateFromText("Some text.", 0, rng))
	assert.Equal(t, "", GenerateFromText("Some text.", -2, rng))
	assert.Equal(t, "Some text. Some text. Some text.", GenerateFromText("Some text.", 3, rng))
}
