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
// Package markov generates nonsense sentences from sample text using a
// first-order Markov chain over words.
package markov

import (
	"math/rand/v2"
	"strings"
)

// MaxWords bounds the length of a generated sentence. Chains built from
// text with no sentence endings can otherwise cycle for a long time.
const MaxWords = 200

// A Chain maps each word to the words seen after it. The empty word
// stands for the start and the end of a sentence.
type Chain map[string][]string

// EndsSentence reports whether word ends with '.', '?' or '!'.
func EndsSentence(word string) bool {
	return word != "" && strings.ContainsAny(word[len(word)-1:], ".?!")
}

// BuildChain builds a chain from words in order. The last word is
// treated as ending a sentence whether or not it has punctuation.
func BuildChain(words []string) Chain {
	if len(words) == 0 {
		return Chain{"": {""}}
	}
	chain := Chain{"": {words[0]}}
	for i, word := range words[:len(words)-1] {
		next := words[i+1]
		if EndsSentence(word) {
			chain[word] = []string{""}
			chain[""] = append(chain[""], next)
			continue
		}
		chain[word] = append(chain[word], next)
	}
	last := words[len(words)-1]
	chain[last] = append(chain[last], "")
	return chain
}

// GenerateSentence walks the chain from the start of a sentence until it
// reaches an end or MaxWords words.
func GenerateSentence(chain Chain, rng *rand.Rand) string {
	var words []string
	word := ""
	for len(words) < MaxWords {
		choices := chain[word]
		if len(choices) == 0 {
			break
		}
		word = choices[rng.IntN(len(choices))]
		if word == "" {
			break
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}

// GenerateFromText trains a chain on the words of text and returns n
// sentences separated by spaces. n <= 0 gives "".
func GenerateFromText(text string, n int, rng *rand.Rand) string {
	chain := BuildChain(strings.Fields(text))
	sentences := make([]string, 0, max(0, n))
	for range n {
		sentences = append(sentences, GenerateSentence(chain, rng))
	}
	return strings.Join(sentences, " ")
}
