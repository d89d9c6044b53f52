package bpe_playground

import (
	"regexp"
	"strings"

	"github.com/wbrown/bpe_playground/types"
)

// A run of letters, digits and underscores, optionally joined to one more
// run by an apostrophe, or any other single non-space rune.
const WORD_REGEX = "[\\p{L}\\p{N}_]+(?:'[\\p{L}\\p{N}_]+)?|[^\\p{L}\\p{N}_\\s]"

var wordPattern = regexp.MustCompile(WORD_REGEX)

// WordTokenizer lowercases text and splits it into words and punctuation.
type WordTokenizer struct {
	boundary
}

func (tokenizer *WordTokenizer) Tokenize(text string) types.Tokens {
	return tokenizer.specials.wrap(
		wordPattern.FindAllString(strings.ToLower(text), -1))
}

// CharacterTokenizer emits every rune, whitespace included, as a token.
type CharacterTokenizer struct {
	boundary
}

func (tokenizer *CharacterTokenizer) Tokenize(text string) types.Tokens {
	content := make(types.Tokens, 0, len(text))
	for _, r := range text {
		content = append(content, string(r))
	}
	return tokenizer.specials.wrap(content)
}
