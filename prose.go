//go:build !wasip1 && !js

package bpe_playground

import (
	"log"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/wbrown/bpe_playground/types"
)

// SentenceTokenizer emits one token per sentence.
type SentenceTokenizer struct {
	boundary
}

func newSentenceTokenizer(base boundary) (Tokenizer, error) {
	return &SentenceTokenizer{base}, nil
}

func (tokenizer *SentenceTokenizer) Tokenize(text string) types.Tokens {
	content := make(types.Tokens, 0)
	if strings.TrimSpace(text) == "" {
		return tokenizer.specials.wrap(content)
	}
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		log.Printf("sentence segmentation failed, keeping text whole: %v",
			err)
		return tokenizer.specials.wrap(types.Tokens{strings.TrimSpace(text)})
	}
	for _, sentence := range doc.Sentences() {
		if trimmed := strings.TrimSpace(sentence.Text); trimmed != "" {
			content = append(content, trimmed)
		}
	}
	return tokenizer.specials.wrap(content)
}
