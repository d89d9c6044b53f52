//go:build wasip1 || js

package bpe_playground

import "errors"

func newSentenceTokenizer(base boundary) (Tokenizer, error) {
	return nil, errors.New("sentence strategy is not implemented")
}
