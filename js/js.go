package main

//go:generate gopherjs build --minify

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
	"github.com/wbrown/bpe_playground"
	"github.com/wbrown/bpe_playground/types"
)

// Tokenize is the entry point for the browser playground. Errors come
// back as a single-element array holding the message, so the page can
// show them inline.
func Tokenize(text string, strategy string, merges int) []string {
	parsed, err := bpe_playground.ParseStrategy(strategy)
	if err != nil {
		return []string{err.Error()}
	}
	opts := bpe_playground.DefaultOptions()
	opts.Merges = merges
	tokens, err := bpe_playground.Tokenize(text, parsed, opts)
	if err != nil {
		return []string{err.Error()}
	}
	return tokens
}

func AssignIds(tokens []string) []uint32 {
	ids, _ := bpe_playground.AssignTokenIds(types.Tokens(tokens),
		bpe_playground.DEFAULT_ID_BASE)
	out := make([]uint32, len(ids))
	for idx, id := range ids {
		out[idx] = uint32(id)
	}
	return out
}

func init() {
	js.Module.Get("exports").Set("tokenize", Tokenize)
	js.Module.Get("exports").Set("assignIds", AssignIds)
	log.Printf("BPE playground loaded")
}

func main() {

}
