package bpe_playground

import "github.com/wbrown/bpe_playground/types"

const DEFAULT_ID_BASE = 100

// AssignTokenIds
// Numbers each distinct token in order of first appearance, starting at
// `base`, and returns the id of every token alongside the mapping.
func AssignTokenIds(tokens types.Tokens, base types.TokenId) (
	types.TokenIds, types.TokenMap) {
	vocab := make(types.TokenMap, len(tokens))
	ids := make(types.TokenIds, 0, len(tokens))
	next := base
	for _, token := range tokens {
		id, ok := vocab[token]
		if !ok {
			id = next
			vocab[token] = id
			next++
		}
		ids = append(ids, id)
	}
	return ids, vocab
}
