package bpe_playground

import (
	"github.com/wbrown/bpe_playground/types"
)

// InitialSymbols splits `word` into one symbol per rune, followed by
// `endOfWord` when it is non-empty. An empty word has no symbols.
func InitialSymbols(word string, endOfWord string) types.Symbols {
	if len(word) == 0 {
		return types.Symbols{}
	}
	symbols := make(types.Symbols, 0, len(word)+1)
	for _, r := range word {
		symbols = append(symbols, types.Symbol(r))
	}
	if endOfWord != "" {
		symbols = append(symbols, types.Symbol(endOfWord))
	}
	return symbols
}

// mergePair does one left to right pass over `symbols`, replacing every
// non-overlapping occurrence of `pair` with its concatenation. The input
// is returned untouched when the pair does not occur.
func mergePair(symbols types.Symbols, pair types.Pair) types.Symbols {
	found := false
	for idx := 0; idx < len(symbols)-1; idx++ {
		if symbols[idx] == pair.Left && symbols[idx+1] == pair.Right {
			found = true
			break
		}
	}
	if !found {
		return symbols
	}

	merged := pair.Merged()
	newSymbols := make(types.Symbols, 0, len(symbols)-1)
	i := 0
	for i < len(symbols) {
		if i < len(symbols)-1 &&
			symbols[i] == pair.Left &&
			symbols[i+1] == pair.Right {
			newSymbols = append(newSymbols, merged)
			i += 2
		} else {
			newSymbols = append(newSymbols, symbols[i])
			i += 1
		}
	}
	return newSymbols
}

// ApplyMerges segments `word` by applying each rule of `merges`, in the
// order they were learned, to the word's initial symbols. `endOfWord` must
// match the marker used when the rules were learned.
func ApplyMerges(word string, merges types.Merges,
	endOfWord string) types.Symbols {
	return applyMergesTo(InitialSymbols(word, endOfWord), merges)
}

func applyMergesTo(symbols types.Symbols,
	merges types.Merges) types.Symbols {
	for _, merge := range merges {
		if len(symbols) < 2 {
			break
		}
		symbols = mergePair(symbols, merge)
	}
	return symbols
}
