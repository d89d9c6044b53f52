package bpe_playground

import (
	"log"

	"github.com/wbrown/bpe_playground/types"
)

// Vocabulary maps symbols to an aggregate frequency, for inspection only.
// Segmentation never consults it.
type Vocabulary struct {
	counts map[types.Symbol]int
	order  []types.Symbol
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{counts: make(map[types.Symbol]int)}
}

func (v *Vocabulary) add(symbol types.Symbol, n int) {
	if _, ok := v.counts[symbol]; !ok {
		v.order = append(v.order, symbol)
	}
	v.counts[symbol] += n
}

func (v *Vocabulary) set(symbol types.Symbol, n int) {
	if _, ok := v.counts[symbol]; !ok {
		v.order = append(v.order, symbol)
	}
	v.counts[symbol] = n
}

func (v *Vocabulary) Count(symbol types.Symbol) (int, bool) {
	count, ok := v.counts[symbol]
	return count, ok
}

// Symbols returns the vocabulary in insertion order: initial symbols
// first, then merged symbols in the order they were learned.
func (v *Vocabulary) Symbols() types.Symbols {
	return v.order
}

func (v *Vocabulary) Len() int {
	return len(v.order)
}

// seedVocabulary credits every initial symbol with the frequency of each
// word it appears in.
func seedVocabulary(words *WordCounts, splits Splits) *Vocabulary {
	vocab := NewVocabulary()
	for _, word := range words.Words() {
		freq := words.Count(word)
		for _, symbol := range splits[word] {
			vocab.add(symbol, freq)
		}
	}
	return vocab
}

// InitialSplits returns each word of `words` split into its initial
// symbols.
func InitialSplits(words *WordCounts, endOfWord string) Splits {
	splits := make(Splits, words.Len())
	for _, word := range words.Words() {
		splits[word] = InitialSymbols(word, endOfWord)
	}
	return splits
}

// LearnMerges learns up to `maxMerges` merge rules from `splits`, which
// it rewrites in place so that on return it holds the final segmentation
// of every word. Each step merges the most frequent adjacent pair; ties
// go to the pair discovered first when scanning words in first-seen order
// and symbols left to right. When `minFrequency` is positive, learning
// stops as soon as the best pair is rarer than it.
func LearnMerges(words *WordCounts, splits Splits, maxMerges int,
	minFrequency int) (types.Merges, *Vocabulary) {
	return learnMerges(words, splits, maxMerges, minFrequency, false)
}

func learnMerges(words *WordCounts, splits Splits, maxMerges int,
	minFrequency int, verbose bool) (types.Merges, *Vocabulary) {
	vocab := seedVocabulary(words, splits)
	if maxMerges <= 0 {
		return types.Merges{}, vocab
	}

	merges := make(types.Merges, 0, maxMerges)
	for step := 0; step < maxMerges; step++ {
		pairs := ComputePairFrequencies(words, splits)
		best, bestCount, ok := pairs.Best()
		if !ok {
			if verbose {
				log.Printf("stopped at merge %d: no pairs left", step)
			}
			break
		}
		if minFrequency > 0 && bestCount < minFrequency {
			if verbose {
				log.Printf("stopped at merge %d: max pair freq = %d",
					step, bestCount)
			}
			break
		}

		merges = append(merges, best)
		for _, word := range words.Words() {
			splits[word] = mergePair(splits[word], best)
		}
		vocab.set(best.Merged(), bestCount)

		if verbose {
			log.Printf("merge %d/%d  %q + %q -> %q  freq=%d",
				step+1, maxMerges, best.Left, best.Right, best.Merged(),
				bestCount)
		}
	}
	return merges, vocab
}
