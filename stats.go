package bpe_playground

import (
	"strings"

	"github.com/wbrown/bpe_playground/types"
)

// WordCounts tallies whitespace delimited words, remembering the order in
// which each distinct word was first seen.
type WordCounts struct {
	counts map[string]int
	order  []string
}

func NewWordCounts() *WordCounts {
	return &WordCounts{counts: make(map[string]int)}
}

// Add credits `word` with `n` more occurrences.
func (wc *WordCounts) Add(word string, n int) {
	if _, ok := wc.counts[word]; !ok {
		wc.order = append(wc.order, word)
	}
	wc.counts[word] += n
}

func (wc *WordCounts) Count(word string) int {
	return wc.counts[word]
}

// Words returns the distinct words in first-seen order.
func (wc *WordCounts) Words() []string {
	return wc.order
}

func (wc *WordCounts) Len() int {
	return len(wc.order)
}

// Splits maps each distinct word to its live symbol sequence.
type Splits map[string]types.Symbols

// PairCounts is an explicit increment-or-insert mapping from adjacent pairs
// to aggregate frequency. Discovery order is kept so that ties resolve
// the same way on every run.
type PairCounts struct {
	counts map[types.Pair]int
	order  []types.Pair
}

func NewPairCounts() *PairCounts {
	return &PairCounts{counts: make(map[types.Pair]int)}
}

func (pc *PairCounts) Increment(pair types.Pair, n int) {
	if _, ok := pc.counts[pair]; !ok {
		pc.order = append(pc.order, pair)
	}
	pc.counts[pair] += n
}

// Count returns the aggregate frequency of `pair` and whether it occurs.
func (pc *PairCounts) Count(pair types.Pair) (int, bool) {
	count, ok := pc.counts[pair]
	return count, ok
}

// Pairs returns every pair in discovery order.
func (pc *PairCounts) Pairs() []types.Pair {
	return pc.order
}

func (pc *PairCounts) Len() int {
	return len(pc.order)
}

// Best returns the most frequent pair. Among pairs sharing the maximum
// frequency the first discovered one wins.
func (pc *PairCounts) Best() (best types.Pair, bestCount int, ok bool) {
	for _, pair := range pc.order {
		if count := pc.counts[pair]; !ok || count > bestCount {
			best, bestCount, ok = pair, count, true
		}
	}
	return best, bestCount, ok
}

// ComputeWordFrequencies splits `text` on whitespace, lowercasing it
// first when asked to, and tallies each word.
func ComputeWordFrequencies(text string, lowerCase bool) *WordCounts {
	if lowerCase {
		text = strings.ToLower(text)
	}
	wc := NewWordCounts()
	for _, word := range strings.Fields(text) {
		wc.Add(word, 1)
	}
	return wc
}

// ComputePairFrequencies walks the words in first-seen order, crediting
// every adjacent pair of each word's current split with the word's
// frequency.
func ComputePairFrequencies(words *WordCounts, splits Splits) *PairCounts {
	pc := NewPairCounts()
	for _, word := range words.Words() {
		freq := words.Count(word)
		symbols := splits[word]
		for idx := 0; idx < len(symbols)-1; idx++ {
			pc.Increment(types.Pair{
				Left:  symbols[idx],
				Right: symbols[idx+1]}, freq)
		}
	}
	return pc
}
