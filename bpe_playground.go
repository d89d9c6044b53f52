package bpe_playground

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru"
	"github.com/wbrown/bpe_playground/types"
)

const SEGMENT_LRU_SZ = 16384
const DEFAULT_MERGES = 10
const END_OF_WORD = "</w>"
const START_TOKEN = "<start>"
const END_TOKEN = "<end-of-sequence>"

type Strategy uint8

const (
	StrategyWord Strategy = iota
	StrategyCharacter
	StrategySubword
	StrategySentence
)

func (s Strategy) String() string {
	switch s {
	case StrategyWord:
		return "word"
	case StrategyCharacter:
		return "character"
	case StrategySubword:
		return "subword"
	case StrategySentence:
		return "sentence"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy
// Maps a strategy name, as typed by a user, to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "word", "word-based":
		return StrategyWord, nil
	case "character", "char", "character-based":
		return StrategyCharacter, nil
	case "subword", "bpe", "bpe-encoding":
		return StrategySubword, nil
	case "sentence":
		return StrategySentence, nil
	}
	return 0, fmt.Errorf("unknown tokenizer strategy `%s`", name)
}

// SpecialTokens are the boundary markers every token sequence is wrapped
// with.
type SpecialTokens struct {
	Start string
	End   string
}

func DefaultSpecialTokens() SpecialTokens {
	return SpecialTokens{Start: START_TOKEN, End: END_TOKEN}
}

func (specials SpecialTokens) validate(endOfWord string) error {
	if specials.Start == "" || specials.End == "" {
		return errors.New("start and end markers must be non-empty")
	}
	if specials.Start == specials.End {
		return fmt.Errorf("start and end markers are both `%s`",
			specials.Start)
	}
	for _, marker := range []string{specials.Start, specials.End} {
		if strings.IndexFunc(marker, unicode.IsSpace) != -1 {
			return fmt.Errorf("marker `%s` contains whitespace", marker)
		}
		if endOfWord != "" && strings.HasSuffix(marker, endOfWord) {
			return fmt.Errorf("marker `%s` ends with the end-of-word "+
				"symbol `%s`", marker, endOfWord)
		}
	}
	return nil
}

func (specials SpecialTokens) isMarker(token types.Token) bool {
	return token == specials.Start || token == specials.End
}

// wrap brackets `content` with the markers. A content token that equals a
// marker is broken into its runes; only runes that are themselves markers
// are dropped.
func (specials SpecialTokens) wrap(content types.Tokens) types.Tokens {
	tokens := make(types.Tokens, 0, len(content)+2)
	tokens = append(tokens, specials.Start)
	for _, token := range content {
		if !specials.isMarker(token) {
			tokens = append(tokens, token)
			continue
		}
		for _, r := range token {
			if char := string(r); !specials.isMarker(char) {
				tokens = append(tokens, char)
			}
		}
	}
	return append(tokens, specials.End)
}

// Options configures a tokenizer. The merge budget, minimum frequency,
// end-of-word symbol and cache size only matter to the subword strategy.
type Options struct {
	Merges       int
	MinFrequency int
	EndOfWord    string
	LowerCase    bool
	Specials     SpecialTokens
	CacheSize    int
	Verbose      bool
}

func DefaultOptions() Options {
	return Options{
		Merges:       DEFAULT_MERGES,
		MinFrequency: 0,
		EndOfWord:    END_OF_WORD,
		LowerCase:    false,
		Specials:     DefaultSpecialTokens(),
		CacheSize:    SEGMENT_LRU_SZ,
	}
}

// normalized clamps the budgets to zero and fills in a cache size.
func (opts Options) normalized() Options {
	if opts.Merges < 0 {
		opts.Merges = 0
	}
	if opts.MinFrequency < 0 {
		opts.MinFrequency = 0
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = SEGMENT_LRU_SZ
	}
	return opts
}

// Tokenizer is the contract shared by every strategy: the returned tokens
// always start with the start marker and end with the end marker.
type Tokenizer interface {
	Tokenize(text string) types.Tokens
}

// NewTokenizer
// Returns a Tokenizer for `strategy` configured by `opts`.
func NewTokenizer(strategy Strategy, opts Options) (Tokenizer, error) {
	opts = opts.normalized()
	if err := opts.Specials.validate(opts.EndOfWord); err != nil {
		return nil, err
	}
	base := newBoundary(opts.Specials)
	switch strategy {
	case StrategyWord:
		return &WordTokenizer{base}, nil
	case StrategyCharacter:
		return &CharacterTokenizer{base}, nil
	case StrategySubword:
		return &SubwordTokenizer{boundary: base, opts: opts}, nil
	case StrategySentence:
		return newSentenceTokenizer(base)
	}
	return nil, fmt.Errorf("unknown tokenizer strategy %v", strategy)
}

// Tokenize
// Splits `text` into tokens with `strategy`, wrapped in the configured
// markers.
func Tokenize(text string, strategy Strategy, opts Options) (
	types.Tokens, error) {
	tokenizer, err := NewTokenizer(strategy, opts)
	if err != nil {
		return nil, err
	}
	return tokenizer.Tokenize(text), nil
}

// boundary wraps content with the markers. The subword strategy also
// scrubs literal markers out of its input so that merges cannot rebuild
// one from its characters. Input is scrubbed again after
// lowercasing, which can spell out a marker.
type boundary struct {
	specials SpecialTokens
	tree     *RuneNode
}

func newBoundary(specials SpecialTokens) boundary {
	return boundary{
		specials: specials,
		tree:     NewRuneTree([]string{specials.Start, specials.End}),
	}
}

func (b boundary) scrub(text string) string {
	return b.tree.Replace(text, " ")
}

// Model is a set of merge rules learned from one corpus, together with
// the statistics gathered while learning them. The segmentation cache is
// the only mutable state; a Model is meant to live for a single request.
type Model struct {
	Merges      types.Merges
	Vocab       *Vocabulary
	Words       *WordCounts
	Splits      Splits
	endOfWord   string
	lowerCase   bool
	Cache       *lru.ARCCache
	CacheHits   int
	CacheMisses int
}

// Train
// Learns up to `opts.Merges` merge rules, treating `text` as the corpus.
func Train(text string, opts Options) *Model {
	opts = opts.normalized()
	words := ComputeWordFrequencies(text, opts.LowerCase)
	splits := InitialSplits(words, opts.EndOfWord)
	merges, vocab := learnMerges(words, splits, opts.Merges,
		opts.MinFrequency, opts.Verbose)
	if opts.Verbose {
		log.Printf("learned %d/%d merges over %d distinct words, "+
			"vocab=%d", len(merges), opts.Merges, words.Len(), vocab.Len())
	}
	cache, cacheErr := lru.NewARC(opts.CacheSize)
	if cacheErr != nil {
		// Only a non-positive size fails, and normalized rules that out.
		panic(fmt.Sprintf("segment cache of size %d: %v", opts.CacheSize,
			cacheErr))
	}
	return &Model{
		Merges:    merges,
		Vocab:     vocab,
		Words:     words,
		Splits:    splits,
		endOfWord: opts.EndOfWord,
		lowerCase: opts.LowerCase,
		Cache:     cache,
	}
}

// Segment returns the symbols `word` breaks into under the model's merge
// rules. The result is shared with the cache and must not be modified.
func (model *Model) Segment(word string) types.Symbols {
	if model.lowerCase {
		word = strings.ToLower(word)
	}
	if cached, ok := model.Cache.Get(word); ok {
		model.CacheHits++
		return cached.(types.Symbols)
	}
	model.CacheMisses++
	symbols := ApplyMerges(word, model.Merges, model.endOfWord)
	model.Cache.Add(word, symbols)
	return symbols
}

// Encode segments every whitespace delimited word of `text`, left to
// right, and concatenates the results. No markers are added.
func (model *Model) Encode(text string) types.Tokens {
	if model.lowerCase {
		text = strings.ToLower(text)
	}
	tokens := make(types.Tokens, 0, len(text))
	for _, word := range strings.Fields(text) {
		for _, symbol := range model.Segment(word) {
			tokens = append(tokens, string(symbol))
		}
	}
	return tokens
}

// SubwordTokenizer trains a fresh Model on every input and segments the
// input with it.
type SubwordTokenizer struct {
	boundary
	opts Options
}

func (tokenizer *SubwordTokenizer) Tokenize(text string) types.Tokens {
	tokens, _ := tokenizer.TokenizeWithModel(text)
	return tokens
}

// TokenizeWithModel is Tokenize that also hands back the Model it
// trained, for callers that want to show the merges or vocabulary.
func (tokenizer *SubwordTokenizer) TokenizeWithModel(text string) (
	types.Tokens, *Model) {
	text = tokenizer.scrub(text)
	if tokenizer.opts.LowerCase {
		text = tokenizer.scrub(strings.ToLower(text))
	}
	model := Train(text, tokenizer.opts)
	return tokenizer.specials.wrap(model.Encode(text)), model
}

// TokenizeWith segments `text` with an already trained `model`.
func (tokenizer *SubwordTokenizer) TokenizeWith(model *Model,
	text string) types.Tokens {
	text = tokenizer.scrub(text)
	if model.lowerCase {
		text = tokenizer.scrub(strings.ToLower(text))
	}
	return tokenizer.specials.wrap(model.Encode(text))
}
