package bpe_playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/bpe_playground/resources"
	"github.com/wbrown/bpe_playground/types"
)

var sampleText = string(*resources.GetEmbeddedResource("sample.txt"))

type TokenizeTest struct {
	Name     string
	Input    string
	Strategy Strategy
	Merges   int
	Expected types.Tokens
}

var TokenizeTests = []TokenizeTest{
	{"word sample", sampleText, StrategyWord, 0, types.Tokens{
		START_TOKEN, "ishaan", "this", "side", ",", "let's", "tokenize",
		"this", "sentence", ".", END_TOKEN}},
	{"word punctuation runs", "Hi!! (ok)", StrategyWord, 0, types.Tokens{
		START_TOKEN, "hi", "!", "!", "(", "ok", ")", END_TOKEN}},
	{"character keeps spaces", "ab c", StrategyCharacter, 0, types.Tokens{
		START_TOKEN, "a", "b", " ", "c", END_TOKEN}},
	{"character runes", "hé", StrategyCharacter, 0, types.Tokens{
		START_TOKEN, "h", "é", END_TOKEN}},
	{"subword no merges", "ab a", StrategySubword, 0, types.Tokens{
		START_TOKEN, "a", "b", "</w>", "a", "</w>", END_TOKEN}},
	{"subword greedy", "aaa", StrategySubword, 1, types.Tokens{
		START_TOKEN, "aa", "a", "</w>", END_TOKEN}},
	{"subword low lower", "low lower lower", StrategySubword, 2,
		types.Tokens{START_TOKEN, "low", "</w>", "low", "e", "r", "</w>",
			"low", "e", "r", "</w>", END_TOKEN}},
	{"subword empty", "", StrategySubword, 10, types.Tokens{
		START_TOKEN, END_TOKEN}},
	{"word empty", "", StrategyWord, 0, types.Tokens{
		START_TOKEN, END_TOKEN}},
	{"character empty", "", StrategyCharacter, 0, types.Tokens{
		START_TOKEN, END_TOKEN}},
	{"character keeps marker text", "a<start>b", StrategyCharacter, 0,
		types.Tokens{START_TOKEN, "a", "<", "s", "t", "a", "r", "t", ">",
			"b", END_TOKEN}},
	{"word keeps marker text", "a<start>b", StrategyWord, 0,
		types.Tokens{START_TOKEN, "a", "<", "start", ">", "b", END_TOKEN}},
	{"marker literal splits words", "x<end-of-sequence>y", StrategySubword,
		0, types.Tokens{START_TOKEN, "x", "</w>", "y", "</w>", END_TOKEN}},
}

func TestTokenize(t *testing.T) {
	for _, test := range TokenizeTests {
		t.Run(test.Name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Merges = test.Merges
			tokens, err := Tokenize(test.Input, test.Strategy, opts)
			require.NoError(t, err)
			assert.Equal(t, test.Expected, tokens)
		})
	}
}

func TestTokenize_SubwordLowLower(t *testing.T) {
	opts := DefaultOptions()
	opts.Merges = 10
	tokens, err := Tokenize(lowLowerCorpus, StrategySubword, opts)
	require.NoError(t, err)
	assert.Len(t, tokens, 30)
	assert.Equal(t, types.Tokens{START_TOKEN, "low</w>"}, tokens[:2])
	assert.Equal(t, types.Tokens{"wi", "d", "est</w>", END_TOKEN},
		tokens[len(tokens)-4:])
}

func TestTokenize_NegativeBudgetIsZero(t *testing.T) {
	opts := DefaultOptions()
	opts.Merges = -5
	negative, err := Tokenize("low lower", StrategySubword, opts)
	require.NoError(t, err)
	opts.Merges = 0
	zero, err := Tokenize("low lower", StrategySubword, opts)
	require.NoError(t, err)
	assert.Equal(t, zero, negative)
}

func TestTokenize_LowerCaseSubword(t *testing.T) {
	opts := DefaultOptions()
	opts.Merges = 1
	opts.LowerCase = true
	tokens, err := Tokenize("AB ab", StrategySubword, opts)
	require.NoError(t, err)
	assert.Equal(t, types.Tokens{START_TOKEN, "ab", "</w>", "ab", "</w>",
		END_TOKEN}, tokens)
}

func TestTokenize_NoEndOfWord(t *testing.T) {
	opts := DefaultOptions()
	opts.Merges = 2
	opts.EndOfWord = ""
	tokens, err := Tokenize("abc abc", StrategySubword, opts)
	require.NoError(t, err)
	assert.Equal(t, types.Tokens{START_TOKEN, "abc", "abc", END_TOKEN},
		tokens)
}

func TestTokenize_CustomMarkers(t *testing.T) {
	opts := DefaultOptions()
	opts.Specials = SpecialTokens{Start: "[CLS]", End: "[SEP]"}
	tokens, err := Tokenize("[CLS] hi", StrategyWord, opts)
	require.NoError(t, err)
	assert.Equal(t, types.Tokens{"[CLS]", "[", "cls", "]", "hi", "[SEP]"},
		tokens)
}

type MarkerCollisionTest struct {
	Name     string
	Input    string
	Strategy Strategy
	Specials SpecialTokens
	Expected types.Tokens
}

var MarkerCollisionTests = []MarkerCollisionTest{
	{"case folding avoids a one rune marker", "Sam", StrategyWord,
		SpecialTokens{Start: "S", End: "E"},
		types.Tokens{"S", "sam", "E"}},
	{"one rune markers are dropped from content", "SaE",
		StrategyCharacter, SpecialTokens{Start: "S", End: "E"},
		types.Tokens{"S", "a", "E"}},
	{"word equal to a marker is split", "CLS hi", StrategyWord,
		SpecialTokens{Start: "cls", End: "sep"},
		types.Tokens{"cls", "c", "l", "s", "hi", "sep"}},
	{"split runes are checked too", "xy", StrategyWord,
		SpecialTokens{Start: "x", End: "xy"},
		types.Tokens{"x", "y", "xy"}},
	{"subword scrubs marker text", "a cls b", StrategySubword,
		SpecialTokens{Start: "cls", End: "sep"},
		types.Tokens{"cls", "a", "</w>", "b", "</w>", "sep"}},
}

func TestTokenize_MarkerCollisions(t *testing.T) {
	for _, test := range MarkerCollisionTests {
		t.Run(test.Name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Merges = 0
			opts.Specials = test.Specials
			tokens, err := Tokenize(test.Input, test.Strategy, opts)
			require.NoError(t, err)
			assert.Equal(t, test.Expected, tokens)
		})
	}
}

func TestNewTokenizer_InvalidMarkers(t *testing.T) {
	for name, specials := range map[string]SpecialTokens{
		"empty start":      {Start: "", End: END_TOKEN},
		"empty end":        {Start: START_TOKEN, End: ""},
		"same markers":     {Start: "<s>", End: "<s>"},
		"whitespace":       {Start: "<s >", End: END_TOKEN},
		"end of word tail": {Start: START_TOKEN, End: "<end></w>"},
	} {
		opts := DefaultOptions()
		opts.Specials = specials
		_, err := NewTokenizer(StrategyWord, opts)
		assert.Error(t, err, name)
	}
}

func TestNewTokenizer_UnknownStrategy(t *testing.T) {
	_, err := NewTokenizer(Strategy(42), DefaultOptions())
	assert.Error(t, err)
	_, err = Tokenize("text", Strategy(42), DefaultOptions())
	assert.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	for name, expected := range map[string]Strategy{
		"word":         StrategyWord,
		"Word-based":   StrategyWord,
		"character":    StrategyCharacter,
		"char":         StrategyCharacter,
		"subword":      StrategySubword,
		" BPE ":        StrategySubword,
		"BPE-encoding": StrategySubword,
		"sentence":     StrategySentence,
	} {
		strategy, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, strategy, name)
	}
	_, err := ParseStrategy("bytes")
	assert.Error(t, err)
	assert.Equal(t, "subword", StrategySubword.String())
}

func TestModel_SegmentCaches(t *testing.T) {
	opts := DefaultOptions()
	opts.Merges = 10
	model := Train(lowLowerCorpus, opts)
	tokens := model.Encode("lower lower newest unseen")
	assert.Equal(t, types.Tokens{"low", "e", "r", "</w>", "low", "e", "r",
		"</w>", "newest</w>", "u", "n", "s", "e", "e", "n", "</w>"}, tokens)
	assert.Equal(t, 1, model.CacheHits)
	assert.Equal(t, 3, model.CacheMisses)
}

func TestSubwordTokenizer_TokenizeWith(t *testing.T) {
	opts := DefaultOptions()
	opts.Merges = 10
	tokenizer, err := NewTokenizer(StrategySubword, opts)
	require.NoError(t, err)
	subword := tokenizer.(*SubwordTokenizer)

	model := Train(lowLowerCorpus, opts)
	assert.Equal(t, types.Tokens{START_TOKEN, "wi", "d", "est</w>",
		END_TOKEN}, subword.TokenizeWith(model, "widest"))

	tokens, trained := subword.TokenizeWithModel("widest")
	assert.Equal(t, types.Tokens{START_TOKEN, "widest</w>", END_TOKEN},
		tokens)
	assert.Len(t, trained.Merges, 6)
}

func TestSentenceTokenizer(t *testing.T) {
	tokens, err := Tokenize(
		"This is test sentence 1.  This is test sentence 2.",
		StrategySentence, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, types.Tokens{START_TOKEN, "This is test sentence 1.",
		"This is test sentence 2.", END_TOKEN}, tokens)

	tokens, err = Tokenize("  ", StrategySentence, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, types.Tokens{START_TOKEN, END_TOKEN}, tokens)
}

func TestAssignTokenIds(t *testing.T) {
	tokens := types.Tokens{START_TOKEN, "a", "b", "a", END_TOKEN}
	ids, vocab := AssignTokenIds(tokens, DEFAULT_ID_BASE)
	assert.Equal(t, types.TokenIds{100, 101, 102, 101, 103}, ids)
	assert.Equal(t, types.TokenMap{START_TOKEN: 100, "a": 101, "b": 102,
		END_TOKEN: 103}, vocab)

	ids, vocab = AssignTokenIds(types.Tokens{}, 0)
	assert.Empty(t, ids)
	assert.Empty(t, vocab)
}

func BenchmarkTokenize_Subword(b *testing.B) {
	opts := DefaultOptions()
	opts.Merges = 50
	for i := 0; i < b.N; i++ {
		Tokenize(lowLowerCorpus, StrategySubword, opts)
	}
}

func TestTrain_NonPositiveCacheSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		opts := DefaultOptions()
		opts.CacheSize = size
		opts.Merges = 0
		assert.NotPanics(t, func() {
			model := Train("low lower", opts)
			assert.Equal(t, types.Symbols{"l", "o", "w", "</w>"},
				model.Segment("low"))
		})
	}
}
