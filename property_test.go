package bpe_playground

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const propertyText = `([abc ]|ab|<start>|<end-of-sequence>|\n){0,30}`

func subwordOptions(merges int) Options {
	opts := DefaultOptions()
	opts.Merges = merges
	return opts
}

func TestProperty_TokenizeDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(propertyText).Draw(rt, "text")
		strategy := rapid.SampledFrom([]Strategy{
			StrategyWord, StrategyCharacter, StrategySubword,
		}).Draw(rt, "strategy")
		opts := subwordOptions(rapid.IntRange(0, 20).Draw(rt, "merges"))

		first, err := Tokenize(text, strategy, opts)
		require.NoError(rt, err)
		second, err := Tokenize(text, strategy, opts)
		require.NoError(rt, err)
		assert.Equal(rt, first, second)
	})
}

func TestProperty_MoreMergesNeverMoreTokens(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(propertyText).Draw(rt, "text")
		merges := rapid.IntRange(0, 15).Draw(rt, "merges")

		fewer, err := Tokenize(text, StrategySubword, subwordOptions(merges))
		require.NoError(rt, err)
		more, err := Tokenize(text, StrategySubword,
			subwordOptions(merges+1))
		require.NoError(rt, err)
		assert.LessOrEqual(rt, len(more), len(fewer))
	})
}

func TestProperty_ReplayReproducesTraining(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(propertyText).Draw(rt, "text")
		opts := subwordOptions(rapid.IntRange(0, 20).Draw(rt, "merges"))
		opts.EndOfWord = rapid.SampledFrom([]string{"", END_OF_WORD}).
			Draw(rt, "endOfWord")

		model := Train(text, opts)
		for _, word := range model.Words.Words() {
			replayed := ApplyMerges(word, model.Merges, opts.EndOfWord)
			assert.Equal(rt, model.Splits[word], replayed, word)
			assert.Equal(rt, replayed,
				applyMergesTo(replayed, model.Merges), word)
		}
	})
}

func TestProperty_BoundaryWrapping(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(propertyText).Draw(rt, "text")
		strategy := rapid.SampledFrom([]Strategy{
			StrategyWord, StrategyCharacter, StrategySubword,
		}).Draw(rt, "strategy")
		opts := subwordOptions(rapid.IntRange(0, 20).Draw(rt, "merges"))

		tokens, err := Tokenize(text, strategy, opts)
		require.NoError(rt, err)
		require.GreaterOrEqual(rt, len(tokens), 2)
		assert.Equal(rt, START_TOKEN, tokens[0])
		assert.Equal(rt, END_TOKEN, tokens[len(tokens)-1])
		for _, token := range tokens[1 : len(tokens)-1] {
			assert.NotEqual(rt, START_TOKEN, token)
			assert.NotEqual(rt, END_TOKEN, token)
		}
	})
}

func TestProperty_EmptyInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		opts := subwordOptions(rapid.IntRange(-5, 50).Draw(rt, "merges"))
		tokens, err := Tokenize("", StrategySubword, opts)
		require.NoError(rt, err)
		assert.Equal(rt, []string{START_TOKEN, END_TOKEN}, []string(tokens))
	})
}

func TestProperty_CharacterKeepsText(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(propertyText).Draw(rt, "text")
		tokens, err := Tokenize(text, StrategyCharacter, DefaultOptions())
		require.NoError(rt, err)
		assert.Equal(rt, text, strings.Join(tokens[1:len(tokens)-1], ""))
	})
}
