package types

// Symbol is a unit of a word's working segmentation. It starts out as a
// single rune (or the end-of-word marker) and grows as merges apply.
type Symbol string
type Symbols []Symbol

type Token = string
type Tokens []Token

type TokenId uint32
type TokenIds []TokenId
type TokenMap map[string]TokenId

// Serialised id widths in bytes.
const (
	TokenIdSize   = 2
	TokenIdSize32 = 4
)

// Pair is two adjacent symbols, in order.
type Pair struct {
	Left  Symbol
	Right Symbol
}

// Merged returns the symbol produced by merging the pair.
func (p Pair) Merged() Symbol {
	return p.Left + p.Right
}

// Merge is a learned merge rule.
type Merge = Pair

// Merges is ordered by the step a rule was learned at, which is also the
// order the rules are applied in.
type Merges []Merge

// Strings joins each symbol of the sequence into a plain string slice.
func (symbols Symbols) Strings() []string {
	out := make([]string, len(symbols))
	for idx, s := range symbols {
		out[idx] = string(s)
	}
	return out
}
