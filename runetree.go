package bpe_playground

import "strings"

type RuneNode struct {
	rune      rune               // The rune this node represents.
	runes     []rune             // The prior runes that led to this node.
	terminal  bool               // If this node ends a special token.
	childs    map[rune]*RuneNode // The child nodes.
	childsArr *[]*RuneNode       // The child nodes in an array, for precedence
}

func (root *RuneNode) evaluate(node *RuneNode, r rune) (*RuneNode, bool) {
	// Small fan-outs keep an array of children, which is quicker to scan
	// than a map lookup.
	if node.childsArr != nil {
		children := *node.childsArr
		for _, child := range children {
			if child.rune == r {
				return child, child.terminal
			}
		}
	} else {
		child, ok := node.childs[r]
		if ok {
			return child, child.terminal
		}
	}
	return nil, false
}

// NewRuneTree builds a trie over `specials` for spotting them in running
// text.
func NewRuneTree(specials []string) *RuneNode {
	runeTree := &RuneNode{
		runes:  []rune{},
		childs: make(map[rune]*RuneNode, 0),
	}

	for _, k := range specials {
		keyRunes := []rune(k)
		keyLen := len(keyRunes)
		node := runeTree
		for i := 0; i < keyLen; i++ {
			r := keyRunes[i]
			childNode, ok := node.childs[r]
			if !ok {
				children := make([]*RuneNode, 0)
				node.childs[r] = &RuneNode{
					rune:      r,
					runes:     keyRunes[:i+1],
					terminal:  i == keyLen-1,
					childs:    make(map[rune]*RuneNode, 0),
					childsArr: &children,
				}
			} else if i == keyLen-1 {
				childNode.terminal = true
			}
			if len(node.childs) > 10 {
				// Past 10 children the map is faster than the array.
				node.childsArr = nil
			} else {
				if node.childsArr == nil {
					children := make([]*RuneNode, 0)
					node.childsArr = &children
				}
				if len(node.childs) != len(*node.childsArr) {
					*node.childsArr = append(*node.childsArr, node.childs[r])
				}
			}
			node = node.childs[r]
		}
	}
	return runeTree
}

// matchAt returns the length in runes of the longest special token that
// starts at runes[start], or 0 when none does.
func (root *RuneNode) matchAt(runes []rune, start int) int {
	longest := 0
	node := root
	for idx := start; idx < len(runes); idx++ {
		var terminal bool
		node, terminal = root.evaluate(node, runes[idx])
		if node == nil {
			break
		}
		if terminal {
			longest = idx - start + 1
		}
	}
	return longest
}

// Replace substitutes `replacement` for every special token found in
// `text`, scanning left to right and preferring the longest match.
func (root *RuneNode) Replace(text string, replacement string) string {
	if len(root.childs) == 0 {
		return text
	}
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	replaced := false
	for idx := 0; idx < len(runes); {
		if matchLen := root.matchAt(runes, idx); matchLen > 0 {
			sb.WriteString(replacement)
			idx += matchLen
			replaced = true
			continue
		}
		sb.WriteRune(runes[idx])
		idx++
	}
	if !replaced {
		return text
	}
	return sb.String()
}
