package huffman

import "strings"

func countString(text string) *FrequencyTable {
	return Count([]rune(text))
}

// depths returns the depth of every leaf below root. A lone leaf has depth 0.
func depths(root Node) map[rune]int {
	out := make(map[rune]int)
	var walk func(n Node, d int)
	walk = func(n Node, d int) {
		switch n := n.(type) {
		case *Leaf:
			out[n.Symbol] = d
		case *Internal:
			walk(n.Left, d+1)
			walk(n.Right, d+1)
		}
	}
	walk(root, 0)
	return out
}

// prefixFree reports whether no codeword of ct is a prefix of another.
func prefixFree(ct *CodeTable) bool {
	words := make([]string, 0, len(ct.codes))
	for _, c := range ct.codes {
		words = append(words, c)
	}
	for i, a := range words {
		for j, b := range words {
			if i != j && strings.HasPrefix(b, a) {
				return false
			}
		}
	}
	return true
}
