package huffman

// CodeTable maps each symbol to its codeword, a string of '0' and '1'.
type CodeTable struct {
	codes map[rune]string
}

// GenerateCodes walks the tree depth-first, appending '0' on the way left and
// '1' on the way right. A tree that is a single leaf gets the codeword "0".
func GenerateCodes(root Node) (*CodeTable, error) {
	if root == nil {
		return nil, ErrEmptyAlphabet
	}
	codes := make(map[rune]string)
	if leaf, ok := root.(*Leaf); ok {
		codes[leaf.Symbol] = "0"
		return &CodeTable{codes: codes}, nil
	}

	var walk func(n Node, prefix string)
	walk = func(n Node, prefix string) {
		switch n := n.(type) {
		case *Leaf:
			codes[n.Symbol] = prefix
		case *Internal:
			walk(n.Left, prefix+"0")
			walk(n.Right, prefix+"1")
		}
	}
	walk(root, "")
	return &CodeTable{codes: codes}, nil
}

// Lookup returns the codeword of s, or an *UnknownSymbolError.
func (ct *CodeTable) Lookup(s rune) (string, error) {
	c, ok := ct.codes[s]
	if !ok {
		return "", &UnknownSymbolError{Symbol: s}
	}
	return c, nil
}

// Len is the number of codewords.
func (ct *CodeTable) Len() int { return len(ct.codes) }

// Map returns a copy of the codewords.
func (ct *CodeTable) Map() map[rune]string {
	out := make(map[rune]string, len(ct.codes))
	for s, c := range ct.codes {
		out[s] = c
	}
	return out
}
