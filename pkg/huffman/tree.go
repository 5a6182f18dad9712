package huffman

import (
	"cmp"
	"slices"

	ih "github.com/icza/huffman"
)

// Node is a vertex of a merge tree: either a *Leaf or an *Internal.
type Node interface {
	Weight() int
	isNode()
}

// Leaf holds one symbol and its frequency.
type Leaf struct {
	Symbol    rune
	Frequency int
}

// Internal is the merge of two subtrees; its weight is the sum of theirs.
type Internal struct {
	Frequency   int
	Left, Right Node
}

func (l *Leaf) Weight() int     { return l.Frequency }
func (n *Internal) Weight() int { return n.Frequency }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

// byCount orders leaves lighter first. It is applied with a stable sort over
// leaves in first-occurrence order, so equal counts keep that order.
func byCount(a, b *ih.Node) int {
	return cmp.Compare(a.Count, b.Count)
}

// BuildTree returns the root of a Huffman tree for ft.
//
// Leaves are sorted by byCount and merged two at a time, lightest first; the
// first of the pair becomes the left child. A merged node is queued ahead of
// nodes of equal weight already waiting. Both rules are fixed, so the tree
// is a pure function of the input sequence.
func BuildTree(ft *FrequencyTable) (Node, error) {
	if ft == nil || ft.Empty() {
		return nil, ErrEmptyAlphabet
	}

	leaves := make([]*ih.Node, 0, ft.Len())
	for _, s := range ft.order {
		leaves = append(leaves, &ih.Node{Value: ih.ValueType(s), Count: ft.counts[s]})
	}
	slices.SortStableFunc(leaves, byCount)
	return fromMerged(ih.BuildSorted(leaves)), nil
}

func fromMerged(n *ih.Node) Node {
	if n.Left == nil {
		return &Leaf{Symbol: rune(n.Value), Frequency: n.Count}
	}
	return &Internal{
		Frequency: n.Count,
		Left:      fromMerged(n.Left),
		Right:     fromMerged(n.Right),
	}
}
