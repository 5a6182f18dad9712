package huffman

import "math"

// ProbabilityModel holds the relative frequency of every symbol of a table.
type ProbabilityModel struct {
	probs map[rune]float64
	order []rune
}

// NewProbabilityModel derives count(s)/total for every symbol of ft.
func NewProbabilityModel(ft *FrequencyTable) (*ProbabilityModel, error) {
	if ft == nil || ft.Total() == 0 {
		return nil, ErrEmptyAlphabet
	}
	total := float64(ft.Total())
	probs := make(map[rune]float64, ft.Len())
	for s, n := range ft.counts {
		probs[s] = float64(n) / total
	}
	return &ProbabilityModel{probs: probs, order: ft.order}, nil
}

// Probability returns the probability of s.
func (m *ProbabilityModel) Probability(s rune) (float64, error) {
	p, ok := m.probs[s]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: s}
	}
	return p, nil
}

// Map returns a copy of the per-symbol probabilities.
func (m *ProbabilityModel) Map() map[rune]float64 {
	out := make(map[rune]float64, len(m.probs))
	for s, p := range m.probs {
		out[s] = p
	}
	return out
}

// Entropy is the Shannon entropy of the distribution in bits per symbol.
// Terms are summed in first-occurrence order so the result is bit-for-bit
// reproducible.
func (m *ProbabilityModel) Entropy() float64 {
	return entropy(m.order, m.probs)
}

func entropy(order []rune, probs map[rune]float64) float64 {
	h := 0.0
	for _, s := range order {
		if p := probs[s]; p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
