package huffman

import (
	"fmt"
	"slices"
)

// BaselineBitsPerSymbol is the fixed-width cost of one symbol (one ASCII byte).
const BaselineBitsPerSymbol = 8

// Statistics summarizes how well a code table compresses its input.
type Statistics struct {
	TotalSymbols          int
	DistinctSymbols       int
	Entropy               float64
	AverageBits           float64
	BaselineBits          int
	HuffmanBits           int
	CompressionPercentage float64
}

// AnalyzeCodes computes the statistics of codes against ft and pm.
func AnalyzeCodes(ft *FrequencyTable, pm *ProbabilityModel, codes *CodeTable) (Statistics, error) {
	if ft == nil || ft.Total() == 0 {
		return Statistics{}, ErrEmptyAlphabet
	}
	st := Statistics{
		TotalSymbols:    ft.Total(),
		DistinctSymbols: ft.Len(),
		Entropy:         pm.Entropy(),
	}
	st.BaselineBits = st.TotalSymbols * BaselineBitsPerSymbol

	for _, s := range ft.order {
		code, err := codes.Lookup(s)
		if err != nil {
			return Statistics{}, err
		}
		p, err := pm.Probability(s)
		if err != nil {
			return Statistics{}, err
		}
		st.AverageBits += p * float64(len(code))
		st.HuffmanBits += ft.counts[s] * len(code)
	}
	st.CompressionPercentage = CompressionPercentage(st.BaselineBits, st.HuffmanBits)
	return st, nil
}

// CompressionPercentage is the share of baseline bits saved, in percent.
func CompressionPercentage(baselineBits, huffmanBits int) float64 {
	if baselineBits == 0 {
		return 0
	}
	return float64(baselineBits-huffmanBits) / float64(baselineBits) * 100
}

// Row is one symbol's line of a report.
type Row struct {
	Symbol      rune
	Frequency   int
	Probability float64
	Code        string
}

// Result is everything the pipeline derives from one input.
type Result struct {
	Frequencies   *FrequencyTable
	Probabilities *ProbabilityModel
	Codes         *CodeTable
	Stats         Statistics
}

// Analyze runs the whole pipeline over symbols.
func Analyze(symbols []rune) (*Result, error) {
	return AnalyzeTable(Count(symbols))
}

// AnalyzeTable runs the pipeline from an already counted table.
func AnalyzeTable(ft *FrequencyTable) (*Result, error) {
	if ft == nil || ft.Empty() {
		return nil, ErrEmptyAlphabet
	}
	pm, err := NewProbabilityModel(ft)
	if err != nil {
		return nil, err
	}
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	codes, err := GenerateCodes(root)
	if err != nil {
		return nil, err
	}
	st, err := AnalyzeCodes(ft, pm, codes)
	if err != nil {
		return nil, err
	}
	return &Result{Frequencies: ft, Probabilities: pm, Codes: codes, Stats: st}, nil
}

// Row returns the report line for s.
func (r *Result) Row(s rune) (Row, error) {
	n, ok := r.Frequencies.Count(s)
	if !ok {
		return Row{}, &UnknownSymbolError{Symbol: s}
	}
	code, err := r.Codes.Lookup(s)
	if err != nil {
		return Row{}, err
	}
	p, err := r.Probabilities.Probability(s)
	if err != nil {
		return Row{}, err
	}
	return Row{Symbol: s, Frequency: n, Probability: p, Code: code}, nil
}

// Rows returns one row per symbol sorted by code point.
func (r *Result) Rows() ([]Row, error) {
	syms := r.Frequencies.Symbols()
	out := make([]Row, 0, len(syms))
	for _, s := range syms {
		row, err := r.Row(s)
		if err != nil {
			return nil, fmt.Errorf("row for %q: %w", s, err)
		}
		out = append(out, row)
	}
	return out, nil
}

// SelectSymbols picks the requested symbols for a subset report: duplicates
// are dropped and the rest sorted by code point. known reports whether a
// symbol occurred in the analyzed text. An unknown symbol fails the call
// with an *UnknownSymbolError, unless skipUnknown is set, in which case it
// is returned in skipped, in request order.
func SelectSymbols(requested []rune, known func(rune) bool, skipUnknown bool) (selected, skipped []rune, err error) {
	seen := make(map[rune]bool, len(requested))
	for _, s := range requested {
		if seen[s] {
			continue
		}
		seen[s] = true
		if !known(s) {
			if !skipUnknown {
				return nil, nil, &UnknownSymbolError{Symbol: s}
			}
			skipped = append(skipped, s)
			continue
		}
		selected = append(selected, s)
	}
	slices.Sort(selected)
	return selected, skipped, nil
}
