// Package report renders an analysis as the plain-text tables of the
// classic "Huffman on a short story" exercise.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/model"
)

// DefaultSubset is the sample of symbols shown by the subset table.
var DefaultSubset = []rune{'a', 'b', 'c', 'd', 'e', 'f', 'm', 'z', ' ', '.'}

type Writer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Writer { return &Writer{w: w} }

func (r *Writer) printf(format string, v ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, v...)
}

func (r *Writer) rule(n int) { r.printf("%s\n", strings.Repeat("-", n)) }

// Err returns the first write error.
func (r *Writer) Err() error { return r.err }

func (r *Writer) Symbols(a *model.Analysis) {
	r.rule(55)
	r.printf("Total number of characters: %d\n", a.Stats.TotalSymbols)
	r.rule(55)
	r.printf("\n")
	r.rule(72)
	r.printf("| %-9s | %-10s | %-11s | %-15s | %-11s |\n", "Symbol", "Frequency", "Probability", "Huffman Code", "Code Length")
	r.rule(72)
	for _, row := range a.Rows {
		r.printf("| %-9s | %-10d | %-11.5f | %-15s | %-11d |\n",
			quote(row.Symbol), row.Frequency, row.Probability, row.Code, row.CodeLength)
	}
	r.rule(72)
}

func (r *Writer) Entropy(a *model.Analysis) {
	r.rule(55)
	r.printf("Entropy of the alphabet: %.6f bits/character\n", a.Stats.Entropy)
	r.rule(55)
}

func (r *Writer) Baseline(a *model.Analysis) {
	r.rule(55)
	r.printf("Number of bits needed using ASCII (NASCII): %d bits\n", a.Stats.BaselineBits)
	r.rule(55)
}

func (r *Writer) AverageBits(a *model.Analysis) {
	r.rule(80)
	r.printf("Entropy of the alphabet: %.6f bits/character\n", a.Stats.Entropy)
	r.printf("Average number of bits/character using Huffman code: %.6f bits/character\n", a.Stats.AverageBits)
	r.printf("Comparison: Huffman Avg Bits vs Entropy -> %.6f vs %.6f\n", a.Stats.AverageBits, a.Stats.Entropy)
	r.rule(80)
}

func (r *Writer) HuffmanBits(a *model.Analysis) {
	r.rule(64)
	r.printf("Total number of bits using Huffman code (NHuffman): %d bits\n", a.Stats.HuffmanBits)
	r.rule(64)
}

func (r *Writer) Compression(a *model.Analysis) {
	r.rule(36)
	r.printf("Compression Percentage: %.4f%%\n", a.Stats.CompressionPercentage)
	r.rule(36)
}

// Subset prints the given rows; skipped symbols are listed after the table.
func (r *Writer) Subset(rows []model.SymbolRow, skipped []string) {
	r.printf("\nSubset Analysis (Selected Characters):\n")
	r.rule(56)
	r.printf("| %-9s | %-11s | %-12s | %-11s |\n", "Symbol", "Probability", "Codeword", "Code length")
	r.rule(56)
	for _, row := range rows {
		r.printf("| %-9s | %-11.5f | %-12s | %-11d |\n", quote(row.Symbol), row.Probability, row.Code, row.CodeLength)
	}
	r.rule(56)
	if len(skipped) > 0 {
		q := make([]string, len(skipped))
		for i, s := range skipped {
			q[i] = quote(s)
		}
		r.printf("Not in text: %s\n", strings.Join(q, ", "))
	}
}

// All prints every section in order.
func (r *Writer) All(a *model.Analysis) error {
	r.Symbols(a)
	r.Entropy(a)
	r.Baseline(a)
	r.AverageBits(a)
	r.HuffmanBits(a)
	r.Compression(a)
	return r.err
}

func quote(s string) string {
	return strconv.QuoteToASCII(s)
}
