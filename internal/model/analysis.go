package model

import (
	"time"

	"github.com/razanodeh01/Huffman-Text-Compression/pkg/huffman"
)

type Analysis struct {
	ID        string      `json:"id"`
	Source    string      `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
	Stats     Statistics  `json:"stats"`
	Rows      []SymbolRow `json:"rows"`
}

type Statistics struct {
	TotalSymbols          int     `json:"total_symbols"`
	DistinctSymbols       int     `json:"distinct_symbols"`
	Entropy               float64 `json:"entropy"`
	AverageBits           float64 `json:"average_bits"`
	BaselineBits          int     `json:"baseline_bits"`
	HuffmanBits           int     `json:"huffman_bits"`
	CompressionPercentage float64 `json:"compression_percentage"`
}

// SymbolRow is one line of the symbol table. Symbol is the character itself.
type SymbolRow struct {
	Symbol      string  `json:"symbol"`
	Frequency   int     `json:"frequency"`
	Probability float64 `json:"probability"`
	Code        string  `json:"code"`
	CodeLength  int     `json:"code_length"`
}

func NewStatistics(st huffman.Statistics) Statistics {
	return Statistics(st)
}

func NewSymbolRow(r huffman.Row) SymbolRow {
	return SymbolRow{
		Symbol:      string(r.Symbol),
		Frequency:   r.Frequency,
		Probability: r.Probability,
		Code:        r.Code,
		CodeLength:  len(r.Code),
	}
}

func NewSymbolRows(rows []huffman.Row) []SymbolRow {
	out := make([]SymbolRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewSymbolRow(r))
	}
	return out
}
