package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when there are no symbols to analyze.
	ErrEmptyAlphabet = errors.New("empty alphabet")
	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// UnknownSymbolError reports a lookup of a symbol that never occurred in the input.
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownSymbol, e.Symbol)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }
