package huffman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeSingleSymbol(t *testing.T) {
	res, err := Analyze([]rune("aaaa"))
	require.NoError(t, err)

	require.Equal(t, map[rune]int{'a': 4}, res.Frequencies.Map())
	require.Equal(t, map[rune]string{'a': "0"}, res.Codes.Map())
	require.Equal(t, 0.0, res.Stats.Entropy)
	require.Equal(t, 4, res.Stats.HuffmanBits)
	require.Equal(t, 32, res.Stats.BaselineBits)
	require.Equal(t, 87.5, res.Stats.CompressionPercentage)
	require.Equal(t, 1.0, res.Stats.AverageBits)
}

func TestAnalyzeTwoSymbols(t *testing.T) {
	res, err := Analyze([]rune("aaab"))
	require.NoError(t, err)

	require.Equal(t, map[rune]int{'a': 3, 'b': 1}, res.Frequencies.Map())
	for _, c := range res.Codes.Map() {
		require.Len(t, c, 1)
	}
	require.InDelta(t, 1.0, res.Stats.AverageBits, 1e-12)
	require.InDelta(t, 0.8113, res.Stats.Entropy, 1e-4)
	require.GreaterOrEqual(t, res.Stats.AverageBits, res.Stats.Entropy)
}

func TestAnalyzeEqualFrequencies(t *testing.T) {
	res, err := Analyze([]rune("abcd"))
	require.NoError(t, err)

	for _, c := range res.Codes.Map() {
		require.Len(t, c, 2)
	}
	require.Equal(t, 8, res.Stats.HuffmanBits)
	require.Equal(t, 32, res.Stats.BaselineBits)
	require.Equal(t, 75.0, res.Stats.CompressionPercentage)
	require.Equal(t, 4, res.Stats.DistinctSymbols)
	require.Equal(t, 4, res.Stats.TotalSymbols)
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(nil)
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = AnalyzeTable(nil)
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = AnalyzeCodes(Count(nil), nil, nil)
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestAnalyzeSourceCodingBound(t *testing.T) {
	for _, text := range []string{
		"ab",
		"aaaaaaab",
		"abracadabra",
		"the sun was a pale orb that rose just above the skyline",
		"0123456789012345678901234567890",
	} {
		res, err := Analyze([]rune(text))
		require.NoError(t, err)
		st := res.Stats

		require.GreaterOrEqual(t, st.AverageBits+1e-9, st.Entropy, text)
		require.Less(t, st.AverageBits, st.Entropy+1, text)
		require.InDelta(t, float64(st.HuffmanBits)/float64(st.TotalSymbols), st.AverageBits, 1e-9, text)
		require.InDelta(t, (1-float64(st.HuffmanBits)/float64(st.BaselineBits))*100, st.CompressionPercentage, 1e-9, text)
		require.Equal(t, st.TotalSymbols*BaselineBitsPerSymbol, st.BaselineBits)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := []rune("the man flung a look back along the way he had come")
	a, err := Analyze(text)
	require.NoError(t, err)
	b, err := Analyze(text)
	require.NoError(t, err)

	require.Equal(t, a.Frequencies.Map(), b.Frequencies.Map())
	require.Equal(t, a.Stats, b.Stats)
	require.Equal(t, a.Codes.Map(), b.Codes.Map())
}

func TestAnalyzeCodesMissingCodeword(t *testing.T) {
	ft := countString("ab")
	pm, err := NewProbabilityModel(ft)
	require.NoError(t, err)
	partial := &CodeTable{codes: map[rune]string{'a': "0"}}

	_, err = AnalyzeCodes(ft, pm, partial)
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestCompressionPercentageZeroBaseline(t *testing.T) {
	require.Equal(t, 0.0, CompressionPercentage(0, 0))
}

func TestRowsSorted(t *testing.T) {
	res, err := Analyze([]rune("cabbage"))
	require.NoError(t, err)

	rows, err := res.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		require.Less(t, rows[i-1].Symbol, rows[i].Symbol)
	}
	require.Equal(t, 'a', rows[0].Symbol)
	require.Equal(t, 2, rows[0].Frequency)
	require.InDelta(t, 2.0/7, rows[0].Probability, 1e-12)
}

func TestRowsMissingCodeword(t *testing.T) {
	res, err := Analyze([]rune("ab"))
	require.NoError(t, err)
	res.Codes = &CodeTable{codes: map[rune]string{'a': "0"}}

	_, err = res.Rows()
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestSelectSymbols(t *testing.T) {
	res, err := Analyze([]rune("to build a fire."))
	require.NoError(t, err)
	known := func(s rune) bool {
		_, ok := res.Frequencies.Count(s)
		return ok
	}

	selected, skipped, err := SelectSymbols([]rune{'f', '.', 'a', ' ', 'a'}, known, false)
	require.NoError(t, err)
	require.Equal(t, []rune{' ', '.', 'a', 'f'}, selected)
	require.Empty(t, skipped)

	_, _, err = SelectSymbols([]rune{'a', 'z'}, known, false)
	var use *UnknownSymbolError
	require.True(t, errors.As(err, &use))
	require.Equal(t, 'z', use.Symbol)

	selected, skipped, err = SelectSymbols([]rune("zamz"), known, true)
	require.NoError(t, err)
	require.Equal(t, []rune{'a'}, selected)
	require.Equal(t, []rune{'z', 'm'}, skipped)
}
