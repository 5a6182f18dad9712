package huffman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbabilitiesSumToOne(t *testing.T) {
	for _, text := range []string{"a", "aaab", "mississippi", "to build a fire, by jack london."} {
		pm, err := NewProbabilityModel(countString(text))
		require.NoError(t, err)

		sum := 0.0
		for _, p := range pm.Map() {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9, text)
	}
}

func TestEntropy(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"aaaa", 0},
		{"ab", 1},
		{"abcd", 2},
		{"aaab", 0.8112781244591328},
	}
	for _, c := range cases {
		pm, err := NewProbabilityModel(countString(c.text))
		require.NoError(t, err)
		require.InDelta(t, c.want, pm.Entropy(), 1e-12, c.text)
	}
}

func TestEntropySkipsZeroProbability(t *testing.T) {
	h := entropy([]rune("abc"), map[rune]float64{'a': 0.5, 'b': 0.5, 'c': 0})
	require.InDelta(t, 1.0, h, 1e-12)
}

func TestEntropyReproducible(t *testing.T) {
	ft := Count([]rune("it was seventy-five below zero, colder than he had ever known it to be"))
	pm, err := NewProbabilityModel(ft)
	require.NoError(t, err)
	want := pm.Entropy()

	for i := 0; i < 50; i++ {
		again, err := NewProbabilityModel(Count([]rune("it was seventy-five below zero, colder than he had ever known it to be")))
		require.NoError(t, err)
		require.Equal(t, want, again.Entropy())
	}
}

func TestProbabilityModelEmpty(t *testing.T) {
	_, err := NewProbabilityModel(Count(nil))
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = NewProbabilityModel(nil)
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestProbabilityUnknownSymbol(t *testing.T) {
	pm, err := NewProbabilityModel(countString("abc"))
	require.NoError(t, err)

	p, err := pm.Probability('b')
	require.NoError(t, err)
	require.InDelta(t, 1.0/3, p, 1e-12)

	_, err = pm.Probability('x')
	var use *UnknownSymbolError
	require.True(t, errors.As(err, &use))
	require.Equal(t, 'x', use.Symbol)
}
