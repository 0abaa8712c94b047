package attraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	values := make([]float64, Size)
	for i := range values {
		values[i] = 1
	}
	values[1] = -3 // RED->GREEN, breaks the RED/GREEN symmetry
	values[63] = 5

	m, err := NewMatrix(values)
	require.NoError(t, err)

	s, err := Summarize(m)
	require.NoError(t, err)

	assert.Equal(t, Size, s.Count)
	assert.Equal(t, -3.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, (62.0-3+5)/64, s.Mean, 1e-9)
	assert.Equal(t, 1.0, s.Median)
	assert.Equal(t, 63, s.Attracting)
	assert.Equal(t, 1, s.Repelling)
	assert.Equal(t, 27, s.SymmetricPairs)
	assert.Greater(t, s.StdDev, 0.0)
}

func TestSummarize_DefaultMatrix(t *testing.T) {
	s, err := Summarize(Default())
	require.NoError(t, err)
	assert.Equal(t, -5.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, Size, s.Attracting+s.Repelling)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(Matrix{})
	assert.ErrorContains(t, err, "no values")
}
