package attraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/attractgen/internal/species"
)

func TestNewMatrix(t *testing.T) {
	values := make([]float64, Size)
	for i := range values {
		values[i] = float64(i)
	}

	m, err := NewMatrix(values)
	require.NoError(t, err)
	assert.Equal(t, Size, m.Len())

	values[0] = 99
	assert.Equal(t, 0.0, m.At(species.Red, species.Red), "matrix must not alias its input")

	_, err = NewMatrix(values[:10])
	assert.ErrorContains(t, err, "matrix needs 64 values, got 10")
}

func TestMatrix_AtIsRowMajor(t *testing.T) {
	m := Default()
	assert.Equal(t, 3.0, m.At(species.Red, species.Red))
	assert.Equal(t, -1.5, m.At(species.Red, species.Green))
	assert.Equal(t, 3.5, m.At(species.Green, species.Red))
	assert.Equal(t, -5.0, m.At(species.Purple, species.Blue))
	assert.Equal(t, 5.0, m.At(species.Purple, species.Cyan))
}

func TestMatrix_Entries(t *testing.T) {
	entries := Default().Entries()
	require.Len(t, entries, Size)

	for k, e := range entries {
		assert.Equal(t, species.Species(k/8), e.From)
		assert.Equal(t, species.Species(k%8), e.To)
	}
	assert.Equal(t, Entry{From: species.Orange, To: species.Orange, Value: 3.0}, entries[Size-1])
}

func TestMatrix_ValuesReturnsCopy(t *testing.T) {
	m := Default()
	v := m.Values()
	v[0] = 42
	assert.Equal(t, 3.0, m.Values()[0])
}

func TestDefault_IsValidAttractionMatrix(t *testing.T) {
	m := Default()
	require.Equal(t, Size, m.Len())
	for _, v := range m.Values() {
		assertAttractionValue(t, v)
	}
}
