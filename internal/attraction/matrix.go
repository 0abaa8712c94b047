// Package attraction generates, formats, and reads the species attraction
// matrix consumed by the particle simulation.
//
// A matrix is kept as a flat row-major sequence of Size values: entry k holds
// the attraction of species k/Count towards species k%Count.
package attraction

import (
	"fmt"

	"github.com/nvandessel/attractgen/internal/species"
)

// Size is the number of values in a full attraction matrix.
const Size = species.Count * species.Count

// Entry is one cell of the matrix.
type Entry struct {
	From  species.Species `json:"from"`
	To    species.Species `json:"to"`
	Value float64         `json:"value"`
}

// Matrix is a row-major attraction matrix. The zero value is empty and
// unusable; build one with NewMatrix or a Generator.
type Matrix struct {
	values []float64
}

// NewMatrix wraps a copy of values, which must hold exactly Size entries.
func NewMatrix(values []float64) (Matrix, error) {
	if len(values) != Size {
		return Matrix{}, fmt.Errorf("matrix needs %d values, got %d", Size, len(values))
	}
	m := Matrix{values: make([]float64, Size)}
	copy(m.values, values)
	return m, nil
}

// Len returns the number of values held.
func (m Matrix) Len() int {
	return len(m.values)
}

// At returns the attraction of from towards to.
// It panics if either species is out of range, like a slice index would.
func (m Matrix) At(from, to species.Species) float64 {
	return m.values[from.Index()*species.Count+to.Index()]
}

// Values returns a copy of the flat row-major values.
func (m Matrix) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return out
}

// Entries returns every cell in row-major order.
func (m Matrix) Entries() []Entry {
	entries := make([]Entry, len(m.values))
	for k, v := range m.values {
		entries[k] = Entry{
			From:  species.Species(k / species.Count),
			To:    species.Species(k % species.Count),
			Value: v,
		}
	}
	return entries
}
