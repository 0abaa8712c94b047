// Package species defines the fixed, ordered set of particle species an
// attraction matrix is indexed by.
package species

import (
	"fmt"
	"strings"
)

// Species identifies one particle colour. Its integer value is the row and
// column index of the species in an attraction matrix.
type Species int

// The order here is significant: it defines the matrix index mapping.
const (
	Red Species = iota
	Green
	Blue
	Yellow
	Cyan
	Magenta
	Purple
	Orange
)

// Count is the number of species, and so the side length of the matrix.
const Count = 8

// Color is an RGB colour with components in [0, 1].
type Color struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
}

var names = [Count]string{
	"RED",
	"GREEN",
	"BLUE",
	"YELLOW",
	"CYAN",
	"MAGENTA",
	"PURPLE",
	"ORANGE",
}

var colors = [Count]Color{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
	{0.0, 0.0, 1.0},
	{1.0, 1.0, 0.0},
	{0.0, 1.0, 1.0},
	{1.0, 0.0, 1.0},
	{0.5, 0.0, 1.0},
	{1.0, 0.5, 0.0},
}

// All returns every species in matrix order.
func All() []Species {
	all := make([]Species, Count)
	for i := range all {
		all[i] = Species(i)
	}
	return all
}

// Names returns the species names in matrix order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}

// Valid reports whether s is one of the defined species.
func (s Species) Valid() bool {
	return s >= 0 && int(s) < Count
}

// Index returns the matrix row/column index of s.
func (s Species) Index() int {
	return int(s)
}

// String returns the upper-case species name, e.g. "RED".
func (s Species) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return names[s]
}

// Color returns the render colour of s. Unknown species render as red.
func (s Species) Color() Color {
	if !s.Valid() {
		return colors[Red]
	}
	return colors[s]
}

// Parse looks up a species by name, ignoring case and surrounding space.
func Parse(name string) (Species, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range names {
		if n == want {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("unknown species: %q", name)
}

// FromColor maps an exact render colour back to its species.
// Colours that match no species fall back to Red.
func FromColor(c Color) Species {
	for i, known := range colors {
		if known == c {
			return Species(i)
		}
	}
	return Red
}
