package attraction

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/nvandessel/attractgen/internal/species"
)

// Summary describes the distribution of values in a matrix.
type Summary struct {
	Count          int     `json:"count"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	StdDev         float64 `json:"std_dev"`
	Attracting     int     `json:"attracting"`
	Repelling      int     `json:"repelling"`
	SymmetricPairs int     `json:"symmetric_pairs"`
}

// Summarize computes distribution statistics for m.
func Summarize(m Matrix) (Summary, error) {
	data := stats.Float64Data(m.Values())
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("summarizing matrix: no values")
	}

	s := Summary{Count: len(data)}
	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("summarizing matrix: min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("summarizing matrix: max: %w", err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("summarizing matrix: mean: %w", err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("summarizing matrix: median: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, fmt.Errorf("summarizing matrix: std dev: %w", err)
	}

	for _, v := range data {
		switch {
		case v > 0:
			s.Attracting++
		case v < 0:
			s.Repelling++
		}
	}

	if m.Len() == Size {
		for i := range species.Count {
			for j := i + 1; j < species.Count; j++ {
				if m.At(species.Species(i), species.Species(j)) == m.At(species.Species(j), species.Species(i)) {
					s.SymmetricPairs++
				}
			}
		}
	}
	return s, nil
}
