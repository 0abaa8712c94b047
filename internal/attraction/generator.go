package attraction

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"

	"github.com/nvandessel/attractgen/internal/constants"
	"github.com/nvandessel/attractgen/internal/logging"
)

// Generator draws random attraction values.
//
// Without a seed it uses the process-wide math/rand/v2 source, so every run
// yields a fresh matrix. A Generator is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	low    float64
	high   float64
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic. A zero seed keeps the
// unseeded process-wide source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed == 0 {
			g.rng = nil
			return
		}
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRange sets the magnitude bounds used by Generate.
func WithRange(low, high float64) Option {
	return func(g *Generator) {
		g.low = low
		g.high = high
	}
}

// WithLogger sets the logger for generation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a Generator bounded to [DefaultLow, DefaultHigh].
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		low:    constants.DefaultLow,
		high:   constants.DefaultHigh,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) next() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}

// GenerateRandomMatrix returns count values drawn uniformly from [low, high],
// rounded to the nearest RoundingStep and negated with probability
// NegateProbability. A non-positive count yields an empty slice.
func (g *Generator) GenerateRandomMatrix(count int, low, high float64) []float64 {
	if count < 0 {
		count = 0
	}
	values := make([]float64, 0, count)
	for range count {
		v := roundToStep(low + (high-low)*g.next())
		if g.next() < constants.NegateProbability {
			v = -v
		}
		g.logger.Log(context.Background(), logging.LevelTrace, "drew attraction value", "index", len(values), "value", v)
		values = append(values, v)
	}
	return values
}

// Generate draws a full matrix using the generator's range.
func (g *Generator) Generate() Matrix {
	g.logger.Debug("generating attraction matrix", "size", Size, "low", g.low, "high", g.high, "seeded", g.rng != nil)
	return Matrix{values: g.GenerateRandomMatrix(Size, g.low, g.high)}
}

// AttractionMatrixString generates a fresh matrix and renders it as a C++
// initializer block.
func (g *Generator) AttractionMatrixString() string {
	return FormatSource(g.Generate())
}

// WriteAttractionMatrixToFile generates a fresh matrix and writes it to
// filename, replacing any existing file. An empty filename writes
// DefaultOutputFile. It returns the filename used.
func (g *Generator) WriteAttractionMatrixToFile(filename string) (string, error) {
	if filename == "" {
		filename = constants.DefaultOutputFile
	}
	m := g.Generate()
	if err := writeFile(filename, m); err != nil {
		return "", err
	}
	g.logger.Debug("wrote attraction matrix", "file", filename, "entries", m.Len())
	return filename, nil
}

// WriteFile writes m to filename in the data file format, replacing any
// existing file.
func WriteFile(filename string, m Matrix) error {
	return writeFile(filename, m)
}

func writeFile(filename string, m Matrix) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating matrix file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing matrix file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := WriteData(w, m); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing matrix file: %w", err)
	}
	return nil
}

// roundToStep rounds v to the nearest RoundingStep, ties to even.
func roundToStep(v float64) float64 {
	return math.RoundToEven(v/constants.RoundingStep) * constants.RoundingStep
}

var defaultGenerator = NewGenerator()

// GenerateRandomMatrix draws count values from the process-wide source.
func GenerateRandomMatrix(count int, low, high float64) []float64 {
	return defaultGenerator.GenerateRandomMatrix(count, low, high)
}

// AttractionMatrixString renders a fresh unseeded matrix as initializer text.
func AttractionMatrixString() string {
	return defaultGenerator.AttractionMatrixString()
}

// WriteAttractionMatrixToFile writes a fresh unseeded matrix to filename.
func WriteAttractionMatrixToFile(filename string) (string, error) {
	return defaultGenerator.WriteAttractionMatrixToFile(filename)
}
