package attraction

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/nvandessel/attractgen/internal/species"
)

// Reader parses attraction matrix data files.
//
// Malformed lines and out-of-range indices are skipped with a warning, the
// way the simulation's own loader treats them. Reading only fails when the
// file cannot be opened or the surviving entries do not fill a matrix.
type Reader struct {
	logger *slog.Logger
}

// NewReader returns a Reader that reports skipped lines to logger.
// A nil logger discards them.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{logger: logger}
}

// ReadFile reads the matrix stored at path.
func (r *Reader) ReadFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("opening matrix file: %w", err)
	}
	defer f.Close()

	m, err := r.Read(f)
	if err != nil {
		return Matrix{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}

// Read parses a matrix from src. Each value is placed at the cell named by
// its row and column fields, so line order does not matter; a later line for
// the same cell replaces an earlier one. The file must supply exactly Size
// entries covering every cell. On failure the returned error also lists
// every skipped line.
func (r *Reader) Read(src io.Reader) (Matrix, error) {
	var (
		values   = make([]float64, Size)
		seen     [Size]bool
		entries  int
		problems *multierror.Error
		lineNo   int
	)

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			r.logger.Warn("skipping matrix line", "line", lineNo, "error", err)
			problems = multierror.Append(problems, err)
			continue
		}

		k := e.From.Index()*species.Count + e.To.Index()
		if seen[k] {
			r.logger.Warn("duplicate matrix entry", "line", lineNo, "from", e.From, "to", e.To)
		}
		values[k] = e.Value
		seen[k] = true
		entries++
	}
	if err := scanner.Err(); err != nil {
		return Matrix{}, fmt.Errorf("scanning matrix data: %w", err)
	}

	if entries != Size {
		problems = multierror.Append(problems, fmt.Errorf("expected %d entries, got %d", Size, entries))
		return Matrix{}, problems.ErrorOrNil()
	}
	// Duplicates can bring the count to Size while leaving cells empty.
	missing := false
	for k, ok := range seen {
		if !ok {
			missing = true
			from, to := species.Species(k/species.Count), species.Species(k%species.Count)
			problems = multierror.Append(problems, fmt.Errorf("missing entry %s->%s", from, to))
		}
	}
	if missing {
		return Matrix{}, problems.ErrorOrNil()
	}
	return Matrix{values: values}, nil
}

// LoadOrDefault reads path and falls back to Default when the file is
// missing or unusable. The error explains why the fallback was taken.
func (r *Reader) LoadOrDefault(path string) (Matrix, error) {
	m, err := r.ReadFile(path)
	if err != nil {
		r.logger.Warn("using default attraction matrix", "file", path, "error", err)
		return Default(), err
	}
	r.logger.Info("loaded attraction matrix", "file", path, "entries", m.Len())
	return m, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("could not parse %q", line)
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("could not parse %q: from index: %w", line, err)
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("could not parse %q: to index: %w", line, err)
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("could not parse %q: value: %w", line, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Entry{}, fmt.Errorf("could not parse %q: value is not finite", line)
	}

	e := Entry{From: species.Species(from), To: species.Species(to), Value: value}
	if !e.From.Valid() || !e.To.Valid() {
		return Entry{}, fmt.Errorf("invalid species indices %d %d", from, to)
	}
	return e, nil
}
