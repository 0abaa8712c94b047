package attraction

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nvandessel/attractgen/internal/species"
)

const (
	sourceOpen  = "const AttractionMatrix attractionMatrix = {\n"
	sourceClose = "    };"
	entryIndent = "        "
)

// FormatSource renders m as the C++ initializer block the simulation embeds:
// one {ColorSpecies::A, ColorSpecies::B, Vf} entry per cell, with a blank
// line between rows. The result has no trailing newline.
func FormatSource(m Matrix) string {
	var b strings.Builder
	b.WriteString(sourceOpen)
	for k, e := range m.Entries() {
		fmt.Fprintf(&b, "%s{ColorSpecies::%s, ColorSpecies::%s, %sf},\n",
			entryIndent, e.From, e.To, FormatValue(e.Value))
		if (k+1)%species.Count == 0 && k+1 < m.Len() {
			b.WriteString("\n")
		}
	}
	b.WriteString(sourceClose)
	return b.String()
}

// WriteData writes m in the line-oriented data file format: a comment header
// naming the species order, a blank line, then one "row column value" line
// per cell in row-major order.
func WriteData(w io.Writer, m Matrix) error {
	header := "# Attraction matrix data\n" +
		"# Format: from_species to_species attraction_value\n" +
		"# Species order: " + strings.Join(species.Names(), " ") + "\n\n"
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing matrix header: %w", err)
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(w, "%d %d %s\n", e.From.Index(), e.To.Index(), FormatValue(e.Value)); err != nil {
			return fmt.Errorf("writing matrix entry %s->%s: %w", e.From, e.To, err)
		}
	}
	return nil
}

// FormatValue prints v in its shortest exact form, always keeping a decimal
// point so that whole numbers read as floats ("3.0", "-1.5").
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
