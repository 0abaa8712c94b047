package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/attractgen/internal/attraction"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print a fresh attraction matrix as a C++ initializer",
		Long: `Generate a new random attraction matrix and print it as the
AttractionMatrix initializer block the simulation embeds in Color.h.

Examples:
  attractgen print
  attractgen print --seed 7 > matrix.inc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd)
			if err != nil {
				return err
			}
			return outputMatrix(cmd, inv.generator().Generate())
		},
	}
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an existing data file as a C++ initializer",
		Long: `Read an attraction matrix data file and print it as the
AttractionMatrix initializer block.

Lines that cannot be parsed or name unknown species are skipped with a
warning. The file must still provide exactly 64 entries.

Examples:
  attractgen show attraction_matrix.txt
  attractgen show broken.txt --fallback   # Print the built-in matrix instead of failing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd)
			if err != nil {
				return err
			}
			fallback, _ := cmd.Flags().GetBool("fallback")

			var m attraction.Matrix
			if fallback {
				// LoadOrDefault logs the reason; the default matrix is still usable.
				m, _ = inv.reader().LoadOrDefault(args[0])
			} else {
				m, err = inv.reader().ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read attraction matrix: %w", err)
				}
			}
			return outputMatrix(cmd, m)
		},
	}

	cmd.Flags().Bool("fallback", false, "Use the built-in default matrix when the file is unusable")
	return cmd
}

// outputMatrix prints m as initializer text, or as JSON entries with --json.
func outputMatrix(cmd *cobra.Command, m attraction.Matrix) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		type jsonEntry struct {
			From  string  `json:"from"`
			To    string  `json:"to"`
			Value float64 `json:"value"`
		}
		entries := make([]jsonEntry, 0, m.Len())
		for _, e := range m.Entries() {
			entries = append(entries, jsonEntry{From: e.From.String(), To: e.To.String(), Value: e.Value})
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
			"entries": entries,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), attraction.FormatSource(m))
	return nil
}
