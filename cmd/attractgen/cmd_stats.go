package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/attractgen/internal/attraction"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize an attraction matrix",
		Long: `Show the value distribution of an attraction matrix data file.
Without a file, a fresh matrix is generated and summarized.

Examples:
  attractgen stats attraction_matrix.txt
  attractgen stats --seed 42 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInvocation(cmd)
			if err != nil {
				return err
			}

			var m attraction.Matrix
			source := "generated"
			if len(args) == 1 {
				source = args[0]
				m, err = inv.reader().ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read attraction matrix: %w", err)
				}
			} else {
				m = inv.generator().Generate()
			}

			summary, err := attraction.Summarize(m)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"source":  source,
					"summary": summary,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attraction matrix (%s)\n\n", source)
			fmt.Fprintf(out, "  entries:          %d\n", summary.Count)
			fmt.Fprintf(out, "  attracting:       %d\n", summary.Attracting)
			fmt.Fprintf(out, "  repelling:        %d\n", summary.Repelling)
			fmt.Fprintf(out, "  symmetric pairs:  %d\n", summary.SymmetricPairs)
			fmt.Fprintf(out, "  min / max:        %s / %s\n", attraction.FormatValue(summary.Min), attraction.FormatValue(summary.Max))
			fmt.Fprintf(out, "  mean:             %.3f\n", summary.Mean)
			fmt.Fprintf(out, "  median:           %.3f\n", summary.Median)
			fmt.Fprintf(out, "  std dev:          %.3f\n", summary.StdDev)
			return nil
		},
	}
}
