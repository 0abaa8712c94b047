package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write [file]",
		Short: "Write a fresh attraction matrix data file",
		Long: `Generate a new random attraction matrix and write it as a data file.

The file holds a three-line comment header naming the species order,
a blank line, and 64 "row column value" lines in row-major order.
An existing file is overwritten.

Examples:
  attractgen write                   # Write attraction_matrix.txt
  attractgen write run1.txt          # Write to a specific file
  attractgen write --seed 42 a.txt   # Reproducible matrix`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := ""
			if len(args) == 1 {
				filename = args[0]
			}
			return runWrite(cmd, filename)
		},
	}
}

// runWrite writes a new matrix to filename, falling back to the configured
// output file, and prints the confirmation.
func runWrite(cmd *cobra.Command, filename string) error {
	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if filename == "" {
		filename = inv.cfg.Output
	}

	written, err := inv.generator().WriteAttractionMatrixToFile(filename)
	if err != nil {
		return fmt.Errorf("failed to write attraction matrix: %w", err)
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"file": written})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Attraction matrix written to %s\n", written)
	return nil
}
