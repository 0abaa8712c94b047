package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/attractgen/internal/species"
)

func newSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List species in matrix order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type jsonSpecies struct {
					Index int           `json:"index"`
					Name  string        `json:"name"`
					Color species.Color `json:"color"`
				}
				list := make([]jsonSpecies, 0, species.Count)
				for _, s := range species.All() {
					list = append(list, jsonSpecies{Index: s.Index(), Name: s.String(), Color: s.Color()})
				}
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{"species": list})
				return
			}

			for _, s := range species.All() {
				c := s.Color()
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %-8s (%.1f, %.1f, %.1f)\n", s.Index(), s, c.R, c.G, c.B)
			}
		},
	}
}
