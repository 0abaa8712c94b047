package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// buildInfo describes the binary; fields are stamped via -ldflags at release.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func currentBuild() buildInfo {
	return buildInfo{Version: version, Commit: commit, Date: date}
}

func (b buildInfo) String() string {
	return fmt.Sprintf("attractgen version %s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the attractgen build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
			return err
		},
	}
}
