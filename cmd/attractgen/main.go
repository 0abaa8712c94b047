package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/attractgen/internal/attraction"
	"github.com/nvandessel/attractgen/internal/config"
	"github.com/nvandessel/attractgen/internal/logging"
)

// Set via ldflags at build time.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attractgen",
		Short: "Generate randomized attraction matrices for the particle simulation",
		Long: `attractgen generates the 8x8 species attraction matrix read by the
particle simulation.

Run without a subcommand to write a fresh matrix to attraction_matrix.txt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, "")
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.attractgen/config.yaml)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newWriteCmd(),
		newPrintCmd(),
		newShowCmd(),
		newStatsCmd(),
		newSpeciesCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// invocation is the resolved configuration for one command invocation.
type invocation struct {
	cfg    *config.Config
	logger *slog.Logger
}

// loadInvocation resolves config (defaults, file, env, then flags) and builds
// the stderr logger.
func loadInvocation(cmd *cobra.Command) (*invocation, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &invocation{
		cfg:    cfg,
		logger: logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()),
	}, nil
}

func (inv *invocation) generator() *attraction.Generator {
	return attraction.NewGenerator(
		attraction.WithSeed(inv.cfg.Seed),
		attraction.WithRange(inv.cfg.Range.Low, inv.cfg.Range.High),
		attraction.WithLogger(inv.logger),
	)
}

func (inv *invocation) reader() *attraction.Reader {
	return attraction.NewReader(inv.logger)
}
