package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/farr/cmd/farr/commands"
	"github.com/teranos/farr/config"
	"github.com/teranos/farr/logger"
)

var rootCmd = &cobra.Command{
	Use:   "farr",
	Short: "farr - one-based array tooling",
	Long: `farr - inspect numeric tables through one-based (Fortran-convention) arrays.

Available commands:
  stats   - Summarise the columns of a numeric table or CSV file
  version - Show version information

Examples:
  farr stats energies.dat        # Whitespace-separated table
  farr stats --csv run.csv       # CSV with a header row
  farr stats --json forces.dat   # Machine-readable output`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
