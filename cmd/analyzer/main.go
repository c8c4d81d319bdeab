package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chpraneeth994/data-analyzer/cmd/analyzer/commands"
	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/logger"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "analyzer - Dataset summary statistics and charts",
	Long: `analyzer - Load a dataset, compute summary statistics, render charts.

Each run is a single linear pipeline: load, summarize, visualize. A
session timestamp is recorded per run for lightweight auditability.

Available commands:
  run     - Execute the full analysis pipeline
  stats   - Print summary statistics only
  chart   - Render a single chart
  history - List recent analysis sessions
  version - Show version information

Examples:
  analyzer run                       # Analyze the built-in sample dataset
  analyzer run --source sales.csv    # Analyze a CSV file
  analyzer stats --source sales.csv  # Statistics without charts
  analyzer chart hist --column Sales # One histogram to the output dir
  analyzer history --limit 10        # Recent runs`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		// JSON output keeps logs on the machine-readable path too
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfg, err := config.Load(); err == nil && cfg.LogTheme != "" {
			logger.SetTheme(cfg.LogTheme)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	// Add commands
	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.ChartCmd)
	rootCmd.AddCommand(commands.HistoryCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
