package commands

import (
	"github.com/spf13/cobra"

	"github.com/chpraneeth994/data-analyzer/analyzer"
	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/display"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/logger"
	"github.com/chpraneeth994/data-analyzer/stats"
	"github.com/chpraneeth994/data-analyzer/sym"
)

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: sym.Stats + " Print summary statistics",
	Long: sym.Stats + ` stats - Summary statistics without charts or a report

Computes count, mean, median, standard deviation, min, max, and quartiles
for every numeric column. Non-numeric columns are skipped.

Examples:
  analyzer stats                       # Built-in sample dataset
  analyzer stats --source sales.csv    # CSV file
  analyzer stats --json                # Machine-readable output`,
	RunE: runStats,
}

var statsSourceFlag string

func init() {
	StatsCmd.Flags().StringVarP(&statsSourceFlag, "source", "s", "", "Dataset source: a CSV path, or empty/\"sample\" for generated data")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	a := analyzer.New(cfg, logger.Logger, nil)
	ds, err := a.Load(statsSourceFlag)
	if err != nil {
		return err
	}

	summary := stats.Describe(ds)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(summary)
	}

	printSummaryTable(ds.NumericColumns(), summary)
	return nil
}
