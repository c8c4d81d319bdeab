package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chpraneeth994/data-analyzer/analyzer"
	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/logger"
	"github.com/chpraneeth994/data-analyzer/render"
	"github.com/chpraneeth994/data-analyzer/sym"
)

// ChartCmd represents the chart command
var ChartCmd = &cobra.Command{
	Use:   "chart <line|hist|bar>",
	Short: sym.Chart + " Render a single chart",
	Long: sym.Chart + ` chart - Render one chart to the output directory

Chart kinds:
  line  - Value over row order (or the Date column when present)
  hist  - Histogram of a numeric column
  bar   - Totals per category

Examples:
  analyzer chart line                        # First numeric column
  analyzer chart hist --column Sales         # Specific column
  analyzer chart bar --source sales.csv      # Category totals from a CSV`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

var (
	chartColumnFlag string
	chartSourceFlag string
	chartOutFlag    string
)

func init() {
	ChartCmd.Flags().StringVarP(&chartColumnFlag, "column", "c", "", "Column to chart (default: first suitable column)")
	ChartCmd.Flags().StringVarP(&chartSourceFlag, "source", "s", "", "Dataset source: a CSV path, or empty/\"sample\" for generated data")
	ChartCmd.Flags().StringVar(&chartOutFlag, "out", "", "Output directory (overrides config)")
}

func runChart(cmd *cobra.Command, args []string) error {
	kind, err := render.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if chartOutFlag != "" {
		cfg.Output.Dir = chartOutFlag
	}

	a := analyzer.New(cfg, logger.Logger, nil)
	ds, err := a.Load(chartSourceFlag)
	if err != nil {
		return err
	}

	r := render.New(cfg.Output.Dir, cfg.Charts.Width, cfg.Charts.Height, cfg.Charts.HistogramBins, logger.Logger)
	path, err := r.Render(ds, kind, chartColumnFlag)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", sym.Chart, path)
	return nil
}
