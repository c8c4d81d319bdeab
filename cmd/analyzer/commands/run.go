package commands

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chpraneeth994/data-analyzer/analyzer"
	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/db"
	"github.com/chpraneeth994/data-analyzer/display"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/logger"
	"github.com/chpraneeth994/data-analyzer/session"
	"github.com/chpraneeth994/data-analyzer/stats"
	"github.com/chpraneeth994/data-analyzer/sym"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: sym.Run + " Execute the full analysis pipeline",
	Long: sym.Run + ` run - Load a dataset, compute statistics, render charts, write a report

Runs the pipeline end to end: load, summarize, visualize, report. Each run
records a session with source, shape, and timestamps.

Examples:
  analyzer run                             # Built-in sample dataset
  analyzer run --source sales.csv          # CSV file
  analyzer run --source sales.csv --out ./charts`,
	RunE: runAnalysis,
}

var (
	runSourceFlag string
	runOutFlag    string
)

func init() {
	RunCmd.Flags().StringVarP(&runSourceFlag, "source", "s", "", "Dataset source: a CSV path, or empty/\"sample\" for generated data")
	RunCmd.Flags().StringVar(&runOutFlag, "out", "", "Output directory for charts and the report (overrides config)")
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if runOutFlag != "" {
		cfg.Output.Dir = runOutFlag
	}

	// Session history is best-effort: a broken database degrades to an
	// unrecorded run, never a failed one.
	store, database := openStore()
	if database != nil {
		defer database.Close()
	}

	a := analyzer.New(cfg, logger.Logger, store)
	result, err := a.Run(cmd.Context(), runSourceFlag)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(result)
	}

	printResult(result)
	return nil
}

// openStore opens the configured SQLite database and returns a session
// store along with the handle the caller must close. Both are nil when
// the database is unavailable.
func openStore() (*session.Store, *sql.DB) {
	path, err := config.GetDatabasePath()
	if err != nil {
		logger.Warnw("Session history disabled", "error", err)
		return nil, nil
	}
	database, err := db.Open(path, logger.Logger)
	if err != nil {
		logger.Warnw("Session history disabled", "error", err, logger.FieldFile, path)
		return nil, nil
	}
	if err := db.Migrate(database, logger.Logger); err != nil {
		logger.Warnw("Session history disabled", "error", err)
		database.Close()
		return nil, nil
	}
	return session.NewStore(database), database
}

func printResult(r *analyzer.Result) {
	pterm.DefaultSection.Printf("%s Analysis of %s", sym.Run, r.Session.Source)

	printSummaryTable(r.Columns, r.Summary)

	if len(r.Correlation.StrongPairs) > 0 {
		pterm.DefaultSection.Printf("%s Strong correlations", sym.Stats)
		for _, p := range r.Correlation.StrongPairs {
			fmt.Printf("  %s / %s: r = %.3f\n", p.A, p.B, p.R)
		}
	}

	if r.Trend != nil {
		pterm.DefaultSection.Printf("%s Trend: %s", sym.Stats, r.Trend.Column)
		fmt.Printf("  Direction:  %s\n", r.Trend.Direction)
		fmt.Printf("  Mean:       %.2f\n", r.Trend.Mean)
		fmt.Printf("  Volatility: %.2f\n", r.Trend.Volatility)
	}

	if r.Categories != nil {
		pterm.DefaultSection.Printf("%s Categories: %s", sym.Stats, r.Categories.Column)
		for _, g := range r.Categories.Groups {
			fmt.Printf("  %-16s %d rows\n", g.Category, g.Count)
		}
		if r.Categories.Best != "" {
			fmt.Printf("  Best: %s\n", r.Categories.Best)
		}
	}

	pterm.DefaultSection.Printf("%s Outputs", sym.Report)
	for _, p := range r.Charts {
		fmt.Printf("  %s %s\n", sym.Chart, p)
	}
	fmt.Printf("  %s %s\n", sym.Report, r.ReportPath)

	fmt.Printf("\n%s Session %s (%d rows, %d cols) in %s\n",
		sym.At, r.Session.ShortID(), r.Session.Rows, r.Session.Columns, r.Session.Duration().Round(time.Millisecond))
}

func printSummaryTable(columns []string, summary stats.Summary) {
	if len(summary) == 0 {
		pterm.Info.Println("No numeric columns; summary is empty")
		return
	}

	data := pterm.TableData{
		{"Column", "Count", "Mean", "Median", "Std", "Min", "Max"},
	}
	for _, col := range columns {
		cs, ok := summary[col]
		if !ok {
			continue
		}
		data = append(data, []string{
			col,
			fmt.Sprintf("%d", cs.Count),
			fmt.Sprintf("%.2f", cs.Mean),
			fmt.Sprintf("%.2f", cs.Median),
			fmt.Sprintf("%.2f", cs.Std),
			fmt.Sprintf("%.2f", cs.Min),
			fmt.Sprintf("%.2f", cs.Max),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logger.Warnw("Failed to render summary table", "error", err)
	}
}
