package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/db"
	"github.com/chpraneeth994/data-analyzer/display"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/logger"
	"github.com/chpraneeth994/data-analyzer/session"
	"github.com/chpraneeth994/data-analyzer/sym"
)

// HistoryCmd represents the history command
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: sym.At + " List recent analysis sessions",
	Long: sym.At + ` history - Recorded pipeline runs, newest first

Each run of the pipeline records a session: the dataset source, its shape,
and start/finish timestamps.

Examples:
  analyzer history              # Last 20 sessions
  analyzer history --limit 5    # Last 5 sessions
  analyzer history --json       # Machine-readable output`,
	RunE: runHistory,
}

var historyLimitFlag int

func init() {
	HistoryCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Number of sessions to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := config.GetDatabasePath()
	if err != nil {
		return errors.Wrap(err, "failed to resolve database path")
	}

	database, err := db.Open(path, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	if err := db.Migrate(database, logger.Logger); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	store := session.NewStore(database)
	sessions, err := store.History(cmd.Context(), historyLimitFlag)
	if err != nil {
		return errors.Wrap(err, "failed to load session history")
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(sessions)
	}

	if len(sessions) == 0 {
		pterm.Info.Println("No sessions recorded yet")
		return nil
	}

	data := pterm.TableData{
		{"Session", "Source", "Started", "Duration", "Shape"},
	}
	for _, s := range sessions {
		data = append(data, []string{
			s.ShortID(),
			s.Source,
			s.StartedAt.Format(time.DateTime),
			s.Duration().Round(time.Millisecond).String(),
			fmt.Sprintf("%dx%d", s.Rows, s.Columns),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
