// Package analyzer wires the full pipeline: load, summarize, visualize,
// report, with a session marker bracketing the run. Execution is strictly
// sequential; an error terminates the run.
package analyzer

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/dataset"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/render"
	"github.com/chpraneeth994/data-analyzer/report"
	"github.com/chpraneeth994/data-analyzer/session"
	"github.com/chpraneeth994/data-analyzer/stats"
)

// ReportFileName is the name of the text report inside the output dir.
const ReportFileName = "analysis_report.txt"

// Analyzer is the reusable pipeline object. Configure once, run per
// dataset.
type Analyzer struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	store *session.Store
}

// Result collects everything a run produced.
type Result struct {
	Session     *session.Session        `json:"session"`
	Columns     []string                `json:"columns"`
	Summary     stats.Summary           `json:"summary"`
	Correlation stats.CorrelationResult `json:"correlation"`
	Trend       *stats.TrendResult      `json:"trend,omitempty"`
	Categories  *stats.CategoryResult   `json:"categories,omitempty"`
	Charts      []string                `json:"charts"`
	ReportPath  string                  `json:"report_path"`
}

// New creates an Analyzer. store may be nil to skip run history; a nil
// logger disables logging.
func New(cfg *config.Config, log *zap.SugaredLogger, store *session.Store) *Analyzer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Analyzer{cfg: cfg, log: log, store: store}
}

// Load resolves a source descriptor into a Dataset: empty or "sample"
// selects the built-in generator, anything else is a CSV path.
func (a *Analyzer) Load(source string) (*dataset.Dataset, error) {
	if source == "" || source == dataset.SourceSample {
		return dataset.LoadSample(a.cfg.Sample.Seed, a.cfg.Sample.Rows), nil
	}
	return dataset.LoadCSV(source)
}

// Run executes the pipeline over one source and returns the collected
// result. The session is recorded to the store (when configured) even if
// history writing is the only thing that fails.
func (a *Analyzer) Run(ctx context.Context, source string) (*Result, error) {
	sess := session.Begin(normalizeSource(source))
	a.log.Infow("Session started [run]",
		"session_id", sess.ShortID(),
		"source", sess.Source,
	)

	ds, err := a.Load(source)
	if err != nil {
		return nil, err
	}
	sess.SetShape(ds.Rows(), ds.Cols())
	a.log.Infow("Dataset loaded [load]",
		"rows", ds.Rows(),
		"columns", ds.Cols(),
	)

	result := &Result{
		Session: sess,
		Columns: ds.Columns(),
		Summary: stats.Describe(ds),
	}

	result.Correlation = stats.Correlate(ds)

	if trend := a.trend(ds); trend != nil {
		result.Trend = trend
	}
	if categories := a.categories(ds); categories != nil {
		result.Categories = categories
	}

	renderer := render.New(a.cfg.Output.Dir, a.cfg.Charts.Width, a.cfg.Charts.Height,
		a.cfg.Charts.HistogramBins, a.log.Named("render"))
	charts, err := renderer.Dashboard(ds)
	if err != nil {
		return nil, err
	}
	result.Charts = charts

	reportPath := filepath.Join(a.cfg.Output.Dir, ReportFileName)
	if err := report.Write(reportPath, ds, result.Summary, sess); err != nil {
		return nil, err
	}
	result.ReportPath = reportPath

	sess.End()
	a.log.Infow("Session finished [run]",
		"session_id", sess.ShortID(),
		"duration_ms", sess.Duration().Milliseconds(),
	)

	if a.store != nil {
		// History is auditing, not output: a failed write is logged
		// but does not fail an otherwise complete run
		if err := a.store.Save(ctx, sess); err != nil {
			a.log.Warnw("Failed to record session history", "error", err)
		}
	}

	return result, nil
}

// trend computes the moving-average trend over the first numeric column
// that fits the configured window. Nil when no column qualifies.
func (a *Analyzer) trend(ds *dataset.Dataset) *stats.TrendResult {
	window := a.cfg.Trend.Window
	if window <= 0 {
		return nil
	}
	for _, col := range ds.NumericColumns() {
		result, err := stats.Trend(ds, col, window)
		if err != nil {
			continue
		}
		return &result
	}
	return nil
}

// categories aggregates numeric columns over the first categorical column
// that is not a date axis. Nil when the dataset has no such column.
func (a *Analyzer) categories(ds *dataset.Dataset) *stats.CategoryResult {
	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return nil
	}
	for _, col := range ds.CategoricalColumns() {
		if isDateColumn(ds, col) {
			continue
		}
		result, err := stats.ByCategory(ds, col, numeric)
		if err != nil {
			continue
		}
		return &result
	}
	return nil
}

func isDateColumn(ds *dataset.Dataset, col string) bool {
	records, err := ds.Records(col)
	if err != nil || len(records) == 0 {
		return false
	}
	_, err = time.Parse(dataset.DateLayout, records[0])
	return err == nil
}

func normalizeSource(source string) string {
	if source == "" {
		return dataset.SourceSample
	}
	return source
}

// Validate checks the configuration the Analyzer was built with.
func (a *Analyzer) Validate() error {
	if a.cfg == nil {
		return errors.New("analyzer has no configuration")
	}
	if a.cfg.Output.Dir == "" {
		return errors.New("output directory is not configured")
	}
	return nil
}
