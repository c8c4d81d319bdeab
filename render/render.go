// Package render draws charts from a Dataset using go-chart. Charts are
// written as PNG files into a configured output directory.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"

	"github.com/chpraneeth994/data-analyzer/dataset"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/stats"
)

// Kind selects a chart type.
type Kind string

const (
	KindLine      Kind = "line"
	KindHistogram Kind = "hist"
	KindBar       Kind = "bar"
)

// ParseKind validates a chart-type selector from the CLI.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindLine:
		return KindLine, nil
	case KindHistogram, "histogram":
		return KindHistogram, nil
	case KindBar:
		return KindBar, nil
	}
	return "", errors.Wrapf(errors.ErrRender, "unknown chart kind %q", s)
}

// Renderer writes charts for one output directory and chart geometry.
type Renderer struct {
	outDir string
	width  int
	height int
	bins   int
	log    *zap.SugaredLogger
}

// New creates a Renderer. A nil logger disables render logging.
func New(outDir string, width, height, bins int, log *zap.SugaredLogger) *Renderer {
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 512
	}
	if bins <= 0 {
		bins = 20
	}
	return &Renderer{outDir: outDir, width: width, height: height, bins: bins, log: log}
}

// Render draws the requested chart into the output directory and returns
// the written file path. column may be empty to pick a default column for
// the kind. Fails with ErrRender when the kind is incompatible with the
// data shape.
func (r *Renderer) Render(ds *dataset.Dataset, kind Kind, column string) (string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return "", errors.Wrapf(err, "creating output dir %s", r.outDir)
	}

	name, err := r.chartFileName(ds, kind, column)
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := r.RenderTo(f, ds, kind, column); err != nil {
		os.Remove(path)
		return "", err
	}

	if r.log != nil {
		r.log.Infow("Chart written", "chart_kind", string(kind), "file", path)
	}
	return path, nil
}

// RenderTo draws the requested chart as PNG to w.
func (r *Renderer) RenderTo(w io.Writer, ds *dataset.Dataset, kind Kind, column string) error {
	if ds == nil || ds.Empty() {
		return errors.Wrap(errors.ErrRender, "dataset is empty")
	}

	switch kind {
	case KindLine:
		return r.renderLine(w, ds, column)
	case KindHistogram:
		return r.renderHistogram(w, ds, column)
	case KindBar:
		return r.renderBar(w, ds, column)
	}
	return errors.Wrapf(errors.ErrRender, "unknown chart kind %q", kind)
}

func (r *Renderer) chartFileName(ds *dataset.Dataset, kind Kind, column string) (string, error) {
	col := column
	var err error
	switch kind {
	case KindLine, KindHistogram:
		col, err = pickNumericColumn(ds, column)
	case KindBar:
		col, err = pickCategoryColumn(ds, column)
	default:
		return "", errors.Wrapf(errors.ErrRender, "unknown chart kind %q", kind)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s.png", kind, sanitize(col)), nil
}

func sanitize(name string) string {
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			return c
		}
		return '_'
	}, name)
}

// pickNumericColumn resolves the requested column, or the first numeric
// column when none was requested. ErrRender if the dataset has no usable
// numeric column.
func pickNumericColumn(ds *dataset.Dataset, requested string) (string, error) {
	if requested != "" {
		if !ds.IsNumeric(requested) {
			return "", errors.Wrapf(errors.ErrRender, "column %q is not numeric", requested)
		}
		return requested, nil
	}
	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return "", errors.Wrap(errors.ErrRender, "no numeric columns")
	}
	return numeric[0], nil
}

// pickCategoryColumn resolves the requested column, or the first
// categorical column that does not look like a date axis.
func pickCategoryColumn(ds *dataset.Dataset, requested string) (string, error) {
	if requested != "" {
		if !ds.HasColumn(requested) || ds.IsNumeric(requested) {
			return "", errors.Wrapf(errors.ErrRender, "column %q is not categorical", requested)
		}
		return requested, nil
	}
	for _, col := range ds.CategoricalColumns() {
		if !looksLikeDateColumn(ds, col) {
			return col, nil
		}
	}
	return "", errors.Wrap(errors.ErrRender, "no categorical columns")
}

func looksLikeDateColumn(ds *dataset.Dataset, col string) bool {
	records, err := ds.Records(col)
	if err != nil || len(records) == 0 {
		return false
	}
	_, err = time.Parse(dataset.DateLayout, records[0])
	return err == nil
}

// parseDateAxis returns the Date column as time values when present and
// parseable, otherwise nil.
func parseDateAxis(ds *dataset.Dataset, rows int) []time.Time {
	if !ds.HasColumn(dataset.ColDate) {
		return nil
	}
	records, err := ds.Records(dataset.ColDate)
	if err != nil || len(records) != rows {
		return nil
	}
	times := make([]time.Time, rows)
	for i, rec := range records {
		t, err := time.Parse(dataset.DateLayout, rec)
		if err != nil {
			return nil
		}
		times[i] = t
	}
	return times
}

func lineStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: chart.ColorBlue,
	}
}

func (r *Renderer) renderLine(w io.Writer, ds *dataset.Dataset, column string) error {
	col, err := pickNumericColumn(ds, column)
	if err != nil {
		return err
	}
	ys, err := ds.Float(col)
	if err != nil {
		return errors.Wrap(errors.ErrRender, err.Error())
	}

	var series chart.Series
	if times := parseDateAxis(ds, len(ys)); times != nil {
		// go-chart needs at least two X values
		if len(times) == 1 {
			times = append(times, times[0].Add(24*time.Hour))
			ys = append(ys, ys[0])
		}
		series = chart.TimeSeries{Name: col, XValues: times, YValues: ys, Style: lineStyle()}
	} else {
		xs := make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
		if len(xs) == 1 {
			xs = append(xs, 1)
			ys = append(ys, ys[0])
		}
		series = chart.ContinuousSeries{Name: col, XValues: xs, YValues: ys, Style: lineStyle()}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Over Time", col),
		Width:  r.width,
		Height: r.height,
		Series: []chart.Series{series},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(errors.ErrRender, "line chart for %q: %v", col, err)
	}
	return nil
}

func (r *Renderer) renderHistogram(w io.Writer, ds *dataset.Dataset, column string) error {
	col, err := pickNumericColumn(ds, column)
	if err != nil {
		return err
	}
	values, err := ds.Float(col)
	if err != nil {
		return errors.Wrap(errors.ErrRender, err.Error())
	}

	bars := histogramBars(values, r.bins)
	if len(bars) == 0 {
		return errors.Wrapf(errors.ErrRender, "column %q has no finite values", col)
	}
	graph := chart.BarChart{
		Title:      fmt.Sprintf("%s Distribution", col),
		Width:      r.width,
		Height:     r.height,
		BarWidth:   maxInt(r.width/(2*len(bars)), 4),
		BarSpacing: maxInt(r.width/(4*len(bars)), 2),
		Bars:       bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(errors.ErrRender, "histogram for %q: %v", col, err)
	}
	return nil
}

// histogramBars buckets values into equal-width bins. NaN and infinite
// values are skipped; nil is returned when no finite values remain. A
// degenerate range (all values equal) collapses to a single bin.
func histogramBars(values []float64, bins int) []chart.Value {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return nil
	}
	values = finite

	min, max := stats.MinMax(values)
	if min == max {
		return []chart.Value{{
			Label: fmt.Sprintf("%.4g", min),
			Value: float64(len(values)),
			Style: barStyle(),
		}}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins { // max lands in the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	bars := make([]chart.Value, bins)
	for i, count := range counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.4g", min+width*(float64(i)+0.5)),
			Value: float64(count),
			Style: barStyle(),
		}
	}
	return bars
}

func barStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 1,
		StrokeColor: chart.ColorBlack,
		FillColor:   chart.ColorGreen.WithAlpha(180),
	}
}

func (r *Renderer) renderBar(w io.Writer, ds *dataset.Dataset, column string) error {
	col, err := pickCategoryColumn(ds, column)
	if err != nil {
		return err
	}

	numeric := ds.NumericColumns()
	if len(numeric) == 0 {
		return errors.Wrap(errors.ErrRender, "bar chart needs a numeric column to total")
	}
	valueCol := numeric[0]

	grouped, err := stats.ByCategory(ds, col, []string{valueCol})
	if err != nil {
		return errors.Wrap(errors.ErrRender, err.Error())
	}

	palette := []drawing.Color{
		chart.ColorRed, chart.ColorBlue, chart.ColorGreen, chart.ColorOrange,
		chart.ColorCyan, chart.ColorYellow,
	}
	bars := make([]chart.Value, len(grouped.Groups))
	for i, group := range grouped.Groups {
		bars[i] = chart.Value{
			Label: group.Category,
			Value: group.Values[valueCol].Sum,
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: chart.ColorBlack,
				FillColor:   palette[i%len(palette)].WithAlpha(200),
			},
		}
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("%s by %s", valueCol, col),
		Width:      r.width,
		Height:     r.height,
		BarWidth:   maxInt(r.width/(2*len(bars)), 8),
		BarSpacing: maxInt(r.width/(4*len(bars)), 4),
		Bars:       bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(errors.ErrRender, "bar chart for %q: %v", col, err)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
