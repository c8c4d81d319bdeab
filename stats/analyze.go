package stats

import (
	"github.com/chpraneeth994/data-analyzer/dataset"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/internal/util"
)

// StrongCorrelationThreshold is the |r| above which a pair of columns is
// reported as strongly correlated.
const StrongCorrelationThreshold = 0.5

// StrongPair is a pair of numeric columns with |r| above the threshold.
type StrongPair struct {
	A string  `json:"a"`
	B string  `json:"b"`
	R float64 `json:"r"`
}

// CorrelationResult holds the pairwise Pearson correlation matrix over the
// numeric columns, in column order.
type CorrelationResult struct {
	Columns     []string     `json:"columns"`
	Matrix      [][]float64  `json:"matrix"`
	StrongPairs []StrongPair `json:"strong_pairs"`
}

// Correlate computes the correlation matrix over all numeric columns and
// collects strongly correlated pairs. Fewer than two numeric columns yield
// an empty result.
func Correlate(ds *dataset.Dataset) CorrelationResult {
	result := CorrelationResult{}
	if ds == nil || ds.Empty() {
		return result
	}

	cols := ds.NumericColumns()
	if len(cols) < 2 {
		return result
	}

	values := make([][]float64, len(cols))
	for i, col := range cols {
		v, err := ds.Float(col)
		if err != nil {
			return result
		}
		values[i] = v
	}

	result.Columns = cols
	result.Matrix = make([][]float64, len(cols))
	for i := range cols {
		result.Matrix[i] = make([]float64, len(cols))
		result.Matrix[i][i] = 1
	}

	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := Correlation(values[i], values[j])
			result.Matrix[i][j] = r
			result.Matrix[j][i] = r
			if util.AbsFloat64(r) > StrongCorrelationThreshold {
				result.StrongPairs = append(result.StrongPairs, StrongPair{
					A: cols[i], B: cols[j], R: r,
				})
			}
		}
	}
	return result
}

// TrendDirection labels the overall direction of a moving average.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendFlat       TrendDirection = "flat"
)

// TrendResult describes a moving-average trend over one numeric column.
// Volatility is the population standard deviation of the raw values.
type TrendResult struct {
	Column        string         `json:"column"`
	Window        int            `json:"window"`
	Direction     TrendDirection `json:"direction"`
	Mean          float64        `json:"mean"`
	Volatility    float64        `json:"volatility"`
	MovingAverage []float64      `json:"moving_average"`
}

// Trend computes a moving-average trend for the named numeric column.
// Fails when the column is missing, non-numeric, or shorter than window.
func Trend(ds *dataset.Dataset, column string, window int) (TrendResult, error) {
	if window <= 0 {
		return TrendResult{}, errors.Newf("trend window must be positive, got %d", window)
	}
	values, err := ds.Float(column)
	if err != nil {
		return TrendResult{}, errors.Wrapf(err, "trend over %q", column)
	}
	if len(values) < window {
		return TrendResult{}, errors.Newf("column %q has %d rows, need at least %d for window", column, len(values), window)
	}

	ma := MovingAverage(values, window)
	direction := TrendFlat
	switch {
	case ma[len(ma)-1] > ma[0]:
		direction = TrendIncreasing
	case ma[len(ma)-1] < ma[0]:
		direction = TrendDecreasing
	}

	return TrendResult{
		Column:        column,
		Window:        window,
		Direction:     direction,
		Mean:          Mean(values),
		Volatility:    Std(values),
		MovingAverage: ma,
	}, nil
}

// CategoryAggregate holds per-category aggregates for one value column.
type CategoryAggregate struct {
	Mean float64 `json:"mean"`
	Sum  float64 `json:"sum"`
}

// CategoryGroup is one category with its row count and per-value-column
// aggregates.
type CategoryGroup struct {
	Category string                       `json:"category"`
	Count    int                          `json:"count"`
	Values   map[string]CategoryAggregate `json:"values"`
}

// CategoryResult groups rows by a categorical column. Best is the category
// with the highest total of the first value column.
type CategoryResult struct {
	Column string          `json:"column"`
	Groups []CategoryGroup `json:"groups"`
	Best   string          `json:"best"`
}

// ByCategory aggregates the given numeric value columns grouped by a
// categorical column. Groups are ordered by first appearance.
func ByCategory(ds *dataset.Dataset, catCol string, valueCols []string) (CategoryResult, error) {
	labels, err := ds.Records(catCol)
	if err != nil {
		return CategoryResult{}, errors.Wrapf(err, "grouping by %q", catCol)
	}
	if ds.IsNumeric(catCol) {
		return CategoryResult{}, errors.Newf("column %q is numeric, not categorical", catCol)
	}

	values := make(map[string][]float64, len(valueCols))
	for _, col := range valueCols {
		v, err := ds.Float(col)
		if err != nil {
			return CategoryResult{}, errors.Wrapf(err, "aggregating %q", col)
		}
		values[col] = v
	}

	// Bucket row indices per category, preserving first-appearance order
	var order []string
	buckets := make(map[string][]int)
	for i, label := range labels {
		if _, seen := buckets[label]; !seen {
			order = append(order, label)
		}
		buckets[label] = append(buckets[label], i)
	}

	result := CategoryResult{Column: catCol}
	bestTotal := 0.0
	bestSet := false
	for _, label := range order {
		rows := buckets[label]
		group := CategoryGroup{
			Category: label,
			Count:    len(rows),
			Values:   make(map[string]CategoryAggregate, len(valueCols)),
		}
		for _, col := range valueCols {
			sum := 0.0
			for _, idx := range rows {
				sum += values[col][idx]
			}
			group.Values[col] = CategoryAggregate{
				Mean: sum / float64(len(rows)),
				Sum:  sum,
			}
		}
		result.Groups = append(result.Groups, group)

		if len(valueCols) > 0 {
			total := group.Values[valueCols[0]].Sum
			if !bestSet || total > bestTotal {
				result.Best = label
				bestTotal = total
				bestSet = true
			}
		}
	}
	return result, nil
}
