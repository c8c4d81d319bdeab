package stats

import (
	"github.com/chpraneeth994/data-analyzer/dataset"
)

// ColumnStats is the per-column record of descriptive statistics.
// Std is the population standard deviation.
type ColumnStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// Summary maps column name to its statistics. Only numeric columns are
// covered; iterate Dataset.NumericColumns() for a stable order.
type Summary map[string]ColumnStats

// Describe computes descriptive statistics for every numeric column of the
// Dataset. Non-numeric columns are skipped. An empty Dataset yields an
// empty Summary, never an error.
func Describe(ds *dataset.Dataset) Summary {
	summary := make(Summary)
	if ds == nil || ds.Empty() {
		return summary
	}

	for _, col := range ds.NumericColumns() {
		values, err := ds.Float(col)
		if err != nil {
			continue
		}
		min, max := MinMax(values)
		summary[col] = ColumnStats{
			Count:  len(values),
			Mean:   Mean(values),
			Median: Median(values),
			Std:    Std(values),
			Min:    min,
			Max:    max,
			Q1:     Percentile(values, 25),
			Q3:     Percentile(values, 75),
		}
	}
	return summary
}
