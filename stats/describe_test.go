package stats

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chpraneeth994/data-analyzer/dataset"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	df := dataframe.New(
		series.New([]string{"a", "b", "a", "b"}, series.String, "Group"),
		series.New([]float64{1, 2, 3, 4}, series.Float, "Value"),
		series.New([]int{10, 20, 30, 40}, series.Int, "Score"),
	)
	ds, err := dataset.New(df, "test")
	require.NoError(t, err)
	return ds
}

func TestDescribe(t *testing.T) {
	ds := testDataset(t)

	summary := Describe(ds)
	require.Len(t, summary, 2)

	value, ok := summary["Value"]
	require.True(t, ok)
	assert.Equal(t, 4, value.Count)
	assert.InDelta(t, 2.5, value.Mean, 1e-12)
	assert.InDelta(t, 2.5, value.Median, 1e-12)
	assert.InDelta(t, 1.0, value.Min, 1e-12)
	assert.InDelta(t, 4.0, value.Max, 1e-12)
	assert.InDelta(t, 1.75, value.Q1, 1e-12)
	assert.InDelta(t, 3.25, value.Q3, 1e-12)

	// Non-numeric columns are skipped
	_, ok = summary["Group"]
	assert.False(t, ok)
}

func TestDescribe_EmptyDataset(t *testing.T) {
	var empty dataset.Dataset

	summary := Describe(&empty)
	assert.Empty(t, summary)

	assert.Empty(t, Describe(nil))
}

func TestCorrelate(t *testing.T) {
	ds := testDataset(t)

	result := Correlate(ds)
	require.Equal(t, []string{"Value", "Score"}, result.Columns)
	require.Len(t, result.Matrix, 2)

	// Score is a scalar multiple of Value: perfectly correlated
	assert.InDelta(t, 1.0, result.Matrix[0][1], 1e-9)
	assert.InDelta(t, 1.0, result.Matrix[0][0], 1e-12)
	assert.InDelta(t, result.Matrix[0][1], result.Matrix[1][0], 1e-12)

	require.Len(t, result.StrongPairs, 1)
	assert.Equal(t, "Value", result.StrongPairs[0].A)
	assert.Equal(t, "Score", result.StrongPairs[0].B)
}

func TestCorrelate_TooFewColumns(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3}, series.Float, "Only"),
	)
	ds, err := dataset.New(df, "test")
	require.NoError(t, err)

	result := Correlate(ds)
	assert.Empty(t, result.Columns)
	assert.Empty(t, result.StrongPairs)
}

func TestTrend(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4, 5, 6}, series.Float, "Rising"),
	)
	ds, err := dataset.New(df, "test")
	require.NoError(t, err)

	result, err := Trend(ds, "Rising", 3)
	require.NoError(t, err)
	assert.Equal(t, TrendIncreasing, result.Direction)
	assert.Equal(t, 3, result.Window)
	assert.InDelta(t, 3.5, result.Mean, 1e-12)
	assert.Len(t, result.MovingAverage, 4)
}

func TestTrend_Errors(t *testing.T) {
	ds := testDataset(t)

	_, err := Trend(ds, "Group", 2)
	assert.Error(t, err, "non-numeric column")

	_, err = Trend(ds, "Value", 10)
	assert.Error(t, err, "window larger than column")

	_, err = Trend(ds, "Value", 0)
	assert.Error(t, err, "zero window")

	_, err = Trend(ds, "missing", 2)
	assert.Error(t, err)
}

func TestByCategory(t *testing.T) {
	ds := testDataset(t)

	result, err := ByCategory(ds, "Group", []string{"Value"})
	require.NoError(t, err)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, "a", result.Groups[0].Category)
	assert.Equal(t, 2, result.Groups[0].Count)
	assert.InDelta(t, 4.0, result.Groups[0].Values["Value"].Sum, 1e-12)
	assert.InDelta(t, 2.0, result.Groups[0].Values["Value"].Mean, 1e-12)

	// b has total 2+4=6, beating a's 1+3=4
	assert.Equal(t, "b", result.Best)
}

func TestByCategory_EmptyLabelCanBeBest(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"", "", "x"}, series.String, "Group"),
		series.New([]float64{5, 5, 3}, series.Float, "Value"),
	)
	ds, err := dataset.New(df, "test")
	require.NoError(t, err)

	result, err := ByCategory(ds, "Group", []string{"Value"})
	require.NoError(t, err)

	// The empty-string label totals 10, beating x's 3
	require.Len(t, result.Groups, 2)
	assert.Equal(t, "", result.Best)
}

func TestByCategory_Errors(t *testing.T) {
	ds := testDataset(t)

	_, err := ByCategory(ds, "Value", []string{"Score"})
	assert.Error(t, err, "numeric column cannot group")

	_, err = ByCategory(ds, "missing", []string{"Value"})
	assert.Error(t, err)

	_, err = ByCategory(ds, "Group", []string{"Group"})
	assert.Error(t, err, "non-numeric value column")
}
