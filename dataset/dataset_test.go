package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chpraneeth994/data-analyzer/errors"
)

func TestLoadSample(t *testing.T) {
	ds := LoadSample(42, 100)

	assert.Equal(t, 100, ds.Rows())
	assert.Equal(t, 4, ds.Cols())
	assert.Equal(t, SourceSample, ds.Source())
	assert.Equal(t, []string{ColDate, ColSales, ColCusts, ColCategory}, ds.Columns())

	// All columns share the same length
	for _, col := range ds.Columns() {
		records, err := ds.Records(col)
		require.NoError(t, err)
		assert.Len(t, records, 100, "column %s", col)
	}
}

func TestLoadSample_Deterministic(t *testing.T) {
	a := LoadSample(42, 50)
	b := LoadSample(42, 50)

	salesA, err := a.Float(ColSales)
	require.NoError(t, err)
	salesB, err := b.Float(ColSales)
	require.NoError(t, err)
	assert.Equal(t, salesA, salesB)

	c := LoadSample(7, 50)
	salesC, err := c.Float(ColSales)
	require.NoError(t, err)
	assert.NotEqual(t, salesA, salesC)
}

func TestLoadSample_ColumnTypes(t *testing.T) {
	ds := LoadSample(42, 20)

	assert.Equal(t, []string{ColSales, ColCusts}, ds.NumericColumns())
	assert.Equal(t, []string{ColDate, ColCategory}, ds.CategoricalColumns())

	assert.True(t, ds.IsNumeric(ColSales))
	assert.False(t, ds.IsNumeric(ColCategory))
	assert.False(t, ds.IsNumeric("nope"))
}

func TestLoadSample_Dates(t *testing.T) {
	ds := LoadSample(42, 3)

	dates, err := ds.Records(ColDate)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, dates)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "City,Temp,Rainfall\nOslo,4.5,80\nLima,19.0,2\nDelhi,31.2,65\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ds, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Rows())
	assert.Equal(t, []string{"Temp", "Rainfall"}, ds.NumericColumns())
	assert.Equal(t, []string{"City"}, ds.CategoricalColumns())

	temps, err := ds.Float("Temp")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, temps[0], 1e-9)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))

	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestLoadCSV_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "a,b,c\n1,2,3\n4,5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadCSV(path)

	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestLoadCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := LoadCSV(path)

	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestFloat_NonNumericColumn(t *testing.T) {
	ds := LoadSample(42, 10)

	_, err := ds.Float(ColCategory)
	require.Error(t, err)

	_, err = ds.Float("missing")
	require.Error(t, err)
}

func TestEmptyDataset(t *testing.T) {
	var ds Dataset

	assert.True(t, ds.Empty())
	assert.Equal(t, 0, ds.Rows())
	assert.Empty(t, ds.NumericColumns())
	assert.Empty(t, ds.CategoricalColumns())
}
