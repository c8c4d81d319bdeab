package analyzer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chpraneeth994/data-analyzer/config"
	"github.com/chpraneeth994/data-analyzer/dataset"
	"github.com/chpraneeth994/data-analyzer/db"
	"github.com/chpraneeth994/data-analyzer/errors"
	analyzertesting "github.com/chpraneeth994/data-analyzer/internal/testing"
	"github.com/chpraneeth994/data-analyzer/session"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Sample: config.SampleConfig{Seed: 42, Rows: 60},
		Output: config.OutputConfig{Dir: t.TempDir()},
		Charts: config.ChartsConfig{Width: 400, Height: 300, HistogramBins: 10},
		Trend:  config.TrendConfig{Window: 7},
	}
}

func TestRun_Sample(t *testing.T) {
	cfg := testConfig(t)
	a := New(cfg, nil, nil)

	result, err := a.Run(context.Background(), "")
	require.NoError(t, err)

	require.NotNil(t, result.Session)
	assert.Equal(t, dataset.SourceSample, result.Session.Source)
	assert.Equal(t, 60, result.Session.Rows)
	assert.False(t, result.Session.FinishedAt.IsZero())
	assert.True(t, result.Session.FinishedAt.After(result.Session.StartedAt) ||
		result.Session.FinishedAt.Equal(result.Session.StartedAt))

	// Summary covers exactly the numeric columns
	assert.Len(t, result.Summary, 2)
	assert.Contains(t, result.Summary, dataset.ColSales)
	assert.Contains(t, result.Summary, dataset.ColCusts)

	// Full dashboard: line, histogram, bar
	require.Len(t, result.Charts, 3)
	for _, p := range result.Charts {
		assert.FileExists(t, p)
	}

	assert.Equal(t, filepath.Join(cfg.Output.Dir, ReportFileName), result.ReportPath)
	assert.FileExists(t, result.ReportPath)

	require.NotNil(t, result.Trend)
	assert.Equal(t, dataset.ColSales, result.Trend.Column)

	require.NotNil(t, result.Categories)
	assert.Equal(t, dataset.ColCategory, result.Categories.Column)
	assert.NotEmpty(t, result.Categories.Best)
}

func TestRun_MissingSource(t *testing.T) {
	a := New(testConfig(t), nil, nil)

	_, err := a.Run(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestRun_RecordsHistory(t *testing.T) {
	database := analyzertesting.CreateTestDB(t)
	require.NoError(t, db.Migrate(database, nil))
	store := session.NewStore(database)

	a := New(testConfig(t), nil, store)

	_, err := a.Run(context.Background(), "sample")
	require.NoError(t, err)
	_, err = a.Run(context.Background(), "sample")
	require.NoError(t, err)

	history, err := store.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Strictly increasing session timestamps across consecutive runs
	assert.True(t, history[0].StartedAt.After(history[1].StartedAt))
}

func TestLoad_CSV(t *testing.T) {
	a := New(testConfig(t), nil, nil)

	ds, err := a.Load("sample")
	require.NoError(t, err)
	assert.Equal(t, 60, ds.Rows())
}

func TestValidate(t *testing.T) {
	a := New(testConfig(t), nil, nil)
	assert.NoError(t, a.Validate())

	bad := New(&config.Config{}, nil, nil)
	assert.Error(t, bad.Validate())
}
