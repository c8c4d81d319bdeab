package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "history.db"))

	store, database := openStore()
	require.NotNil(t, store)
	require.NotNil(t, database)

	// The caller owns the handle
	require.NoError(t, database.Close())
}

func TestOpenStore_UnavailableDatabase(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "missing", "history.db"))

	store, database := openStore()
	assert.Nil(t, store)
	assert.Nil(t, database)
}
