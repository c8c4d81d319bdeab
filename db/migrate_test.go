package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyzertesting "github.com/chpraneeth994/data-analyzer/internal/testing"
)

func TestMigrate(t *testing.T) {
	database := analyzertesting.CreateTestDB(t)

	require.NoError(t, Migrate(database, nil))

	// Sessions table exists and is queryable
	var count int
	err := database.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// All migrations recorded
	var applied int
	err = database.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
}

func TestMigrate_Idempotent(t *testing.T) {
	database := analyzertesting.CreateTestDB(t)

	require.NoError(t, Migrate(database, nil))
	require.NoError(t, Migrate(database, nil))

	var applied int
	err := database.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
}
