package session

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chpraneeth994/data-analyzer/db"
	analyzertesting "github.com/chpraneeth994/data-analyzer/internal/testing"
)

func migratedStore(t *testing.T) *Store {
	t.Helper()
	database := analyzertesting.CreateTestDB(t)
	require.NoError(t, db.Migrate(database, nil))
	return NewStore(database)
}

func TestStoreSaveAndHistory(t *testing.T) {
	store := migratedStore(t)
	ctx := context.Background()

	first := Begin("sample")
	first.SetShape(100, 4)
	first.End()
	require.NoError(t, store.Save(ctx, first))

	time.Sleep(time.Millisecond)

	second := Begin("data.csv")
	second.SetShape(50, 3)
	second.End()
	require.NoError(t, store.Save(ctx, second))

	history, err := store.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	assert.Equal(t, "data.csv", history[0].Source)
	assert.Equal(t, 50, history[0].Rows)
	assert.Equal(t, 3, history[0].Columns)
	assert.False(t, history[0].FinishedAt.IsZero())

	// Roundtrip preserves ordering of timestamps
	assert.True(t, history[0].StartedAt.After(history[1].StartedAt))
}

func TestStoreHistoryLimit(t *testing.T) {
	store := migratedStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		s := Begin("sample")
		s.End()
		require.NoError(t, store.Save(ctx, s))
		time.Sleep(time.Millisecond)
	}

	history, err := store.History(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestStoreHistoryEmpty(t *testing.T) {
	store := migratedStore(t)

	history, err := store.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStoreSaveUnfinishedSession(t *testing.T) {
	store := migratedStore(t)
	ctx := context.Background()

	s := Begin("sample")
	require.NoError(t, store.Save(ctx, s))

	history, err := store.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].FinishedAt.IsZero())
}

func TestStoreSaveError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(assert.AnError)

	store := NewStore(mockDB)
	s := Begin("sample")

	err = store.Save(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving session")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreHistoryQueryError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery("SELECT id, source").
		WillReturnError(assert.AnError)

	store := NewStore(mockDB)

	_, err = store.History(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying session history")
	assert.NoError(t, mock.ExpectationsWereMet())
}
