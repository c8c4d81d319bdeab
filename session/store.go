package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/chpraneeth994/data-analyzer/errors"
)

// Store persists session records to SQLite for run history. The schema is
// created by db.Migrate.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts a session record.
func (st *Store) Save(ctx context.Context, s *Session) error {
	var finished interface{}
	if !s.FinishedAt.IsZero() {
		finished = s.FinishedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err := st.db.ExecContext(ctx, `
		INSERT INTO sessions (id, source, started_at, finished_at, rows, columns, hostname, platform)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Source, s.StartedAt.UTC().Format(time.RFC3339Nano), finished,
		s.Rows, s.Columns, s.Hostname, s.Platform)
	if err != nil {
		return errors.Wrapf(err, "saving session %s", s.ShortID())
	}
	return nil
}

// History returns the most recent sessions, newest first.
func (st *Store) History(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := st.db.QueryContext(ctx, `
		SELECT id, source, started_at, finished_at, rows, columns, hostname, platform
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying session history")
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s        Session
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Source, &started, &finished,
			&s.Rows, &s.Columns, &s.Hostname, &s.Platform); err != nil {
			return nil, errors.Wrap(err, "scanning session row")
		}

		s.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing started_at for %s", s.ID)
		}
		if finished.Valid {
			s.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing finished_at for %s", s.ID)
			}
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating session rows")
	}
	return sessions, nil
}

// Count returns the total number of recorded sessions.
func (st *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := st.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting sessions")
	}
	return n, nil
}
