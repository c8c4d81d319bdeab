// Package session records a time marker per analysis run, for lightweight
// auditability. Sessions are the only thing the analyzer persists:
// datasets and summaries never touch disk.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/host"
)

// Session marks one analysis run.
type Session struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	Rows       int       `json:"rows"`
	Columns    int       `json:"columns"`
	Hostname   string    `json:"hostname"`
	Platform   string    `json:"platform"`
}

// Begin starts a session for the given source descriptor, capturing the
// start timestamp and host identity.
func Begin(source string) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Source:    source,
		StartedAt: time.Now(),
	}

	// Host info is best effort; a probe failure never blocks a run
	if info, err := host.Info(); err == nil {
		s.Hostname = info.Hostname
		s.Platform = fmt.Sprintf("%s/%s", info.OS, info.KernelArch)
	}

	return s
}

// End records the finish timestamp.
func (s *Session) End() {
	s.FinishedAt = time.Now()
}

// SetShape records the dataset shape processed during this session.
func (s *Session) SetShape(rows, columns int) {
	s.Rows = rows
	s.Columns = columns
}

// Duration returns the elapsed run time, zero if the session has not ended.
func (s *Session) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// ShortID returns the first 8 characters of the session ID for display.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}
