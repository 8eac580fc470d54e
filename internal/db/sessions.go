package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// Session is one completed exploration
type Session struct {
	ID        uuid.UUID
	Selection trips.Selection
	TripCount int
	StartedAt time.Time
}

// NewSession stamps a selection with a fresh id and the current time
func NewSession(sel trips.Selection, tripCount int) Session {
	return Session{
		ID:        uuid.New(),
		Selection: sel,
		TripCount: tripCount,
		StartedAt: time.Now().UTC(),
	}
}

// RecordSession stores a session in the history
func (db *DB) RecordSession(ctx context.Context, s Session) error {
	db.LockWrite()
	defer db.UnlockWrite()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO sessions (session_id, city, filter_mode, month, day, trip_count, started_at_utc)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID.String(), string(s.Selection.City), string(s.Selection.Mode),
		s.Selection.Month, s.Selection.Day, s.TripCount, formatUTC(s.StartedAt))
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// RecentSessions returns up to limit sessions, newest first
func (db *DB) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT session_id, city, filter_mode, month, day, trip_count, started_at_utc
		FROM sessions
		ORDER BY started_at_utc DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			id, city, mode, startedAt string
			s                         Session
		)
		if err := rows.Scan(&id, &city, &mode, &s.Selection.Month, &s.Selection.Day,
			&s.TripCount, &startedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid session id %q: %w", id, err)
		}
		s.Selection.City = trips.City(city)
		s.Selection.Mode = trips.FilterMode(mode)
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
