package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Cleanup deletes session history older than the retention duration and
// returns the number of sessions removed.
func (db *DB) Cleanup(ctx context.Context, retention time.Duration) (int, error) {
	if retention < time.Hour {
		retention = time.Hour
	}
	cutoff := formatUTC(time.Now().Add(-retention))

	db.LockWrite()
	defer db.UnlockWrite()

	result, err := db.conn.ExecContext(ctx, `DELETE FROM sessions WHERE started_at_utc < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	deleted, _ := result.RowsAffected()

	if deleted > 0 {
		slog.Info("cleaned up session history", "deleted", deleted, "older_than", retention)
	}
	return int(deleted), nil
}
