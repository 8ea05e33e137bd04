package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over trace failure messages and
// timeline event content from the dashboard.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_trace_records_failure_message_gin
		ON trace_records USING gin(to_tsvector('english', COALESCE(failure_message, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create failure_message GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_timeline_events_content_gin
		ON timeline_events USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create timeline content GIN index: %w", err)
	}

	return nil
}
