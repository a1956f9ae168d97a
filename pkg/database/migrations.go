package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the full-text GIN index on ticket descriptions.
// Ent cannot express GIN indexes, so they live here instead of the schema.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_description_gin
		ON tickets USING gin(to_tsvector('portuguese', description))`)
	if err != nil {
		return fmt.Errorf("failed to create ticket description GIN index: %w", err)
	}

	return nil
}
