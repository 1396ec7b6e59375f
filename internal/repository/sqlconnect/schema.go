package sqlconnect

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const booksDDL = `
CREATE TABLE IF NOT EXISTS books (
	isbn       TEXT PRIMARY KEY,
	amazon_url TEXT NOT NULL,
	author     TEXT NOT NULL,
	language   TEXT NOT NULL,
	pages      BIGINT NOT NULL,
	publisher  TEXT NOT NULL,
	title      TEXT NOT NULL,
	year       BIGINT NOT NULL
)`

// Migrate creates the books table if it is missing. The DDL is valid for
// both Postgres and SQLite.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, booksDDL); err != nil {
		return fmt.Errorf("create books table: %w", err)
	}
	return nil
}
