package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS set_records (
		id          TEXT PRIMARY KEY,
		date        TEXT NOT NULL,
		day         TEXT NOT NULL CHECK(day IN ('A','B')),
		exercise    TEXT NOT NULL,
		set_number  INTEGER NOT NULL CHECK(set_number > 0),
		weight      TEXT NOT NULL DEFAULT '0',
		reps        INTEGER NOT NULL DEFAULT 0 CHECK(reps >= 0),
		rpe         REAL NOT NULL DEFAULT 0,
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		UNIQUE(date, day, exercise, set_number)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_set_records_unit ON set_records(day, exercise, date)`,
	`CREATE INDEX IF NOT EXISTS idx_set_records_created ON set_records(created_at)`,
}
