package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS deliveries (
		id          TEXT PRIMARY KEY,
		subject     TEXT NOT NULL,
		name        TEXT NOT NULL,
		due_date    TEXT NOT NULL,
		study_start TEXT,
		color       TEXT NOT NULL DEFAULT '',
		completed   INTEGER NOT NULL DEFAULT 0,
		priority    TEXT NOT NULL DEFAULT 'normal'
		            CHECK(priority IN ('low','normal','high')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deliveries_due ON deliveries(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_deliveries_subject ON deliveries(subject)`,

	`CREATE TABLE IF NOT EXISTS planner_settings (
		id                     TEXT PRIMARY KEY DEFAULT 'default',
		base_study_days        INTEGER NOT NULL DEFAULT 4,
		variation_high         INTEGER NOT NULL DEFAULT 1,
		variation_normal       INTEGER NOT NULL DEFAULT 0,
		variation_low          INTEGER NOT NULL DEFAULT -1,
		allocation_window_days INTEGER NOT NULL DEFAULT 7,
		semester_start         TEXT
	)`,

	`INSERT OR IGNORE INTO planner_settings (id) VALUES ('default')`,
}
