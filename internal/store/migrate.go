package store

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations run in order on every Open. Each statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id    TEXT PRIMARY KEY,
		position   INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS onboarding_progress (
		user_id    TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS word_events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence   INTEGER NOT NULL UNIQUE,
		user_id    TEXT NOT NULL,
		word       TEXT NOT NULL,
		language   TEXT NOT NULL,
		learned_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_word_events_user_learned
		ON word_events (user_id, learned_at)`,
	`CREATE TABLE IF NOT EXISTS global_sequence (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`,
	`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
