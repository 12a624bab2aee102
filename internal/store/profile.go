package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// profileRepo implements ProfileRepo with raw SQL.
type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Position(ctx context.Context, userID uuid.UUID) (int, bool, error) {
	var pos int
	err := r.db.QueryRowContext(ctx,
		`SELECT position FROM profiles WHERE user_id = ?`, userID.String(),
	).Scan(&pos)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query position: %w", err)
	}
	return pos, true, nil
}

func (r *profileRepo) SetPosition(ctx context.Context, userID uuid.UUID, position int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, position, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET position = excluded.position, updated_at = excluded.updated_at`,
		userID.String(), position, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}
