package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/onboarding"
)

// progressRepo implements ProgressRepo. Progress is stored as a JSON blob so
// new onboarding fields do not need a migration.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context, userID uuid.UUID) (*onboarding.Progress, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM onboarding_progress WHERE user_id = ?`, userID.String(),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	var p onboarding.Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	return &p, nil
}

func (r *progressRepo) Save(ctx context.Context, userID uuid.UUID, p onboarding.Progress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO onboarding_progress (user_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID.String(), string(b), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM onboarding_progress WHERE user_id = ?`, userID.String(),
	); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
