package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// wordRepo implements WordRepo.
type wordRepo struct {
	db  *sql.DB
	seq *sequence
}

func (r *wordRepo) AppendWord(ctx context.Context, data WordEventData) (int64, error) {
	learnedAt := data.LearnedAt
	if learnedAt.IsZero() {
		learnedAt = time.Now()
	}

	defer r.seq.lock()()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	seq, err := r.seq.next(ctx, tx)
	if err != nil {
		return 0, err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO word_events (sequence, user_id, word, language, learned_at) VALUES (?, ?, ?, ?, ?)`,
		seq, data.UserID.String(), data.Word, data.Language, learnedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("append word event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit word event: %w", err)
	}
	return seq, nil
}

func (r *wordRepo) QueryWords(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]WordEvent, error) {
	where, args := whereClause(userID, opts)
	q := `SELECT id, sequence, user_id, word, language, learned_at FROM word_events` +
		where + ` ORDER BY sequence ASC` + limitClause(opts)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query word events: %w", err)
	}
	defer rows.Close()

	var out []WordEvent
	for rows.Next() {
		var (
			e       WordEvent
			uid     string
			learned int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &uid, &e.Word, &e.Language, &learned); err != nil {
			return nil, fmt.Errorf("scan word event: %w", err)
		}
		e.UserID, err = uuid.Parse(uid)
		if err != nil {
			return nil, fmt.Errorf("parse user id %q: %w", uid, err)
		}
		e.LearnedAt = time.UnixMilli(learned).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate word events: %w", err)
	}
	return out, nil
}

func (r *wordRepo) LearnedAt(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]time.Time, error) {
	where, args := whereClause(userID, opts)
	q := `SELECT learned_at FROM word_events` + where + ` ORDER BY learned_at ASC` + limitClause(opts)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query learned times: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var ms int64
		if err := rows.Scan(&ms); err != nil {
			return nil, fmt.Errorf("scan learned time: %w", err)
		}
		out = append(out, time.UnixMilli(ms).UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learned times: %w", err)
	}
	return out, nil
}

func (r *wordRepo) CountWords(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM word_events WHERE user_id = ?`, userID.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

func whereClause(userID uuid.UUID, opts QueryOpts) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{userID.String()}
	if opts.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Language != "" {
		conds = append(conds, "language = ?")
		args = append(args, opts.Language)
	}
	if !opts.From.IsZero() {
		conds = append(conds, "learned_at >= ?")
		args = append(args, opts.From.UTC().UnixMilli())
	}
	if !opts.To.IsZero() {
		conds = append(conds, "learned_at <= ?")
		args = append(args, opts.To.UTC().UnixMilli())
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func limitClause(opts QueryOpts) string {
	if opts.Limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", opts.Limit)
}
