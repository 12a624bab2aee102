package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// rowQuerier is satisfied by *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sequence numbers appended events across users. It claims numbers inside
// the caller's transaction, so a rolled-back insert gives its number back
// and the stored sequence has no gaps.
type sequence struct {
	mu sync.Mutex
}

// next claims the next number through q. Callers hold lock for the whole
// surrounding transaction.
func (s *sequence) next(ctx context.Context, q rowQuerier) (int64, error) {
	var n int64
	err := q.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

func (s *sequence) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}
