package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/onboarding"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	From     time.Time // learned_at >= From
	To       time.Time // learned_at <= To
	Language string    // only words in this language ("" = all)
}

// ProfileRepo persists the learner's frequency position.
type ProfileRepo interface {
	// Position returns the stored position and whether one exists.
	Position(ctx context.Context, userID uuid.UUID) (int, bool, error)

	// SetPosition stores the position, replacing any previous value.
	SetPosition(ctx context.Context, userID uuid.UUID, position int) error
}

// ProgressRepo persists onboarding progress snapshots.
type ProgressRepo interface {
	// Load returns the stored progress, or nil if none exists.
	Load(ctx context.Context, userID uuid.UUID) (*onboarding.Progress, error)

	// Save replaces the stored progress.
	Save(ctx context.Context, userID uuid.UUID, p onboarding.Progress) error

	// Delete removes the stored progress. Deleting a missing record is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// WordEventData captures a single learned word.
type WordEventData struct {
	UserID    uuid.UUID
	Word      string
	Language  string
	LearnedAt time.Time
}

// WordEvent is a stored WordEventData with its global sequence number.
type WordEvent struct {
	ID       int64
	Sequence int64
	WordEventData
}

// WordRepo provides append and query access to learned-word events.
type WordRepo interface {
	// AppendWord records a learned word and returns its sequence number.
	AppendWord(ctx context.Context, data WordEventData) (int64, error)

	// QueryWords returns a learner's words ordered by sequence.
	QueryWords(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]WordEvent, error)

	// LearnedAt returns the learn times of a learner's words, oldest first.
	LearnedAt(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]time.Time, error)

	// CountWords returns how many words the learner has recorded.
	CountWords(ctx context.Context, userID uuid.UUID) (int, error)
}
