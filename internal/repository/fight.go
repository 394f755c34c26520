package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
)

// Fight defines the interface for fight persistence
type Fight interface {
	Create(ctx context.Context, fight *domain.Fight) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Fight, error)
	List(ctx context.Context, status *domain.FightStatus, limit int) ([]domain.Fight, error)

	// ListPending returns fights eligible for result polling: live fights
	// plus upcoming fights whose scheduled start has passed
	ListPending(ctx context.Context, now time.Time) ([]domain.Fight, error)

	// UpdateStatus performs a compare-and-swap on the fight status.
	// Returns the number of rows affected (0 if the status didn't match).
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.FightStatus) (int64, error)

	// Complete writes the outcome and transitions the fight to completed in
	// one conditional update. The status write is the idempotency gate: it
	// succeeds only while the fight is not yet in a terminal state, so two
	// concurrent resolution attempts can never both pass.
	Complete(ctx context.Context, id uuid.UUID, outcome domain.FightOutcome, resolvedAt time.Time) (int64, error)
}
