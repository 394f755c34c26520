package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
)

// Profile defines the interface for user aggregate persistence
type Profile interface {
	// Ensure creates the profile row if it does not exist yet
	Ensure(ctx context.Context, userID uuid.UUID, username string) error

	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// ApplyResolution folds one scoring event into the profile aggregates
	// inside a transaction, taking a row lock so concurrent folds for the
	// same user serialize at the database as well
	ApplyResolution(ctx context.Context, userID uuid.UUID, fold domain.ProfileFold) (*domain.UserProfile, error)

	Leaderboard(ctx context.Context, limit int) ([]domain.UserProfile, error)
}

// FighterStat defines the interface for per-fighter pick accuracy counters
type FighterStat interface {
	Increment(ctx context.Context, userID uuid.UUID, fighterName string, correct bool) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserFighterStat, error)
}

// CredibilityLog defines the interface for the append-only scoring audit log
type CredibilityLog interface {
	Append(ctx context.Context, entry *domain.CredibilityLogEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CredibilityLogEntry, error)
}
