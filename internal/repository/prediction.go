package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
)

// Prediction defines the interface for prediction persistence
type Prediction interface {
	// Upsert inserts or replaces the user's pick for a fight. A locked
	// prediction is never overwritten; attempting to do so returns
	// domain.ErrPredictionsLocked.
	Upsert(ctx context.Context, prediction *domain.Prediction) error

	GetByUserAndFight(ctx context.Context, userID, fightID uuid.UUID) (*domain.Prediction, error)
	ListByFight(ctx context.Context, fightID uuid.UUID) ([]domain.Prediction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Prediction, error)

	// LockByFight freezes every prediction for a fight; returns rows locked
	LockByFight(ctx context.Context, fightID uuid.UUID) (int64, error)

	// ApplyScore writes the scoring fields onto a prediction. Only the
	// resolution engine calls this.
	ApplyScore(ctx context.Context, predictionID uuid.UUID, score domain.PredictionScore) error
}
