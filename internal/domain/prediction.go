package domain

import (
	"time"

	"github.com/google/uuid"
)

// PredictionStatus is the tri-state scoring outcome of a pick
type PredictionStatus string

const (
	PredictionStatusPending PredictionStatus = "pending"
	PredictionStatusCorrect PredictionStatus = "correct"
	PredictionStatusPartial PredictionStatus = "partial"
	PredictionStatusWrong   PredictionStatus = "wrong"
)

// Prediction is one user's pick for one fight. There is at most one per
// (user, fight) pair; submissions before lock upsert in place. Once locked
// only the resolution engine may write the scoring fields.
type Prediction struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"user_id"`
	FightID          uuid.UUID   `json:"fight_id"`
	PickedWinner     string      `json:"picked_winner"`
	PickedFinishType *FinishType `json:"picked_finish_type,omitempty"`
	// Only tko_ko or submission; a decision pick is implied by the finish type
	PickedMethod *Method `json:"picked_method,omitempty"`
	// Snapshot of the picked side's odds at submission time, never recomputed
	OddsAtPrediction *int `json:"odds_at_prediction,omitempty"`
	IsLocked         bool `json:"is_locked"`

	Status           PredictionStatus `json:"status"`
	WinnerPoints     int              `json:"winner_points"`
	FinishTypePoints int              `json:"finish_type_points"`
	MethodPoints     int              `json:"method_points"`
	BonusPoints      int              `json:"bonus_points"`
	TotalPoints      int              `json:"total_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PredictionScore is the scoring write-back applied by the resolution engine
type PredictionScore struct {
	Status           PredictionStatus
	WinnerPoints     int
	FinishTypePoints int
	MethodPoints     int
	BonusPoints      int
	TotalPoints      int
}
