// Package prediction handles pick submission: validation against the fight
// card, odds snapshotting and upsert-until-locked semantics.
package prediction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/repository"
)

// DefaultListLimit caps a user's prediction history listing
const DefaultListLimit = 50

// SubmitInput carries one pick submission
type SubmitInput struct {
	UserID       uuid.UUID
	Username     string
	FightID      uuid.UUID
	PickedWinner string
	// Optional finish-type call; method may only be set alongside a
	// finish-type of "finish"
	PickedFinishType *domain.FinishType
	PickedMethod     *domain.Method
}

// Service defines the prediction interface
type Service interface {
	// Submit inserts or replaces the user's pick while the fight is still
	// upcoming. The picked side's odds are snapshotted here and never
	// recomputed.
	Submit(ctx context.Context, input SubmitInput) (*domain.Prediction, error)

	GetByUserAndFight(ctx context.Context, userID, fightID uuid.UUID) (*domain.Prediction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Prediction, error)
	ListByFight(ctx context.Context, fightID uuid.UUID) ([]domain.Prediction, error)
}

type service struct {
	predictions repository.Prediction
	fights      repository.Fight
	profiles    repository.Profile
}

// NewService creates a new prediction service
func NewService(predictions repository.Prediction, fights repository.Fight, profiles repository.Profile) Service {
	return &service{
		predictions: predictions,
		fights:      fights,
		profiles:    profiles,
	}
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*domain.Prediction, error) {
	fight, err := s.fights.GetByID(ctx, input.FightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fight: %w", err)
	}
	if fight == nil {
		return nil, domain.ErrFightNotFound
	}

	switch fight.Status {
	case domain.FightStatusUpcoming:
	case domain.FightStatusCancelled:
		return nil, domain.ErrFightCancelled
	default:
		return nil, domain.ErrPredictionsLocked
	}

	picked, err := canonicalPick(fight, input.PickedWinner)
	if err != nil {
		return nil, err
	}

	if err := validatePickDetail(input.PickedFinishType, input.PickedMethod); err != nil {
		return nil, err
	}

	// Profile row must exist before the first resolution can fold into it
	if err := s.profiles.Ensure(ctx, input.UserID, input.Username); err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}

	pred := &domain.Prediction{
		ID:               uuid.New(),
		UserID:           input.UserID,
		FightID:          input.FightID,
		PickedWinner:     picked,
		PickedFinishType: input.PickedFinishType,
		PickedMethod:     input.PickedMethod,
		OddsAtPrediction: fight.OddsFor(picked),
		Status:           domain.PredictionStatusPending,
	}

	if err := s.predictions.Upsert(ctx, pred); err != nil {
		return nil, fmt.Errorf("failed to upsert prediction: %w", err)
	}

	logger.FromContext(ctx).Info("Prediction submitted",
		"user_id", input.UserID,
		"fight_id", input.FightID,
		"picked_winner", picked)

	return pred, nil
}

func (s *service) GetByUserAndFight(ctx context.Context, userID, fightID uuid.UUID) (*domain.Prediction, error) {
	pred, err := s.predictions.GetByUserAndFight(ctx, userID, fightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}
	if pred == nil {
		return nil, domain.ErrPredictionNotFound
	}
	return pred, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Prediction, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	preds, err := s.predictions.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return preds, nil
}

func (s *service) ListByFight(ctx context.Context, fightID uuid.UUID) ([]domain.Prediction, error) {
	preds, err := s.predictions.ListByFight(ctx, fightID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return preds, nil
}

// canonicalPick resolves the submitted winner name onto one of the fight's
// two canonical fighter names, case-insensitively
func canonicalPick(fight *domain.Fight, pickedWinner string) (string, error) {
	name := strings.TrimSpace(pickedWinner)
	switch {
	case strings.EqualFold(name, fight.Fighter1):
		return fight.Fighter1, nil
	case strings.EqualFold(name, fight.Fighter2):
		return fight.Fighter2, nil
	}
	return "", domain.ErrUnknownFighterPick
}

// validatePickDetail enforces the closed pick vocabulary: a method call is
// only tko_ko or submission, and only meaningful on a "finish" pick
func validatePickDetail(finishType *domain.FinishType, method *domain.Method) error {
	if finishType != nil &&
		*finishType != domain.FinishTypeFinish && *finishType != domain.FinishTypeDecision {
		return domain.ErrInvalidInput
	}

	if method == nil {
		return nil
	}
	if *method != domain.MethodTKOKO && *method != domain.MethodSubmission {
		return domain.ErrInvalidMethodPick
	}
	if finishType == nil || *finishType != domain.FinishTypeFinish {
		return domain.ErrInvalidMethodPick
	}
	return nil
}
