// Package fight owns the fight lifecycle: create, lock, cancel and the
// admin resolve entry point. Scoring itself lives in the resolution engine.
package fight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/repository"
	"github.com/cageside/fightcred/internal/resolution"
)

// DefaultListLimit caps unbounded fight listings
const DefaultListLimit = 50

// CreateInput carries the fields for a new fight
type CreateInput struct {
	EventName    string
	ScheduledAt  time.Time
	Fighter1     string
	Fighter2     string
	Fighter1Odds *int
	Fighter2Odds *int
}

// Service defines the fight lifecycle interface
type Service interface {
	CreateFight(ctx context.Context, input CreateInput) (*domain.Fight, error)
	GetFight(ctx context.Context, id uuid.UUID) (*domain.Fight, error)
	ListFights(ctx context.Context, status *domain.FightStatus, limit int) ([]domain.Fight, error)

	// LockFight transitions an upcoming fight to live and freezes every
	// prediction on it. This is the point of no return for picks.
	LockFight(ctx context.Context, id uuid.UUID) error

	// CancelFight takes a fight out of play; its predictions never score
	CancelFight(ctx context.Context, id uuid.UUID) error

	// ResolveFight is the admin resolution entry; input is already in
	// canonical form so it goes straight to the engine
	ResolveFight(ctx context.Context, id uuid.UUID, outcome domain.FightOutcome) (*domain.ResolutionSummary, error)
}

type service struct {
	fights      repository.Fight
	predictions repository.Prediction
	engine      resolution.Service
}

// NewService creates a new fight service
func NewService(fights repository.Fight, predictions repository.Prediction, engine resolution.Service) Service {
	return &service{
		fights:      fights,
		predictions: predictions,
		engine:      engine,
	}
}

func (s *service) CreateFight(ctx context.Context, input CreateInput) (*domain.Fight, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	fight := &domain.Fight{
		ID:           uuid.New(),
		EventName:    strings.TrimSpace(input.EventName),
		ScheduledAt:  input.ScheduledAt.UTC(),
		Fighter1:     strings.TrimSpace(input.Fighter1),
		Fighter2:     strings.TrimSpace(input.Fighter2),
		Fighter1Odds: input.Fighter1Odds,
		Fighter2Odds: input.Fighter2Odds,
		Status:       domain.FightStatusUpcoming,
	}

	if err := s.fights.Create(ctx, fight); err != nil {
		return nil, fmt.Errorf("failed to create fight: %w", err)
	}

	logger.FromContext(ctx).Info("Fight created",
		"fight_id", fight.ID,
		"event_name", fight.EventName,
		"fighter1", fight.Fighter1,
		"fighter2", fight.Fighter2)

	return fight, nil
}

func (s *service) GetFight(ctx context.Context, id uuid.UUID) (*domain.Fight, error) {
	fight, err := s.fights.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fight: %w", err)
	}
	if fight == nil {
		return nil, domain.ErrFightNotFound
	}
	return fight, nil
}

func (s *service) ListFights(ctx context.Context, status *domain.FightStatus, limit int) ([]domain.Fight, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	fights, err := s.fights.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights: %w", err)
	}
	return fights, nil
}

func (s *service) LockFight(ctx context.Context, id uuid.UUID) error {
	fight, err := s.fights.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get fight: %w", err)
	}
	if fight == nil {
		return domain.ErrFightNotFound
	}

	affected, err := s.fights.UpdateStatus(ctx, id, domain.FightStatusUpcoming, domain.FightStatusLive)
	if err != nil {
		return fmt.Errorf("failed to lock fight: %w", err)
	}
	if affected == 0 {
		return domain.ErrFightNotUpcoming
	}

	locked, err := s.predictions.LockByFight(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to lock predictions: %w", err)
	}

	logger.FromContext(ctx).Info("Fight locked", "fight_id", id, "predictions_locked", locked)
	return nil
}

func (s *service) CancelFight(ctx context.Context, id uuid.UUID) error {
	fight, err := s.fights.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get fight: %w", err)
	}
	if fight == nil {
		return domain.ErrFightNotFound
	}

	switch fight.Status {
	case domain.FightStatusCompleted:
		return domain.ErrFightAlreadyResolved
	case domain.FightStatusCancelled:
		return nil
	}

	affected, err := s.fights.UpdateStatus(ctx, id, fight.Status, domain.FightStatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel fight: %w", err)
	}
	if affected == 0 {
		// Status moved under us, most likely a concurrent resolution
		return domain.ErrFightAlreadyResolved
	}

	logger.FromContext(ctx).Info("Fight cancelled", "fight_id", id)
	return nil
}

func (s *service) ResolveFight(ctx context.Context, id uuid.UUID, outcome domain.FightOutcome) (*domain.ResolutionSummary, error) {
	return s.engine.ResolveFight(ctx, id, outcome, resolution.SourceAdmin)
}

func validateCreateInput(input CreateInput) error {
	f1 := strings.TrimSpace(input.Fighter1)
	f2 := strings.TrimSpace(input.Fighter2)
	if strings.TrimSpace(input.EventName) == "" || f1 == "" || f2 == "" {
		return domain.ErrInvalidInput
	}
	if strings.EqualFold(f1, f2) {
		return domain.ErrInvalidInput
	}
	if input.ScheduledAt.IsZero() {
		return domain.ErrInvalidInput
	}
	if (input.Fighter1Odds != nil && *input.Fighter1Odds == 0) ||
		(input.Fighter2Odds != nil && *input.Fighter2Odds == 0) {
		return domain.ErrInvalidOdds
	}
	return nil
}
