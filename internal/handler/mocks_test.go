package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/fight"
	"github.com/cageside/fightcred/internal/prediction"
)

// MockFightService mocks the fight.Service interface
type MockFightService struct {
	mock.Mock
}

func (m *MockFightService) CreateFight(ctx context.Context, input fight.CreateInput) (*domain.Fight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fight), args.Error(1)
}

func (m *MockFightService) GetFight(ctx context.Context, id uuid.UUID) (*domain.Fight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fight), args.Error(1)
}

func (m *MockFightService) ListFights(ctx context.Context, status *domain.FightStatus, limit int) ([]domain.Fight, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fight), args.Error(1)
}

func (m *MockFightService) LockFight(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFightService) CancelFight(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFightService) ResolveFight(ctx context.Context, id uuid.UUID, outcome domain.FightOutcome) (*domain.ResolutionSummary, error) {
	args := m.Called(ctx, id, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolutionSummary), args.Error(1)
}

// MockPredictionService mocks the prediction.Service interface
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Submit(ctx context.Context, input prediction.SubmitInput) (*domain.Prediction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) GetByUserAndFight(ctx context.Context, userID, fightID uuid.UUID) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) ListByFight(ctx context.Context, fightID uuid.UUID) ([]domain.Prediction, error) {
	args := m.Called(ctx, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

// MockPollTrigger mocks the PollTrigger interface
type MockPollTrigger struct {
	mock.Mock
}

func (m *MockPollTrigger) TriggerNow() {
	m.Called()
}
