package resolution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cageside/fightcred/internal/domain"
)

// MockFightRepository
type MockFightRepository struct {
	mock.Mock
}

func (m *MockFightRepository) Create(ctx context.Context, fight *domain.Fight) error {
	args := m.Called(ctx, fight)
	return args.Error(0)
}

func (m *MockFightRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fight), args.Error(1)
}

func (m *MockFightRepository) List(ctx context.Context, status *domain.FightStatus, limit int) ([]domain.Fight, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fight), args.Error(1)
}

func (m *MockFightRepository) ListPending(ctx context.Context, now time.Time) ([]domain.Fight, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fight), args.Error(1)
}

func (m *MockFightRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.FightStatus) (int64, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFightRepository) Complete(ctx context.Context, id uuid.UUID, outcome domain.FightOutcome, resolvedAt time.Time) (int64, error) {
	args := m.Called(ctx, id, outcome, resolvedAt)
	return args.Get(0).(int64), args.Error(1)
}

// MockPredictionRepository
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Upsert(ctx context.Context, prediction *domain.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetByUserAndFight(ctx context.Context, userID, fightID uuid.UUID) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListByFight(ctx context.Context, fightID uuid.UUID) ([]domain.Prediction, error) {
	args := m.Called(ctx, fightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) LockByFight(ctx context.Context, fightID uuid.UUID) (int64, error) {
	args := m.Called(ctx, fightID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPredictionRepository) ApplyScore(ctx context.Context, predictionID uuid.UUID, score domain.PredictionScore) error {
	args := m.Called(ctx, predictionID, score)
	return args.Error(0)
}

// MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Ensure(ctx context.Context, userID uuid.UUID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) ApplyResolution(ctx context.Context, userID uuid.UUID, fold domain.ProfileFold) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, fold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Leaderboard(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

// MockFighterStatRepository
type MockFighterStatRepository struct {
	mock.Mock
}

func (m *MockFighterStatRepository) Increment(ctx context.Context, userID uuid.UUID, fighterName string, correct bool) error {
	args := m.Called(ctx, userID, fighterName, correct)
	return args.Error(0)
}

func (m *MockFighterStatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserFighterStat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserFighterStat), args.Error(1)
}

// MockCredibilityLogRepository
type MockCredibilityLogRepository struct {
	mock.Mock
}

func (m *MockCredibilityLogRepository) Append(ctx context.Context, entry *domain.CredibilityLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCredibilityLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CredibilityLogEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CredibilityLogEntry), args.Error(1)
}
