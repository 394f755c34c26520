package resolution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/event"
)

func intPtr(v int) *int                            { return &v }
func ftPtr(v domain.FinishType) *domain.FinishType { return &v }
func methodPtr(v domain.Method) *domain.Method     { return &v }

func newTestFight() *domain.Fight {
	return &domain.Fight{
		ID:           uuid.New(),
		EventName:    "UFC 300",
		ScheduledAt:  time.Now().Add(-2 * time.Hour),
		Fighter1:     "Alex Pereira",
		Fighter2:     "Jamahal Hill",
		Fighter1Odds: intPtr(-200),
		Fighter2Odds: intPtr(170),
		Status:       domain.FightStatusLive,
	}
}

type testDeps struct {
	fights       *MockFightRepository
	predictions  *MockPredictionRepository
	profiles     *MockProfileRepository
	fighterStats *MockFighterStatRepository
	credLog      *MockCredibilityLogRepository
	bus          *event.MemoryBus
}

func newTestService(t *testing.T) (Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		fights:       new(MockFightRepository),
		predictions:  new(MockPredictionRepository),
		profiles:     new(MockProfileRepository),
		fighterStats: new(MockFighterStatRepository),
		credLog:      new(MockCredibilityLogRepository),
		bus:          event.NewMemoryBus(),
	}
	svc := NewService(deps.fights, deps.predictions, deps.profiles,
		deps.fighterStats, deps.credLog, deps.bus, 2)
	return svc, deps
}

func TestResolveFight_ScoresAllPredictions(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	outcome := domain.FightOutcome{
		Winner:     "Jamahal Hill",
		FinishType: domain.FinishTypeFinish,
		Method:     domain.MethodTKOKO,
	}

	// Underdog pick that nailed the full combination: +170 odds give a
	// 2.7x multiplier, so 270 winner points + 75 finish + 75 method +
	// 43 underdog bonus + 50 perfect bonus
	correctPred := domain.Prediction{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		FightID:          fight.ID,
		PickedWinner:     "Jamahal Hill",
		PickedFinishType: ftPtr(domain.FinishTypeFinish),
		PickedMethod:     methodPtr(domain.MethodTKOKO),
		OddsAtPrediction: intPtr(170),
		Status:           domain.PredictionStatusPending,
	}

	// Winner-only pick on the heavy favorite who lost
	wrongPred := domain.Prediction{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		FightID:          fight.ID,
		PickedWinner:     "Alex Pereira",
		OddsAtPrediction: intPtr(-200),
		Status:           domain.PredictionStatusPending,
	}

	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
	deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(2), nil)
	deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	deps.predictions.On("ListByFight", mock.Anything, fight.ID).Return([]domain.Prediction{correctPred, wrongPred}, nil)

	deps.predictions.On("ApplyScore", mock.Anything, correctPred.ID, domain.PredictionScore{
		Status:           domain.PredictionStatusCorrect,
		WinnerPoints:     270,
		FinishTypePoints: 75,
		MethodPoints:     75,
		BonusPoints:      93,
		TotalPoints:      513,
	}).Return(nil)
	deps.predictions.On("ApplyScore", mock.Anything, wrongPred.ID, domain.PredictionScore{
		Status:      domain.PredictionStatusWrong,
		TotalPoints: -75,
	}).Return(nil)

	deps.profiles.On("ApplyResolution", mock.Anything, correctPred.UserID, domain.ProfileFold{
		TotalPoints:     513,
		CorrectWinner:   true,
		PickedFinish:    true,
		CorrectFinish:   true,
		PickedMethod:    true,
		CorrectMethod:   true,
		UnderdogPick:    true,
		CorrectUnderdog: true,
	}).Return(&domain.UserProfile{}, nil)
	deps.profiles.On("ApplyResolution", mock.Anything, wrongPred.UserID, domain.ProfileFold{
		TotalPoints: -75,
	}).Return(&domain.UserProfile{}, nil)

	deps.fighterStats.On("Increment", mock.Anything, correctPred.UserID, "Jamahal Hill", true).Return(nil)
	deps.fighterStats.On("Increment", mock.Anything, wrongPred.UserID, "Alex Pereira", false).Return(nil)

	deps.credLog.On("Append", mock.Anything, mock.AnythingOfType("*domain.CredibilityLogEntry")).Return(nil)

	summary, err := svc.ResolveFight(context.Background(), fight.ID, outcome, SourceAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.PredictionsResolved)
	assert.Equal(t, 0, summary.Failures)
	assert.Empty(t, summary.Errors)

	deps.fights.AssertExpectations(t)
	deps.predictions.AssertExpectations(t)
	deps.profiles.AssertExpectations(t)
	deps.fighterStats.AssertExpectations(t)
	deps.credLog.AssertExpectations(t)
}

func TestResolveFight_FightNotFound(t *testing.T) {
	svc, deps := newTestService(t)
	id := uuid.New()
	deps.fights.On("GetByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.ResolveFight(context.Background(), id, domain.FightOutcome{
		Winner: "Someone", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}, SourceAdmin)
	assert.ErrorIs(t, err, domain.ErrFightNotFound)
}

func TestResolveFight_CancelledFight(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	fight.Status = domain.FightStatusCancelled
	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)

	_, err := svc.ResolveFight(context.Background(), fight.ID, domain.FightOutcome{
		Winner: fight.Fighter1, FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}, SourceAdmin)
	assert.ErrorIs(t, err, domain.ErrFightCancelled)
}

func TestResolveFight_AlreadyCompleted(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	fight.Status = domain.FightStatusCompleted
	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)

	_, err := svc.ResolveFight(context.Background(), fight.ID, domain.FightOutcome{
		Winner: fight.Fighter1, FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}, SourceAdmin)
	assert.ErrorIs(t, err, domain.ErrFightAlreadyResolved)
}

func TestResolveFight_LosesStatusRace(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	outcome := domain.FightOutcome{
		Winner: fight.Fighter1, FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}

	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
	deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(0), nil)
	// Another resolver won the conditional update between our read and write
	deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(0), nil)

	_, err := svc.ResolveFight(context.Background(), fight.ID, outcome, SourceAdmin)
	assert.ErrorIs(t, err, domain.ErrFightAlreadyResolved)
	deps.predictions.AssertNotCalled(t, "ListByFight", mock.Anything, fight.ID)
}

func TestResolveFight_InvalidOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.FightOutcome
	}{
		{
			name: "winner not on the card",
			outcome: domain.FightOutcome{
				Winner: "Israel Adesanya", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
			},
		},
		{
			name: "finish type contradicts method",
			outcome: domain.FightOutcome{
				Winner: "Alex Pereira", FinishType: domain.FinishTypeDecision, Method: domain.MethodTKOKO,
			},
		},
		{
			name: "draw with a winner",
			outcome: domain.FightOutcome{
				Winner: "Alex Pereira", FinishType: domain.FinishTypeDecision, Method: domain.MethodDraw,
			},
		},
		{
			name: "unknown method",
			outcome: domain.FightOutcome{
				Winner: "Alex Pereira", FinishType: domain.FinishTypeFinish, Method: domain.Method("dq"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			fight := newTestFight()
			deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)

			_, err := svc.ResolveFight(context.Background(), fight.ID, tt.outcome, SourceAdmin)
			assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
		})
	}
}

func TestResolveFight_DrawScoresEveryPickWrong(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	outcome := domain.FightOutcome{
		FinishType: domain.FinishTypeDecision,
		Method:     domain.MethodDraw,
	}

	pred := domain.Prediction{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		FightID:          fight.ID,
		PickedWinner:     "Alex Pereira",
		OddsAtPrediction: intPtr(-200),
		Status:           domain.PredictionStatusPending,
	}

	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
	deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(1), nil)
	deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	deps.predictions.On("ListByFight", mock.Anything, fight.ID).Return([]domain.Prediction{pred}, nil)

	deps.predictions.On("ApplyScore", mock.Anything, pred.ID, domain.PredictionScore{
		Status:      domain.PredictionStatusWrong,
		TotalPoints: -75,
	}).Return(nil)
	deps.profiles.On("ApplyResolution", mock.Anything, pred.UserID, domain.ProfileFold{
		TotalPoints: -75,
	}).Return(&domain.UserProfile{}, nil)
	deps.fighterStats.On("Increment", mock.Anything, pred.UserID, "Alex Pereira", false).Return(nil)
	deps.credLog.On("Append", mock.Anything, mock.AnythingOfType("*domain.CredibilityLogEntry")).Return(nil)

	summary, err := svc.ResolveFight(context.Background(), fight.ID, outcome, SourceAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PredictionsResolved)
}

func TestResolveFight_SkipsAlreadyScoredPredictions(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	outcome := domain.FightOutcome{
		Winner: "Alex Pereira", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}

	scored := domain.Prediction{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		FightID:      fight.ID,
		PickedWinner: "Alex Pereira",
		Status:       domain.PredictionStatusCorrect,
	}

	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
	deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(1), nil)
	deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	deps.predictions.On("ListByFight", mock.Anything, fight.ID).Return([]domain.Prediction{scored}, nil)

	summary, err := svc.ResolveFight(context.Background(), fight.ID, outcome, SourceAdmin)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PredictionsResolved)
	deps.predictions.AssertNotCalled(t, "ApplyScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveFight_PartialFailureStillResolvesOthers(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	outcome := domain.FightOutcome{
		Winner: "Alex Pereira", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}

	good := domain.Prediction{
		ID: uuid.New(), UserID: uuid.New(), FightID: fight.ID,
		PickedWinner: "Alex Pereira", Status: domain.PredictionStatusPending,
	}
	bad := domain.Prediction{
		ID: uuid.New(), UserID: uuid.New(), FightID: fight.ID,
		PickedWinner: "Jamahal Hill", Status: domain.PredictionStatusPending,
	}

	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
	deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(2), nil)
	deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	deps.predictions.On("ListByFight", mock.Anything, fight.ID).Return([]domain.Prediction{good, bad}, nil)

	deps.profiles.On("ApplyResolution", mock.Anything, good.UserID, mock.AnythingOfType("domain.ProfileFold")).Return(&domain.UserProfile{}, nil)
	deps.profiles.On("ApplyResolution", mock.Anything, bad.UserID, mock.AnythingOfType("domain.ProfileFold")).Return(&domain.UserProfile{}, nil)
	deps.fighterStats.On("Increment", mock.Anything, good.UserID, "Alex Pereira", true).Return(nil)
	deps.fighterStats.On("Increment", mock.Anything, bad.UserID, "Jamahal Hill", false).Return(nil)
	deps.credLog.On("Append", mock.Anything, mock.AnythingOfType("*domain.CredibilityLogEntry")).Return(nil)

	deps.predictions.On("ApplyScore", mock.Anything, good.ID, mock.AnythingOfType("domain.PredictionScore")).Return(nil)
	deps.predictions.On("ApplyScore", mock.Anything, bad.ID, mock.AnythingOfType("domain.PredictionScore")).Return(errors.New("db down"))

	summary, err := svc.ResolveFight(context.Background(), fight.ID, outcome, SourceAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PredictionsResolved)
	assert.Equal(t, 1, summary.Failures)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], bad.ID.String())
	assert.Contains(t, summary.Errors[0], "failed to apply score")
}

func TestResolveFight_FoldFailureLeavesPredictionPending(t *testing.T) {
	svc, deps := newTestService(t)
	fight := newTestFight()
	outcome := domain.FightOutcome{
		Winner: "Alex Pereira", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
	}

	pred := domain.Prediction{
		ID: uuid.New(), UserID: uuid.New(), FightID: fight.ID,
		PickedWinner: "Alex Pereira", Status: domain.PredictionStatusPending,
	}

	deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
	deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(1), nil)
	deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	deps.predictions.On("ListByFight", mock.Anything, fight.ID).Return([]domain.Prediction{pred}, nil)

	deps.profiles.On("ApplyResolution", mock.Anything, pred.UserID, mock.AnythingOfType("domain.ProfileFold")).
		Return(nil, errors.New("db down"))

	summary, err := svc.ResolveFight(context.Background(), fight.ID, outcome, SourceAdmin)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PredictionsResolved)
	assert.Equal(t, 1, summary.Failures)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "failed to fold profile")

	// The terminal stamp must not land when the fold failed; the row stays
	// pending so a rescoring pass can retry it, and no orphan log entry or
	// fighter stat is written.
	deps.predictions.AssertNotCalled(t, "ApplyScore", mock.Anything, mock.Anything, mock.Anything)
	deps.fighterStats.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	deps.credLog.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestResolveFight_PublishesSourceSpecificEvent(t *testing.T) {
	for _, tt := range []struct {
		source Source
		want   event.Type
	}{
		{SourceAdmin, event.FightResolved},
		{SourcePoller, event.FightAutoResolved},
	} {
		t.Run(string(tt.source), func(t *testing.T) {
			svc, deps := newTestService(t)
			fight := newTestFight()
			outcome := domain.FightOutcome{
				Winner: "Alex Pereira", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision,
			}

			var got []event.Type
			capture := func(ctx context.Context, evt event.Event) error {
				got = append(got, evt.Type)
				return nil
			}
			deps.bus.Subscribe(event.FightResolved, capture)
			deps.bus.Subscribe(event.FightAutoResolved, capture)

			deps.fights.On("GetByID", mock.Anything, fight.ID).Return(fight, nil)
			deps.predictions.On("LockByFight", mock.Anything, fight.ID).Return(int64(0), nil)
			deps.fights.On("Complete", mock.Anything, fight.ID, outcome, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
			deps.predictions.On("ListByFight", mock.Anything, fight.ID).Return([]domain.Prediction{}, nil)

			_, err := svc.ResolveFight(context.Background(), fight.ID, outcome, tt.source)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}
