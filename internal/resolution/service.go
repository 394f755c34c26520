// Package resolution applies an authoritative fight outcome: it freezes
// predictions, writes the outcome exactly once, scores every prediction and
// folds the results into user profiles.
package resolution

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/concurrency"
	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/event"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/metrics"
	"github.com/cageside/fightcred/internal/repository"
	"github.com/cageside/fightcred/internal/scoring"
)

// Source identifies who triggered a resolution
type Source string

const (
	SourceAdmin  Source = "admin"
	SourcePoller Source = "poller"
)

// Service defines the resolution engine interface
type Service interface {
	// ResolveFight applies the outcome to the fight and scores all of its
	// predictions. Calling it twice for the same fight returns
	// domain.ErrFightAlreadyResolved on the second call; predictions are
	// never scored twice.
	ResolveFight(ctx context.Context, fightID uuid.UUID, outcome domain.FightOutcome, source Source) (*domain.ResolutionSummary, error)
}

type service struct {
	fights       repository.Fight
	predictions  repository.Prediction
	profiles     repository.Profile
	fighterStats repository.FighterStat
	credLog      repository.CredibilityLog
	bus          event.Bus
	locks        *concurrency.LockManager
	parallelism  int
}

// NewService creates a new resolution service
func NewService(
	fights repository.Fight,
	predictions repository.Prediction,
	profiles repository.Profile,
	fighterStats repository.FighterStat,
	credLog repository.CredibilityLog,
	bus event.Bus,
	parallelism int,
) Service {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	return &service{
		fights:       fights,
		predictions:  predictions,
		profiles:     profiles,
		fighterStats: fighterStats,
		credLog:      credLog,
		bus:          bus,
		locks:        concurrency.NewLockManager(),
		parallelism:  parallelism,
	}
}

func (s *service) ResolveFight(ctx context.Context, fightID uuid.UUID, outcome domain.FightOutcome, source Source) (*domain.ResolutionSummary, error) {
	log := logger.FromContext(ctx)

	fight, err := s.fights.GetByID(ctx, fightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fight: %w", err)
	}
	if fight == nil {
		return nil, domain.ErrFightNotFound
	}
	if fight.Status == domain.FightStatusCancelled {
		return nil, domain.ErrFightCancelled
	}
	if fight.Status == domain.FightStatusCompleted {
		return nil, domain.ErrFightAlreadyResolved
	}

	if err := validateOutcome(fight, outcome); err != nil {
		return nil, err
	}

	log.Info(LogMsgResolvingFight,
		"fight_id", fightID,
		"winner", outcome.Winner,
		"method", outcome.Method,
		"source", string(source))

	// Freeze picks before the outcome becomes visible
	if _, err := s.predictions.LockByFight(ctx, fightID); err != nil {
		return nil, fmt.Errorf("failed to lock predictions: %w", err)
	}

	// The conditional status write is the idempotency gate: of two
	// concurrent resolution attempts exactly one sees a row affected
	affected, err := s.fights.Complete(ctx, fightID, outcome, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to complete fight: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrFightAlreadyResolved
	}

	preds, err := s.predictions.ListByFight(ctx, fightID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	resolved, errs := s.scoreAll(ctx, fight, outcome, preds)

	summary := &domain.ResolutionSummary{
		FightID:             fightID,
		PredictionsResolved: resolved,
		Failures:            len(errs),
		Errors:              errs,
	}

	evt := event.NewFightResolvedEvent(fight, outcome, resolved)
	if source == SourcePoller {
		evt = event.NewFightAutoResolvedEvent(fight, outcome, resolved)
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgPublishFailed, "fight_id", fightID, "error", err)
	}

	log.Info(LogMsgFightResolved,
		"fight_id", fightID,
		"predictions_resolved", resolved,
		"failures", len(errs))

	return summary, nil
}

// scoreAll fans the per-prediction work out over a bounded pool. A failure
// on one prediction never aborts the rest; it is logged and collected so the
// caller can surface a partial resolution with the rows that still need a
// retry.
func (s *service) scoreAll(ctx context.Context, fight *domain.Fight, outcome domain.FightOutcome, preds []domain.Prediction) (resolved int, errs []string) {
	log := logger.FromContext(ctx)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, s.parallelism)
	)

	for i := range preds {
		pred := preds[i]
		if pred.Status != domain.PredictionStatusPending {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.scoreOne(ctx, fight, outcome, pred)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Sprintf("prediction %s: %v", pred.ID, err))
				metrics.PredictionFoldErrors.Inc()
				log.Error(LogMsgPredictionScoreFailed,
					"prediction_id", pred.ID,
					"user_id", pred.UserID,
					"error", err)
				return
			}
			resolved++
		}()
	}

	wg.Wait()
	return resolved, errs
}

// scoreOne scores a single prediction and folds it into the user's profile,
// fighter stats and audit log. The terminal status stamp on the prediction
// row is the LAST write: a failure anywhere in the fold leaves the row
// pending, so a rescoring pass picks it up instead of finding a stamped row
// whose profile and log writes never happened.
func (s *service) scoreOne(ctx context.Context, fight *domain.Fight, outcome domain.FightOutcome, pred domain.Prediction) error {
	breakdown := scoring.Score(
		scoring.Pick{
			Winner:     pred.PickedWinner,
			FinishType: pred.PickedFinishType,
			Method:     pred.PickedMethod,
		},
		scoring.Result{
			Winner:     outcome.Winner,
			FinishType: outcome.FinishType,
			Method:     outcome.Method,
		},
		pred.OddsAtPrediction,
	)

	underdogPick := pred.OddsAtPrediction != nil && *pred.OddsAtPrediction >= scoring.UnderdogOddsThreshold
	fold := domain.ProfileFold{
		TotalPoints:     breakdown.TotalPoints,
		CorrectWinner:   breakdown.CorrectWinner,
		PickedFinish:    pred.PickedFinishType != nil,
		CorrectFinish:   breakdown.CorrectFinish,
		PickedMethod:    pred.PickedMethod != nil,
		CorrectMethod:   breakdown.CorrectMethod,
		UnderdogPick:    underdogPick,
		CorrectUnderdog: underdogPick && breakdown.CorrectWinner,
	}

	// Serialize folds per user in-process; the repository additionally
	// takes a row lock so other instances serialize at the database
	err := s.locks.WithLock(pred.UserID.String(), func() error {
		_, err := s.profiles.ApplyResolution(ctx, pred.UserID, fold)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to fold profile: %w", err)
	}

	if err := s.fighterStats.Increment(ctx, pred.UserID, pred.PickedWinner, breakdown.CorrectWinner); err != nil {
		return fmt.Errorf("failed to increment fighter stat: %w", err)
	}

	entry := &domain.CredibilityLogEntry{
		UserID:                pred.UserID,
		FightID:               pred.FightID,
		PredictionID:          pred.ID,
		Status:                breakdown.Status,
		WinnerPoints:          breakdown.WinnerPoints,
		FinishTypePoints:      breakdown.FinishTypePoints,
		MethodPoints:          breakdown.MethodPoints,
		BonusPoints:           breakdown.BonusPoints(),
		TotalPoints:           breakdown.TotalPoints,
		Multiplier:            breakdown.Multiplier,
		ImpliedProbabilityPct: breakdown.ImpliedProbabilityPct,
	}
	if err := s.credLog.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append credibility log: %w", err)
	}

	score := domain.PredictionScore{
		Status:           breakdown.Status,
		WinnerPoints:     breakdown.WinnerPoints,
		FinishTypePoints: breakdown.FinishTypePoints,
		MethodPoints:     breakdown.MethodPoints,
		BonusPoints:      breakdown.BonusPoints(),
		TotalPoints:      breakdown.TotalPoints,
	}
	if err := s.predictions.ApplyScore(ctx, pred.ID, score); err != nil {
		return fmt.Errorf("failed to apply score: %w", err)
	}

	metrics.PredictionsScored.WithLabelValues(string(breakdown.Status)).Inc()
	return nil
}

// validateOutcome rejects outcomes that contradict the fight card. Draws and
// no contests carry no winner; every other method names one of the two
// fighters.
func validateOutcome(fight *domain.Fight, outcome domain.FightOutcome) error {
	if !domain.ValidMethod(outcome.Method) {
		return domain.ErrInvalidOutcome
	}
	if outcome.FinishType != domain.FinishTypeForMethod(outcome.Method) {
		return domain.ErrInvalidOutcome
	}
	if outcome.Method == domain.MethodDraw || outcome.Method == domain.MethodNoContest {
		if outcome.Winner != "" {
			return domain.ErrInvalidOutcome
		}
		return nil
	}
	if !fight.HasFighter(outcome.Winner) {
		return domain.ErrInvalidOutcome
	}
	return nil
}
