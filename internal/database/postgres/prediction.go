package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/repository"
)

// PredictionRepository implements the prediction repository for PostgreSQL
type PredictionRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(pool *pgxpool.Pool) repository.Prediction {
	return &PredictionRepository{pool: pool}
}

const predictionColumns = `prediction_id, user_id, fight_id, picked_winner,
	picked_finish_type, picked_method, odds_at_prediction, is_locked, status,
	winner_points, finish_type_points, method_points, bonus_points, total_points,
	created_at, updated_at`

// Upsert inserts or replaces the user's pick for a fight. The conflict
// update is guarded on is_locked so a frozen pick can never be rewritten.
func (r *PredictionRepository) Upsert(ctx context.Context, p *domain.Prediction) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = domain.PredictionStatusPending
	}

	var pickedFinishType, pickedMethod *string
	if p.PickedFinishType != nil {
		s := string(*p.PickedFinishType)
		pickedFinishType = &s
	}
	if p.PickedMethod != nil {
		s := string(*p.PickedMethod)
		pickedMethod = &s
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO predictions (prediction_id, user_id, fight_id, picked_winner,
			picked_finish_type, picked_method, odds_at_prediction, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, fight_id) DO UPDATE SET
			picked_winner = EXCLUDED.picked_winner,
			picked_finish_type = EXCLUDED.picked_finish_type,
			picked_method = EXCLUDED.picked_method,
			odds_at_prediction = EXCLUDED.odds_at_prediction,
			updated_at = NOW()
		WHERE predictions.is_locked = FALSE
		RETURNING prediction_id, created_at, updated_at`,
		p.ID, p.UserID, p.FightID, p.PickedWinner,
		pickedFinishType, pickedMethod, p.OddsAtPrediction, string(p.Status))

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict row exists but is locked
			return domain.ErrPredictionsLocked
		}
		return fmt.Errorf("failed to upsert prediction: %w", err)
	}
	return nil
}

// GetByUserAndFight retrieves a user's pick for a fight; nil when absent
func (r *PredictionRepository) GetByUserAndFight(ctx context.Context, userID, fightID uuid.UUID) (*domain.Prediction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+predictionColumns+` FROM predictions WHERE user_id = $1 AND fight_id = $2`,
		userID, fightID)

	p, err := scanPrediction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}
	return p, nil
}

// ListByFight retrieves every prediction for a fight, locked or not
func (r *PredictionRepository) ListByFight(ctx context.Context, fightID uuid.UUID) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+predictionColumns+` FROM predictions WHERE fight_id = $1 ORDER BY created_at`,
		fightID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	return collectPredictions(rows)
}

// ListByUser retrieves a user's predictions, newest first
func (r *PredictionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+predictionColumns+` FROM predictions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list user predictions: %w", err)
	}
	defer rows.Close()

	return collectPredictions(rows)
}

// LockByFight freezes all predictions for a fight
func (r *PredictionRepository) LockByFight(ctx context.Context, fightID uuid.UUID) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`UPDATE predictions SET is_locked = TRUE, updated_at = NOW() WHERE fight_id = $1 AND is_locked = FALSE`,
		fightID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock predictions: %w", err)
	}
	return result.RowsAffected(), nil
}

// ApplyScore writes the scoring fields onto a prediction
func (r *PredictionRepository) ApplyScore(ctx context.Context, predictionID uuid.UUID, score domain.PredictionScore) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE predictions
		SET status = $1, winner_points = $2, finish_type_points = $3,
		    method_points = $4, bonus_points = $5, total_points = $6, updated_at = NOW()
		WHERE prediction_id = $7`,
		string(score.Status), score.WinnerPoints, score.FinishTypePoints,
		score.MethodPoints, score.BonusPoints, score.TotalPoints, predictionID)
	if err != nil {
		return fmt.Errorf("failed to apply score: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPredictionNotFound
	}
	return nil
}

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	var p domain.Prediction
	var status string
	var pickedFinishType, pickedMethod *string

	err := row.Scan(&p.ID, &p.UserID, &p.FightID, &p.PickedWinner,
		&pickedFinishType, &pickedMethod, &p.OddsAtPrediction, &p.IsLocked, &status,
		&p.WinnerPoints, &p.FinishTypePoints, &p.MethodPoints, &p.BonusPoints, &p.TotalPoints,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PredictionStatus(status)
	if pickedFinishType != nil {
		ft := domain.FinishType(*pickedFinishType)
		p.PickedFinishType = &ft
	}
	if pickedMethod != nil {
		m := domain.Method(*pickedMethod)
		p.PickedMethod = &m
	}
	return &p, nil
}

func collectPredictions(rows pgx.Rows) ([]domain.Prediction, error) {
	var predictions []domain.Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}
	return predictions, nil
}
