package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/repository"
)

// CredibilityLogRepository implements the append-only audit log for PostgreSQL
type CredibilityLogRepository struct {
	pool *pgxpool.Pool
}

// NewCredibilityLogRepository creates a new CredibilityLogRepository
func NewCredibilityLogRepository(pool *pgxpool.Pool) repository.CredibilityLog {
	return &CredibilityLogRepository{pool: pool}
}

// Append writes one scoring event. Entries are insert-only; there is no
// update path anywhere in the repository.
func (r *CredibilityLogRepository) Append(ctx context.Context, entry *domain.CredibilityLogEntry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO credibility_log (user_id, fight_id, prediction_id, status,
			winner_points, finish_type_points, method_points, bonus_points, total_points,
			multiplier, implied_probability_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING entry_id, created_at`,
		entry.UserID, entry.FightID, entry.PredictionID, string(entry.Status),
		entry.WinnerPoints, entry.FinishTypePoints, entry.MethodPoints,
		entry.BonusPoints, entry.TotalPoints,
		entry.Multiplier, entry.ImpliedProbabilityPct)

	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to append credibility log entry: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's scoring history, newest first
func (r *CredibilityLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CredibilityLogEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT entry_id, user_id, fight_id, prediction_id, status,
			winner_points, finish_type_points, method_points, bonus_points, total_points,
			multiplier, implied_probability_pct, created_at
		FROM credibility_log WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list credibility log: %w", err)
	}
	defer rows.Close()

	var entries []domain.CredibilityLogEntry
	for rows.Next() {
		var e domain.CredibilityLogEntry
		var status string
		err := rows.Scan(&e.ID, &e.UserID, &e.FightID, &e.PredictionID, &status,
			&e.WinnerPoints, &e.FinishTypePoints, &e.MethodPoints, &e.BonusPoints, &e.TotalPoints,
			&e.Multiplier, &e.ImpliedProbabilityPct, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credibility log entry: %w", err)
		}
		e.Status = domain.PredictionStatus(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credibility log: %w", err)
	}
	return entries, nil
}
