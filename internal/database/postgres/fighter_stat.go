package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/repository"
)

// FighterStatRepository implements per-fighter accuracy counters for PostgreSQL
type FighterStatRepository struct {
	pool *pgxpool.Pool
}

// NewFighterStatRepository creates a new FighterStatRepository
func NewFighterStatRepository(pool *pgxpool.Pool) repository.FighterStat {
	return &FighterStatRepository{pool: pool}
}

// Increment bumps the pick counter for (user, fighter), and the correct
// counter when the pick landed
func (r *FighterStatRepository) Increment(ctx context.Context, userID uuid.UUID, fighterName string, correct bool) error {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_fighter_stats (user_id, fighter_name, picks, correct_picks)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (user_id, fighter_name) DO UPDATE SET
			picks = user_fighter_stats.picks + 1,
			correct_picks = user_fighter_stats.correct_picks + $3`,
		userID, fighterName, correctDelta)
	if err != nil {
		return fmt.Errorf("failed to increment fighter stat: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's per-fighter accuracy, most-picked first
func (r *FighterStatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserFighterStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, fighter_name, picks, correct_picks
		FROM user_fighter_stats WHERE user_id = $1
		ORDER BY picks DESC, fighter_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fighter stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.UserFighterStat
	for rows.Next() {
		var s domain.UserFighterStat
		if err := rows.Scan(&s.UserID, &s.FighterName, &s.Picks, &s.CorrectPicks); err != nil {
			return nil, fmt.Errorf("failed to scan fighter stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fighter stats: %w", err)
	}
	return stats, nil
}
