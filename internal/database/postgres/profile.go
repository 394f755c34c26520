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

// ProfileRepository implements the user aggregate repository for PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) repository.Profile {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `user_id, username, credibility_score, tier,
	total_picks, correct_picks, total_finish_picks, correct_finish_picks,
	total_method_picks, correct_method_picks, total_underdog_picks, correct_underdog_picks,
	current_streak, best_streak, created_at, updated_at`

// Ensure creates the profile row if it does not exist yet
func (r *ProfileRepository) Ensure(ctx context.Context, userID uuid.UUID, username string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_profiles (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, username)
	if err != nil {
		return fmt.Errorf("failed to ensure profile: %w", err)
	}
	return nil
}

// Get retrieves a profile by user ID; returns domain.ErrUserNotFound when absent
func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ApplyResolution folds one scoring event into the aggregates. The row is
// read under FOR UPDATE inside a transaction so concurrent folds for the
// same user serialize; counters are read-modify-write, not associative.
func (r *ProfileRepository) ApplyResolution(ctx context.Context, userID uuid.UUID, fold domain.ProfileFold) (*domain.UserProfile, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin profile tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1 FOR UPDATE`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock profile row: %w", err)
	}

	profile.Apply(fold)

	_, err = tx.Exec(ctx, `
		UPDATE user_profiles SET
			credibility_score = $1, tier = $2,
			total_picks = $3, correct_picks = $4,
			total_finish_picks = $5, correct_finish_picks = $6,
			total_method_picks = $7, correct_method_picks = $8,
			total_underdog_picks = $9, correct_underdog_picks = $10,
			current_streak = $11, best_streak = $12,
			updated_at = NOW()
		WHERE user_id = $13`,
		profile.CredibilityScore, string(profile.Tier),
		profile.TotalPicks, profile.CorrectPicks,
		profile.TotalFinishPicks, profile.CorrectFinishPicks,
		profile.TotalMethodPicks, profile.CorrectMethodPicks,
		profile.TotalUnderdogPicks, profile.CorrectUnderdogPicks,
		profile.CurrentStreak, profile.BestStreak,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit profile fold: %w", err)
	}
	return profile, nil
}

// Leaderboard retrieves the top profiles by credibility score
func (r *ProfileRepository) Leaderboard(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM user_profiles
		 ORDER BY credibility_score DESC, correct_picks DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var profiles []domain.UserProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}
	return profiles, nil
}

func scanProfile(row pgx.Row) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var tier string

	err := row.Scan(&p.UserID, &p.Username, &p.CredibilityScore, &tier,
		&p.TotalPicks, &p.CorrectPicks, &p.TotalFinishPicks, &p.CorrectFinishPicks,
		&p.TotalMethodPicks, &p.CorrectMethodPicks, &p.TotalUnderdogPicks, &p.CorrectUnderdogPicks,
		&p.CurrentStreak, &p.BestStreak, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Tier = domain.Tier(tier)
	return &p, nil
}
