package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/repository"
)

// FightRepository implements the fight repository for PostgreSQL
type FightRepository struct {
	pool *pgxpool.Pool
}

// NewFightRepository creates a new FightRepository
func NewFightRepository(pool *pgxpool.Pool) repository.Fight {
	return &FightRepository{pool: pool}
}

const fightColumns = `fight_id, event_name, scheduled_at, fighter1, fighter2,
	fighter1_odds, fighter2_odds, status, winner, finish_type, method,
	round, fight_time, resolved_at, created_at, updated_at`

// Create inserts a new fight record
func (r *FightRepository) Create(ctx context.Context, fight *domain.Fight) error {
	if fight.ID == uuid.Nil {
		fight.ID = uuid.New()
	}
	if fight.Status == "" {
		fight.Status = domain.FightStatusUpcoming
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO fights (fight_id, event_name, scheduled_at, fighter1, fighter2, fighter1_odds, fighter2_odds, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		fight.ID, fight.EventName, fight.ScheduledAt, fight.Fighter1, fight.Fighter2,
		fight.Fighter1Odds, fight.Fighter2Odds, string(fight.Status))

	if err := row.Scan(&fight.CreatedAt, &fight.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create fight: %w", err)
	}
	return nil
}

// GetByID retrieves a fight by ID; returns nil when no fight exists
func (r *FightRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fight, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+fightColumns+` FROM fights WHERE fight_id = $1`, id)

	fight, err := scanFight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fight: %w", err)
	}
	return fight, nil
}

// List retrieves fights, optionally filtered by status, newest card first
func (r *FightRepository) List(ctx context.Context, status *domain.FightStatus, limit int) ([]domain.Fight, error) {
	query, args := listFightsQuery(status, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fights: %w", err)
	}
	defer rows.Close()

	return collectFights(rows)
}

func listFightsQuery(status *domain.FightStatus, limit int) (string, []interface{}) {
	query := `SELECT ` + fightColumns + ` FROM fights`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += fmt.Sprintf(` ORDER BY scheduled_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)
	return query, args
}

// ListPending returns fights eligible for result polling
func (r *FightRepository) ListPending(ctx context.Context, now time.Time) ([]domain.Fight, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+fightColumns+` FROM fights
		WHERE status = $1 OR (status = $2 AND scheduled_at <= $3)
		ORDER BY scheduled_at`,
		string(domain.FightStatusLive), string(domain.FightStatusUpcoming), now)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending fights: %w", err)
	}
	defer rows.Close()

	return collectFights(rows)
}

// UpdateStatus performs a compare-and-swap operation on fight status.
// Returns the number of rows affected (0 if status didn't match).
func (r *FightRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.FightStatus) (int64, error) {
	result, err := r.pool.Exec(ctx, `
		UPDATE fights SET status = $1, updated_at = NOW()
		WHERE fight_id = $2 AND status = $3`,
		string(next), id, string(expected))
	if err != nil {
		return 0, fmt.Errorf("failed to update fight status: %w", err)
	}
	return result.RowsAffected(), nil
}

// Complete writes the outcome and transitions to completed in one
// conditional update; the WHERE clause is the at-most-once scoring gate
func (r *FightRepository) Complete(ctx context.Context, id uuid.UUID, outcome domain.FightOutcome, resolvedAt time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx, `
		UPDATE fights
		SET status = $1, winner = $2, finish_type = $3, method = $4,
		    round = $5, fight_time = $6, resolved_at = $7, updated_at = NOW()
		WHERE fight_id = $8 AND status NOT IN ($9, $10)`,
		string(domain.FightStatusCompleted), winnerColumn(outcome), string(outcome.FinishType),
		string(outcome.Method), outcome.Round, outcome.FightTime, resolvedAt,
		id, string(domain.FightStatusCompleted), string(domain.FightStatusCancelled))
	if err != nil {
		return 0, fmt.Errorf("failed to complete fight: %w", err)
	}
	return result.RowsAffected(), nil
}

// winnerColumn maps the outcome winner to its column value. Draws and no
// contests carry no winner and must store NULL, not an empty string, so the
// scanned Fight round-trips with a nil Winner.
func winnerColumn(outcome domain.FightOutcome) *string {
	if outcome.Winner == "" {
		return nil
	}
	return &outcome.Winner
}

func scanFight(row pgx.Row) (*domain.Fight, error) {
	var f domain.Fight
	var status string
	var winner, finishType, method, fightTime *string

	err := row.Scan(&f.ID, &f.EventName, &f.ScheduledAt, &f.Fighter1, &f.Fighter2,
		&f.Fighter1Odds, &f.Fighter2Odds, &status, &winner, &finishType, &method,
		&f.Round, &fightTime, &f.ResolvedAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}

	f.Status = domain.FightStatus(status)
	f.Winner = winner
	f.FightTime = fightTime
	if finishType != nil {
		ft := domain.FinishType(*finishType)
		f.FinishType = &ft
	}
	if method != nil {
		m := domain.Method(*method)
		f.Method = &m
	}
	return &f, nil
}

func collectFights(rows pgx.Rows) ([]domain.Fight, error) {
	var fights []domain.Fight
	for rows.Next() {
		fight, err := scanFight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fight: %w", err)
		}
		fights = append(fights, *fight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fights: %w", err)
	}
	return fights, nil
}
