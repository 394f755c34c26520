package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is a discrete reputation bracket derived from credibility score
type Tier string

const (
	TierProspect  Tier = "prospect"
	TierContender Tier = "contender"
	TierVeteran   Tier = "veteran"
	TierChampion  Tier = "champion"
)

// Tier thresholds for the additive credibility model
const (
	TierContenderThreshold = 1000
	TierVeteranThreshold   = 5000
	TierChampionThreshold  = 15000
)

// TierForScore maps a credibility score onto its tier
func TierForScore(score int) Tier {
	switch {
	case score >= TierChampionThreshold:
		return TierChampion
	case score >= TierVeteranThreshold:
		return TierVeteran
	case score >= TierContenderThreshold:
		return TierContender
	default:
		return TierProspect
	}
}

// UserProfile is the per-user aggregate mutated only by the resolution
// engine. Every counter is re-derivable in sum from the credibility log.
type UserProfile struct {
	UserID           uuid.UUID `json:"user_id"`
	Username         string    `json:"username"`
	CredibilityScore int       `json:"credibility_score"`
	Tier             Tier      `json:"tier"`

	TotalPicks           int `json:"total_picks"`
	CorrectPicks         int `json:"correct_picks"`
	TotalFinishPicks     int `json:"total_finish_picks"`
	CorrectFinishPicks   int `json:"correct_finish_picks"`
	TotalMethodPicks     int `json:"total_method_picks"`
	CorrectMethodPicks   int `json:"correct_method_picks"`
	TotalUnderdogPicks   int `json:"total_underdog_picks"`
	CorrectUnderdogPicks int `json:"correct_underdog_picks"`
	CurrentStreak        int `json:"current_streak"`
	BestStreak           int `json:"best_streak"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileFold carries one prediction's contribution to the user aggregates
type ProfileFold struct {
	TotalPoints     int
	CorrectWinner   bool
	PickedFinish    bool
	CorrectFinish   bool
	PickedMethod    bool
	CorrectMethod   bool
	UnderdogPick    bool
	CorrectUnderdog bool
}

// Apply folds one scoring event into the aggregates. The score is clamped
// at zero so the tier table stays well-defined under the penalty model.
func (p *UserProfile) Apply(fold ProfileFold) {
	p.CredibilityScore += fold.TotalPoints
	if p.CredibilityScore < 0 {
		p.CredibilityScore = 0
	}
	p.Tier = TierForScore(p.CredibilityScore)

	p.TotalPicks++
	if fold.CorrectWinner {
		p.CorrectPicks++
		p.CurrentStreak++
		if p.CurrentStreak > p.BestStreak {
			p.BestStreak = p.CurrentStreak
		}
	} else {
		p.CurrentStreak = 0
	}
	if fold.PickedFinish {
		p.TotalFinishPicks++
	}
	if fold.CorrectFinish {
		p.CorrectFinishPicks++
	}
	if fold.PickedMethod {
		p.TotalMethodPicks++
	}
	if fold.CorrectMethod {
		p.CorrectMethodPicks++
	}
	if fold.UnderdogPick {
		p.TotalUnderdogPicks++
	}
	if fold.CorrectUnderdog {
		p.CorrectUnderdogPicks++
	}
}

// UserFighterStat tracks a user's pick accuracy for one fighter
type UserFighterStat struct {
	UserID       uuid.UUID `json:"user_id"`
	FighterName  string    `json:"fighter_name"`
	Picks        int       `json:"picks"`
	CorrectPicks int       `json:"correct_picks"`
}

// CredibilityLogEntry is the append-only audit record of one scoring event
// for one (user, fight, prediction) triple. Written once, never updated.
type CredibilityLogEntry struct {
	ID           int64            `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	FightID      uuid.UUID        `json:"fight_id"`
	PredictionID uuid.UUID        `json:"prediction_id"`
	Status       PredictionStatus `json:"status"`

	WinnerPoints     int `json:"winner_points"`
	FinishTypePoints int `json:"finish_type_points"`
	MethodPoints     int `json:"method_points"`
	BonusPoints      int `json:"bonus_points"`
	TotalPoints      int `json:"total_points"`

	// Display/audit context captured at scoring time
	Multiplier            float64 `json:"multiplier"`
	ImpliedProbabilityPct float64 `json:"implied_probability_pct"`

	CreatedAt time.Time `json:"created_at"`
}
