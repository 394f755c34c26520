package domain

import (
	"time"

	"github.com/google/uuid"
)

// FightStatus represents the lifecycle state of a fight
type FightStatus string

const (
	FightStatusUpcoming  FightStatus = "upcoming"
	FightStatusLive      FightStatus = "live"
	FightStatusCompleted FightStatus = "completed"
	FightStatusCancelled FightStatus = "cancelled"
)

// FinishType is the coarse outcome class of a fight
type FinishType string

const (
	FinishTypeFinish   FinishType = "finish"
	FinishTypeDecision FinishType = "decision"
)

// Method is the closed vocabulary for how a fight ended
type Method string

const (
	MethodTKOKO      Method = "tko_ko"
	MethodSubmission Method = "submission"
	MethodDecision   Method = "decision"
	MethodDraw       Method = "draw"
	MethodNoContest  Method = "nc"
)

// ValidMethod reports whether m is part of the closed method vocabulary
func ValidMethod(m Method) bool {
	switch m {
	case MethodTKOKO, MethodSubmission, MethodDecision, MethodDraw, MethodNoContest:
		return true
	}
	return false
}

// FinishTypeForMethod derives the finish type implied by a method
func FinishTypeForMethod(m Method) FinishType {
	if m == MethodTKOKO || m == MethodSubmission {
		return FinishTypeFinish
	}
	return FinishTypeDecision
}

// Fight is a bout between two fighters. Outcome fields stay nil until the
// fight transitions to completed; once set they are never rewritten.
type Fight struct {
	ID          uuid.UUID `json:"id"`
	EventName   string    `json:"event_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Fighter1    string    `json:"fighter1"`
	Fighter2    string    `json:"fighter2"`
	// Moneyline odds for each side at lock time; nil when no line was posted
	Fighter1Odds *int        `json:"fighter1_odds,omitempty"`
	Fighter2Odds *int        `json:"fighter2_odds,omitempty"`
	Status       FightStatus `json:"status"`
	Winner       *string     `json:"winner,omitempty"`
	FinishType   *FinishType `json:"finish_type,omitempty"`
	Method       *Method     `json:"method,omitempty"`
	Round        *int        `json:"round,omitempty"`
	FightTime    *string     `json:"fight_time,omitempty"`
	ResolvedAt   *time.Time  `json:"resolved_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FightOutcome is an authoritative result applied to a fight at resolution
type FightOutcome struct {
	Winner     string     `json:"winner"`
	FinishType FinishType `json:"finish_type"`
	Method     Method     `json:"method"`
	Round      *int       `json:"round,omitempty"`
	FightTime  *string    `json:"fight_time,omitempty"`
}

// HasFighter reports whether name matches one of the fight's two fighters
// exactly (case folding is the caller's concern; canonical names only here)
func (f *Fight) HasFighter(name string) bool {
	return name == f.Fighter1 || name == f.Fighter2
}

// OddsFor returns the odds snapshot for the given fighter side, or nil when
// the name is not one of the fight's fighters or no line was posted
func (f *Fight) OddsFor(name string) *int {
	switch name {
	case f.Fighter1:
		return f.Fighter1Odds
	case f.Fighter2:
		return f.Fighter2Odds
	}
	return nil
}

// ResolutionSummary reports the outcome of one resolution pass. Errors
// carries one entry per prediction that could not be scored, so a partial
// resolution names exactly which rows still need attention.
type ResolutionSummary struct {
	FightID             uuid.UUID `json:"fight_id"`
	PredictionsResolved int       `json:"predictions_resolved"`
	Failures            int       `json:"failures"`
	Errors              []string  `json:"errors,omitempty"`
}
