// Package scoring computes the credibility breakdown for one prediction
// against one authoritative result. Score is a pure function: the same
// pick, result and odds snapshot always produce the same breakdown.
package scoring

import (
	"math"
	"strings"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/odds"
)

// Pick is the scoring-relevant slice of a prediction
type Pick struct {
	Winner     string
	FinishType *domain.FinishType
	Method     *domain.Method
}

// Result is the authoritative outcome a pick is scored against
type Result struct {
	Winner     string
	FinishType domain.FinishType
	Method     domain.Method
}

// Breakdown is the full scoring output. It is never mutated after creation;
// the multiplier and implied probability ride along for display and audit.
type Breakdown struct {
	CorrectWinner bool
	CorrectFinish bool
	CorrectMethod bool
	Perfect       bool

	WinnerPoints     int
	FinishTypePoints int
	MethodPoints     int
	UnderdogBonus    int
	PerfectBonus     int
	TotalPoints      int

	Multiplier            float64
	ImpliedProbabilityPct float64

	Status domain.PredictionStatus
}

// BonusPoints is the combined bonus written onto the prediction row
func (b Breakdown) BonusPoints() int {
	return b.UnderdogBonus + b.PerfectBonus
}

// Score computes the credibility breakdown for a pick. oddsAtPick is the
// snapshot of the picked side's moneyline at submission time; nil means no
// line was posted and even-money weighting applies.
func Score(pick Pick, result Result, oddsAtPick *int) Breakdown {
	mult, prob := odds.ForPick(oddsAtPick)

	b := Breakdown{
		Multiplier:            mult,
		ImpliedProbabilityPct: math.Round(prob*10000) / 100,
	}

	b.CorrectWinner = result.Winner != "" && strings.EqualFold(pick.Winner, result.Winner)
	b.CorrectFinish = pick.FinishType != nil && *pick.FinishType == result.FinishType

	if !b.CorrectWinner {
		b.TotalPoints = wrongPickPenalty(oddsAtPick)
		b.Status = deriveStatus(b)
		return b
	}

	b.WinnerPoints = int(math.Round(WinnerBasePoints * mult))

	// Finish and method bonuses require the winner to be right first
	if b.CorrectFinish {
		if result.FinishType == domain.FinishTypeFinish {
			b.FinishTypePoints = FinishTypePointsFinish
		} else {
			b.FinishTypePoints = FinishTypePointsDecision
		}
	}

	if methodPickMatches(pick, result) {
		b.CorrectMethod = true
		b.MethodPoints = MethodPoints
	}

	if oddsAtPick != nil && *oddsAtPick >= UnderdogOddsThreshold {
		capped := *oddsAtPick
		if capped > UnderdogBonusOddsCap {
			capped = UnderdogBonusOddsCap
		}
		b.UnderdogBonus = int(math.Round(UnderdogBonusBase * float64(capped) / 100.0))
	}

	// A perfect pick nails winner and finish type, plus the exact method on
	// finishes; decisions have no method to call
	b.Perfect = b.CorrectFinish && (result.FinishType == domain.FinishTypeDecision || b.MethodPoints > 0)
	if b.Perfect {
		b.PerfectBonus = PerfectPickBonus
	}

	b.TotalPoints = b.WinnerPoints + b.FinishTypePoints + b.MethodPoints + b.UnderdogBonus + b.PerfectBonus
	b.Status = deriveStatus(b)
	return b
}

// methodPickMatches reports whether the pick called the exact finish method.
// Only tko_ko and submission are callable; decision, draw and nc never
// match a method pick.
func methodPickMatches(pick Pick, result Result) bool {
	if pick.FinishType == nil || *pick.FinishType != domain.FinishTypeFinish {
		return false
	}
	if result.FinishType != domain.FinishTypeFinish {
		return false
	}
	if result.Method != domain.MethodTKOKO && result.Method != domain.MethodSubmission {
		return false
	}
	return pick.Method != nil && *pick.Method == result.Method
}

// wrongPickPenalty scales inversely with how heavy a favorite was picked
func wrongPickPenalty(oddsAtPick *int) int {
	if oddsAtPick == nil || *oddsAtPick == 0 {
		return PenaltyUnknownOdds
	}
	o := *oddsAtPick
	switch {
	case o <= heavyFavoriteOdds:
		return PenaltyHeavyFavorite
	case o <= favoriteOdds:
		return PenaltyFavorite
	case o <= slightFavoriteOdds:
		return PenaltySlightFavorite
	case o <= pickEmOdds:
		return PenaltyPickEm
	default:
		return PenaltyUnderdog
	}
}

// deriveStatus maps the breakdown onto the tri-state prediction status:
// correct needs winner + finish type + (decision or exact method); a pick
// that got the winner or the finish type but not the full combination is
// partial; everything else is wrong.
func deriveStatus(b Breakdown) domain.PredictionStatus {
	if b.CorrectWinner && b.Perfect {
		return domain.PredictionStatusCorrect
	}
	if b.CorrectWinner || b.CorrectFinish {
		return domain.PredictionStatusPartial
	}
	return domain.PredictionStatusWrong
}
