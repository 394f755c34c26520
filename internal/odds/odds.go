// Package odds converts American moneyline odds into implied win
// probabilities and payout multipliers for the credibility scorer.
package odds

import (
	"fmt"

	"github.com/cageside/fightcred/internal/domain"
)

// ImpliedProbability converts American odds to the market-implied win
// probability. +150 -> 0.40, -150 -> 0.60. Odds of exactly 0 are undefined
// in American notation and rejected.
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: cannot be 0", domain.ErrInvalidOdds)
	}

	if american > 0 {
		return 100.0 / (float64(american) + 100.0), nil
	}

	abs := float64(-american)
	return abs / (abs + 100.0), nil
}

// Multiplier converts an implied probability into a payout multiplier.
// Underdogs (low probability) yield large multipliers; favorites approach 1.
func Multiplier(probability float64) float64 {
	return 1.0 / probability
}

// ForPick resolves the multiplier and implied probability for an odds
// snapshot that may be absent. Unknown odds fall back to an even-money
// multiplier of 1.0 at 50% so scoring stays total.
func ForPick(american *int) (multiplier, probability float64) {
	if american == nil {
		return 1.0, 0.5
	}
	prob, err := ImpliedProbability(*american)
	if err != nil {
		return 1.0, 0.5
	}
	return Multiplier(prob), prob
}
