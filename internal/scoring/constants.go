package scoring

// Point bases for the additive credibility model. Winner points scale with
// the payout multiplier; everything else is flat.
const (
	// WinnerBasePoints is multiplied by the odds multiplier for a correct winner
	WinnerBasePoints = 100

	// Finish-type bonus, awarded only when both winner and finish type match
	FinishTypePointsFinish   = 75 // round(50 * 1.5) for calling a finish
	FinishTypePointsDecision = 50

	// MethodPoints rewards calling the exact finish method (tko_ko/submission)
	MethodPoints = 75

	// Underdog bonus: round(25 * odds/100) at or above the threshold
	UnderdogBonusBase      = 25
	UnderdogOddsThreshold  = 150
	// UnderdogBonusOddsCap bounds the odds-linear bonus; the scaling has no
	// natural ceiling and a +5000 long shot would otherwise mint 1250 points
	UnderdogBonusOddsCap = 1000

	// PerfectPickBonus is awarded for winner + finish type + exact method
	PerfectPickBonus = 50
)

// Wrong-pick penalties bracketed by how heavy a favorite was picked.
// A heavier favorite picked wrong costs more; a losing underdog pick costs
// the least; an unknown line takes the fixed moderate penalty.
const (
	PenaltyHeavyFavorite    = -100 // odds <= -300
	PenaltyFavorite         = -75  // odds <= -150
	PenaltySlightFavorite   = -50  // odds <= -110
	PenaltyPickEm           = -35  // odds <= +110
	PenaltyUnderdog         = -20  // everything longer
	PenaltyUnknownOdds      = -50
)

// Penalty bracket boundaries
const (
	heavyFavoriteOdds  = -300
	favoriteOdds       = -150
	slightFavoriteOdds = -110
	pickEmOdds         = 110
)
