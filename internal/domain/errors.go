package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Fight errors
	ErrMsgFightNotFound        = "fight not found"
	ErrMsgFightAlreadyResolved = "fight already resolved"
	ErrMsgFightNotUpcoming     = "fight is not upcoming"
	ErrMsgFightCancelled       = "fight is cancelled"

	// Prediction errors
	ErrMsgPredictionNotFound = "prediction not found"
	ErrMsgPredictionsLocked  = "predictions are locked for this fight"
	ErrMsgUnknownFighterPick = "picked winner is not in this fight"
	ErrMsgInvalidMethodPick  = "method pick must be tko_ko or submission"

	// Profile errors
	ErrMsgUserNotFound = "user not found"

	// Outcome errors
	ErrMsgInvalidOutcome = "invalid fight outcome"

	// Odds errors
	ErrMsgInvalidOdds = "invalid american odds"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Fight errors
	ErrFightNotFound        = errors.New(ErrMsgFightNotFound)
	ErrFightAlreadyResolved = errors.New(ErrMsgFightAlreadyResolved)
	ErrFightNotUpcoming     = errors.New(ErrMsgFightNotUpcoming)
	ErrFightCancelled       = errors.New(ErrMsgFightCancelled)

	// Prediction errors
	ErrPredictionNotFound = errors.New(ErrMsgPredictionNotFound)
	ErrPredictionsLocked  = errors.New(ErrMsgPredictionsLocked)
	ErrUnknownFighterPick = errors.New(ErrMsgUnknownFighterPick)
	ErrInvalidMethodPick  = errors.New(ErrMsgInvalidMethodPick)

	// Profile errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Outcome errors
	ErrInvalidOutcome = errors.New(ErrMsgInvalidOutcome)

	// Odds errors
	ErrInvalidOdds = errors.New(ErrMsgInvalidOdds)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
