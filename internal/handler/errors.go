package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"

	// Path / query parameter error messages
	ErrMsgInvalidID       = "Invalid id"
	ErrMsgInvalidLimit    = "Invalid limit parameter"
	ErrMsgInvalidStatus   = "Invalid status filter"
	ErrMsgInvalidUserID   = "Invalid user id"
	ErrMsgInvalidFightID  = "Invalid fight id"
	ErrMsgMissingUserID   = "Missing user id"
	ErrMsgMissingFightID  = "Missing fight id"

	// Fight error messages
	ErrMsgFightNotFound       = "Fight not found"
	ErrMsgFightAlreadyOver    = "Fight has already been resolved"
	ErrMsgFightNotUpcoming    = "Fight is no longer upcoming"
	ErrMsgFightCancelled      = "Fight has been cancelled"
	ErrMsgInvalidFightDetails = "Invalid fight details"
	ErrMsgInvalidOddsLine     = "Invalid odds line"
	ErrMsgInvalidOutcome      = "Invalid fight outcome"

	// Prediction error messages
	ErrMsgPredictionNotFound = "Prediction not found"
	ErrMsgPredictionsLocked  = "Predictions are locked for this fight"
	ErrMsgUnknownFighter     = "Picked fighter is not on this fight"
	ErrMsgInvalidMethodPick  = "Method pick must be tko_ko or submission"

	// Profile error messages
	ErrMsgUserNotFound = "User not found"
)

// Success messages for API responses
const (
	MsgFightLocked    = "Fight locked; predictions frozen"
	MsgFightCancelled = "Fight cancelled"
	MsgPollTriggered  = "Poll cycle triggered"
)
