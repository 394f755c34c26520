package poller

import "time"

// DefaultInterval is how often the poller checks for results
const DefaultInterval = 5 * time.Minute

// Log messages
const (
	LogMsgPollerStarted     = "Result poller started"
	LogMsgPollerStopped     = "Result poller stopped"
	LogMsgCycleStarted      = "Poll cycle started"
	LogMsgCycleCompleted    = "Poll cycle completed"
	LogMsgNoPendingFights   = "No pending fights"
	LogMsgFeedUnavailable   = "Results feed unavailable this cycle"
	LogMsgNoFeedMatch       = "No feed match for fight"
	LogMsgFightAutoResolved = "Fight auto-resolved from feed"
	LogMsgFightResolveError = "Failed to auto-resolve fight"
	LogMsgFightPanic        = "Panic while resolving fight"
)
