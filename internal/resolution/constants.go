package resolution

// DefaultParallelism bounds the per-prediction scoring fan-out
const DefaultParallelism = 8

// Log messages
const (
	LogMsgResolvingFight        = "Resolving fight"
	LogMsgFightResolved         = "Fight resolved"
	LogMsgPredictionScoreFailed = "Failed to score prediction"
	LogMsgPublishFailed         = "Failed to publish resolution event"
)
