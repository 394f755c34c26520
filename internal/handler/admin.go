package handler

import (
	"net/http"

	"github.com/cageside/fightcred/internal/logger"
)

// PollTrigger kicks off an immediate result-poll cycle. Satisfied by the
// result poller; extracted so handlers stay testable.
type PollTrigger interface {
	TriggerNow()
}

// HandleTriggerPoll requests an immediate poll of the results feed.
// The cycle runs asynchronously; a 202 only means the request was queued.
func HandleTriggerPoll(trigger PollTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		log.Info("Manual poll cycle requested")

		trigger.TriggerNow()

		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgPollTriggered})
	}
}
