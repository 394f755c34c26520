package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/fight"
	"github.com/cageside/fightcred/internal/logger"
)

// CreateFightRequest represents the request to put a fight on the board
type CreateFightRequest struct {
	EventName    string    `json:"event_name" validate:"required,max=200"`
	ScheduledAt  time.Time `json:"scheduled_at" validate:"required"`
	Fighter1     string    `json:"fighter1" validate:"required,max=100"`
	Fighter2     string    `json:"fighter2" validate:"required,max=100"`
	Fighter1Odds *int      `json:"fighter1_odds"`
	Fighter2Odds *int      `json:"fighter2_odds"`
}

// ResolveFightRequest represents the admin-entered outcome of a fight.
// Winner must be empty for draw and no-contest outcomes.
type ResolveFightRequest struct {
	Winner     string  `json:"winner" validate:"max=100"`
	FinishType string  `json:"finish_type" validate:"required,finishtype"`
	Method     string  `json:"method" validate:"required,method"`
	Round      *int    `json:"round"`
	FightTime  *string `json:"fight_time"`
}

// HandleCreateFight puts a new fight on the board
func HandleCreateFight(fightService fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateFightRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create fight"); err != nil {
			return
		}

		created, err := fightService.CreateFight(r.Context(), fight.CreateInput{
			EventName:    req.EventName,
			ScheduledAt:  req.ScheduledAt,
			Fighter1:     req.Fighter1,
			Fighter2:     req.Fighter2,
			Fighter1Odds: req.Fighter1Odds,
			Fighter2Odds: req.Fighter2Odds,
		})
		if err != nil {
			respondServiceError(w, r, "Create fight", err)
			return
		}

		log.Info("Fight created",
			"fight_id", created.ID,
			"event", created.EventName,
			"fighter1", created.Fighter1,
			"fighter2", created.Fighter2)

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetFight returns a single fight by id
func HandleGetFight(fightService fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}

		f, err := fightService.GetFight(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get fight", err)
			return
		}

		respondJSON(w, http.StatusOK, f)
	}
}

// HandleListFights returns fights, optionally filtered by status
func HandleListFights(fightService fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *domain.FightStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			s := domain.FightStatus(strings.ToLower(raw))
			switch s {
			case domain.FightStatusUpcoming, domain.FightStatusLive,
				domain.FightStatusCompleted, domain.FightStatusCancelled:
				status = &s
			default:
				respondError(w, http.StatusBadRequest, ErrMsgInvalidStatus)
				return
			}
		}

		limit, ok := QueryLimit(r, w)
		if !ok {
			return
		}

		fights, err := fightService.ListFights(r.Context(), status, limit)
		if err != nil {
			respondServiceError(w, r, "List fights", err)
			return
		}

		respondJSON(w, http.StatusOK, fights)
	}
}

// HandleLockFight freezes predictions when the fight goes live
func HandleLockFight(fightService fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}

		if err := fightService.LockFight(r.Context(), id); err != nil {
			respondServiceError(w, r, "Lock fight", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Fight locked", "fight_id", id)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFightLocked})
	}
}

// HandleCancelFight takes a fight out of play
func HandleCancelFight(fightService fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}

		if err := fightService.CancelFight(r.Context(), id); err != nil {
			respondServiceError(w, r, "Cancel fight", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Fight cancelled", "fight_id", id)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFightCancelled})
	}
}

// HandleResolveFight records a fight result and scores every prediction on it
func HandleResolveFight(fightService fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}

		var req ResolveFightRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve fight"); err != nil {
			return
		}

		outcome := domain.FightOutcome{
			Winner:     strings.TrimSpace(req.Winner),
			FinishType: domain.FinishType(strings.ToLower(req.FinishType)),
			Method:     domain.Method(strings.ToLower(req.Method)),
			Round:      req.Round,
			FightTime:  req.FightTime,
		}

		summary, err := fightService.ResolveFight(r.Context(), id, outcome)
		if err != nil {
			respondServiceError(w, r, "Resolve fight", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Fight resolved",
			"fight_id", id,
			"winner", outcome.Winner,
			"method", outcome.Method,
			"predictions_resolved", summary.PredictionsResolved,
			"failures", summary.Failures)

		respondJSON(w, http.StatusOK, summary)
	}
}
