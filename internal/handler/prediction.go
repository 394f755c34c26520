package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/prediction"
)

// SubmitPredictionRequest represents a user's pick on an upcoming fight.
// finish_type and method are optional side bets; method requires a
// finish_type of "finish".
type SubmitPredictionRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	Username     string `json:"username" validate:"required,max=100"`
	PickedWinner string `json:"picked_winner" validate:"required,max=100"`
	FinishType   string `json:"finish_type" validate:"finishtype"`
	Method       string `json:"method" validate:"method"`
}

// HandleSubmitPrediction records or replaces a user's pick on a fight
func HandleSubmitPrediction(predictionService prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fightID, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}

		var req SubmitPredictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
			return
		}

		// uuid tag already validated the format
		userID := uuid.MustParse(req.UserID)

		input := prediction.SubmitInput{
			UserID:       userID,
			Username:     req.Username,
			FightID:      fightID,
			PickedWinner: req.PickedWinner,
		}
		if req.FinishType != "" {
			ft := domain.FinishType(strings.ToLower(req.FinishType))
			input.PickedFinishType = &ft
		}
		if req.Method != "" {
			m := domain.Method(strings.ToLower(req.Method))
			input.PickedMethod = &m
		}

		pred, err := predictionService.Submit(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, "Submit prediction", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Prediction submitted",
			"user_id", userID,
			"fight_id", fightID,
			"picked_winner", pred.PickedWinner)

		respondJSON(w, http.StatusCreated, pred)
	}
}

// HandleGetPrediction returns one user's pick on one fight
func HandleGetPrediction(predictionService prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fightID, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}
		userID, ok := URLParamUUID(r, w, "userID")
		if !ok {
			return
		}

		pred, err := predictionService.GetByUserAndFight(r.Context(), userID, fightID)
		if err != nil {
			respondServiceError(w, r, "Get prediction", err)
			return
		}

		respondJSON(w, http.StatusOK, pred)
	}
}

// HandleListUserPredictions returns a user's picks, newest first
func HandleListUserPredictions(predictionService prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamUUID(r, w, "userID")
		if !ok {
			return
		}
		limit, ok := QueryLimit(r, w)
		if !ok {
			return
		}

		preds, err := predictionService.ListByUser(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "List user predictions", err)
			return
		}

		respondJSON(w, http.StatusOK, preds)
	}
}

// HandleListFightPredictions returns every pick on a fight
func HandleListFightPredictions(predictionService prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fightID, ok := URLParamUUID(r, w, "fightID")
		if !ok {
			return
		}

		preds, err := predictionService.ListByFight(r.Context(), fightID)
		if err != nil {
			respondServiceError(w, r, "List fight predictions", err)
			return
		}

		respondJSON(w, http.StatusOK, preds)
	}
}
