package handler

import (
	"net/http"

	"github.com/cageside/fightcred/internal/profile"
)

// HandleGetProfile returns a user's credibility profile
func HandleGetProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamUUID(r, w, "userID")
		if !ok {
			return
		}

		p, err := profileService.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleLeaderboard returns the top profiles by credibility score
func HandleLeaderboard(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := QueryLimit(r, w)
		if !ok {
			return
		}

		board, err := profileService.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, board)
	}
}

// HandleFighterStats returns a user's per-fighter pick record
func HandleFighterStats(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamUUID(r, w, "userID")
		if !ok {
			return
		}

		stats, err := profileService.FighterStats(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get fighter stats", err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleCredibilityHistory returns a user's scoring history, newest first
func HandleCredibilityHistory(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamUUID(r, w, "userID")
		if !ok {
			return
		}
		limit, ok := QueryLimit(r, w)
		if !ok {
			return
		}

		history, err := profileService.History(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, "Get credibility history", err)
			return
		}

		respondJSON(w, http.StatusOK, history)
	}
}
