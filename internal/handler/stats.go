package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/stats"
)

// LeaderboardResponse lists the richest users
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleGetLeaderboard returns the top balances
// @Summary Get leaderboard
// @Tags stats
// @Produce json
// @Param limit query int false "Limit (default 10, max 100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		limit := stats.DefaultLeaderboardLimit
		if limitStr := r.URL.Query().Get(QueryParamLimit); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				log.Warn(ErrMsgInvalidLimit, "limit", limitStr)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
		}

		entries := svc.Leaderboard(ctx, limit)
		if entries == nil {
			entries = []domain.LeaderboardEntry{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}
