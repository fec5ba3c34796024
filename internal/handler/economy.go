package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/economy"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// BonusResponse wraps a bonus claim result with a display message
type BonusResponse struct {
	domain.BonusResult
	Message string `json:"message"`
}

// UpdateSettingsRequest changes per-user preferences
type UpdateSettingsRequest struct {
	DefaultBet int64 `json:"default_bet" validate:"required,oneof=1 5 10 25 50 100"`
}

// SettingsResponse echoes the stored preferences
type SettingsResponse struct {
	UserID     int64  `json:"user_id"`
	DefaultBet int64  `json:"default_bet"`
	Message    string `json:"message"`
}

// HandleClaimBonus grants the daily bonus when it is due
// @Summary Claim daily bonus
// @Description A claim before the interval has passed is not an error; granted is false and the wait is reported.
// @Tags economy
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} BonusResponse
// @Router /users/{userID}/bonus [post]
func HandleClaimBonus(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		res, err := svc.ClaimDailyBonus(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		resp := BonusResponse{BonusResult: res}
		if res.Granted {
			resp.Message = fmt.Sprintf(MsgBonusGrantedFmt, res.Amount)
		} else {
			resp.Message = fmt.Sprintf(MsgBonusNotReadyFmt, res.Wait.Round(time.Minute))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleUpdateSettings stores the user's default bet
// @Summary Update settings
// @Tags economy
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/{userID}/settings [put]
func HandleUpdateSettings(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateSettingsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.SetDefaultBet(ctx, userID, req.DefaultBet); err != nil {
			logger.FromContext(ctx).Warn(LogMsgValidationFailed, "user_id", userID, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SettingsResponse{
			UserID:     userID,
			DefaultBet: svc.DefaultBet(ctx, userID),
			Message:    MsgSettingsUpdated,
		})
	}
}
