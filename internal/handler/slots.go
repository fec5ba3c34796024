package handler

import (
	"net/http"

	"github.com/osse101/SlotsBot_Go/internal/economy"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/slots"
)

// SlotsHandler handles spin and balance requests
type SlotsHandler struct {
	service slots.Service
	economy economy.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service, economySvc economy.Service) *SlotsHandler {
	return &SlotsHandler{
		service: service,
		economy: economySvc,
	}
}

// SpinRequest represents a request to spin the reels. A missing bet uses the
// user's default bet.
type SpinRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	DisplayName string `json:"display_name" validate:"displayname"`
	Bet         *int64 `json:"bet,omitempty"`
}

// HandleSpin processes a spin request
// @Summary Spin the reels
// @Description Debits the bet, spins, and credits any win. Rejections carry a reason.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin details"
// @Success 200 {object} domain.SpinOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /slots/spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SpinRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var bet int64
	if req.Bet != nil {
		bet = *req.Bet
	} else {
		bet = h.economy.DefaultBet(ctx, req.UserID)
	}

	outcome, err := h.service.Spin(ctx, req.UserID, req.DisplayName, bet)
	if err != nil {
		log.Debug(LogMsgSpinFailed, "user_id", req.UserID, "bet", bet, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleGetBalance returns a user's balance and stats
// @Summary Get balance
// @Tags slots
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} domain.BalanceSummary
// @Failure 400 {object} ErrorResponse
// @Router /users/{userID}/balance [get]
func (h *SlotsHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.service.Balance(r.Context(), userID))
}
