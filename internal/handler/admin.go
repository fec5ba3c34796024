package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SlotsBot_Go/internal/economy"
	"github.com/osse101/SlotsBot_Go/internal/logger"
	"github.com/osse101/SlotsBot_Go/internal/stats"
)

// Flusher forces an immediate snapshot write
type Flusher interface {
	Flush(ctx context.Context) error
}

// AdminAdjustBalanceRequest adds amount to a user's balance. An amount of 0
// resets the balance to 0.
type AdminAdjustBalanceRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	Amount int64 `json:"amount"`
}

// AdminHandler serves the API-key protected admin routes
type AdminHandler struct {
	economy economy.Service
	stats   stats.Service
	flusher Flusher
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(economySvc economy.Service, statsSvc stats.Service, flusher Flusher) *AdminHandler {
	return &AdminHandler{
		economy: economySvc,
		stats:   statsSvc,
		flusher: flusher,
	}
}

// HandleAdjustBalance credits or debits an existing account
// @Summary Adjust balance
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminAdjustBalanceRequest true "Adjustment"
// @Success 200 {object} domain.AdjustResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/balance [post]
func (h *AdminHandler) HandleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req AdminAdjustBalanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.economy.AdminAdjustBalance(ctx, req.UserID, req.Amount)
	if err != nil {
		log.Warn(LogMsgAdjustFailed, "user_id", req.UserID, "amount", req.Amount, "error", err)
		respondServiceError(w, err)
		return
	}

	log.Info(LogMsgAdminAdjusted, "user_id", req.UserID, "old_balance", res.OldBalance, "new_balance", res.NewBalance)
	respondJSON(w, http.StatusOK, res)
}

// HandleListUsers returns the most active accounts
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} domain.UserList
// @Router /admin/users [get]
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.UserList(r.Context()))
}

// HandleSystemStats returns aggregate totals
// @Summary System stats
// @Tags admin
// @Produce json
// @Success 200 {object} domain.SystemStats
// @Router /admin/stats [get]
func (h *AdminHandler) HandleSystemStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.SystemStats(r.Context()))
}

// HandleSave writes a snapshot immediately
// @Summary Force save
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/save [post]
func (h *AdminHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.flusher.Flush(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgManualSaveFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSnapshotWritten})
}
