package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotsBot_Go/internal/cooldown"
	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/slots"
)

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func withUserID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(URLParamUserID, id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleSpin_Success(t *testing.T) {
	slotsSvc := &MockSlotsService{}
	econ := &MockEconomyService{}
	h := NewSlotsHandler(slotsSvc, econ)

	outcome := &domain.SpinOutcome{UserID: 7, Bet: 25, WinAmount: 50, TriggerType: domain.TriggerWin, NewBalance: 1025}
	slotsSvc.On("Spin", mock.Anything, int64(7), "Ann", int64(25)).Return(outcome, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", bytes.NewBufferString(`{"user_id":7,"display_name":"Ann","bet":25}`))
	rec := httptest.NewRecorder()
	h.HandleSpin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.SpinOutcome](t, rec)
	assert.Equal(t, int64(50), got.WinAmount)
	assert.Equal(t, domain.TriggerWin, got.TriggerType)
	slotsSvc.AssertExpectations(t)
	econ.AssertNotCalled(t, "DefaultBet", mock.Anything, mock.Anything)
}

func TestHandleSpin_UsesDefaultBet(t *testing.T) {
	slotsSvc := &MockSlotsService{}
	econ := &MockEconomyService{}
	h := NewSlotsHandler(slotsSvc, econ)

	econ.On("DefaultBet", mock.Anything, int64(3)).Return(int64(50))
	slotsSvc.On("Spin", mock.Anything, int64(3), "", int64(50)).Return(&domain.SpinOutcome{Bet: 50}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", bytes.NewBufferString(`{"user_id":3}`))
	rec := httptest.NewRecorder()
	h.HandleSpin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	slotsSvc.AssertExpectations(t)
}

func TestHandleSpin_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "too soon",
			err:        cooldown.ErrOnCooldown{Action: "spin", Remaining: 2300 * time.Millisecond},
			wantStatus: http.StatusTooManyRequests,
			wantReason: domain.RejectTooSoon,
		},
		{"already spinning", domain.ErrAlreadySpinning, http.StatusConflict, domain.RejectAlreadySpinning},
		{"insufficient funds", fmt.Errorf("%w: balance 5, bet 10", domain.ErrInsufficientFunds), http.StatusBadRequest, domain.RejectInsufficientFunds},
		{"invalid bet", fmt.Errorf("%w: got 0", domain.ErrInvalidBet), http.StatusBadRequest, domain.RejectInvalidBet},
		{"settlement failed", fmt.Errorf("%w: boom", domain.ErrSettlementFailed), http.StatusInternalServerError, ""},
		{"shutting down", slots.ErrShuttingDown, http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slotsSvc := &MockSlotsService{}
			econ := &MockEconomyService{}
			h := NewSlotsHandler(slotsSvc, econ)

			slotsSvc.On("Spin", mock.Anything, int64(1), "x", int64(10)).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", bytes.NewBufferString(`{"user_id":1,"display_name":"x","bet":10}`))
			rec := httptest.NewRecorder()
			h.HandleSpin(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody[ErrorResponse](t, rec)
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleSpin_TooSoonSetsRetryAfter(t *testing.T) {
	slotsSvc := &MockSlotsService{}
	econ := &MockEconomyService{}
	h := NewSlotsHandler(slotsSvc, econ)

	econ.On("DefaultBet", mock.Anything, int64(1)).Return(int64(10))
	slotsSvc.On("Spin", mock.Anything, int64(1), "", int64(10)).
		Return(nil, cooldown.ErrOnCooldown{Action: "spin", Remaining: 2300 * time.Millisecond})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", bytes.NewBufferString(`{"user_id":1}`))
	rec := httptest.NewRecorder()
	h.HandleSpin(rec, req)

	assert.Equal(t, "3", rec.Header().Get(HeaderRetryAfter))
	assert.Equal(t, int64(3), decodeBody[ErrorResponse](t, rec).RetryAfterSeconds)
}

func TestHandleSpin_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"user_id":`},
		{"missing user id", `{"display_name":"x"}`},
		{"negative user id", `{"user_id":-4}`},
		{"control characters in name", `{"user_id":1,"display_name":"a\u0007b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slotsSvc := &MockSlotsService{}
			h := NewSlotsHandler(slotsSvc, &MockEconomyService{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.HandleSpin(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			slotsSvc.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetBalance(t *testing.T) {
	slotsSvc := &MockSlotsService{}
	h := NewSlotsHandler(slotsSvc, &MockEconomyService{})

	summary := domain.BalanceSummary{UserID: 12, Balance: 1000, DefaultBet: 10, JackpotPool: 10000}
	slotsSvc.On("Balance", mock.Anything, int64(12)).Return(summary)

	rec := httptest.NewRecorder()
	h.HandleGetBalance(rec, withUserID(httptest.NewRequest(http.MethodGet, "/", nil), "12"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, summary, decodeBody[domain.BalanceSummary](t, rec))

	rec = httptest.NewRecorder()
	h.HandleGetBalance(rec, withUserID(httptest.NewRequest(http.MethodGet, "/", nil), "abc"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
