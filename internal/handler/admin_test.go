package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

func newAdminHandler() (*AdminHandler, *MockEconomyService, *MockStatsService, *MockFlusher) {
	econ := &MockEconomyService{}
	st := &MockStatsService{}
	fl := &MockFlusher{}
	return NewAdminHandler(econ, st, fl), econ, st, fl
}

func TestAdminAdjustBalance(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		amount     int64
		result     domain.AdjustResult
		err        error
		wantStatus int
	}{
		{
			name:       "credit",
			body:       `{"user_id":9,"amount":500}`,
			amount:     500,
			result:     domain.AdjustResult{UserID: 9, OldBalance: 1000, NewBalance: 1500, Delta: 500},
			wantStatus: http.StatusOK,
		},
		{
			name:       "reset with zero",
			body:       `{"user_id":9,"amount":0}`,
			amount:     0,
			result:     domain.AdjustResult{UserID: 9, OldBalance: 1000, NewBalance: 0, Delta: -1000},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown user",
			body:       `{"user_id":9,"amount":10}`,
			amount:     10,
			err:        fmt.Errorf("failed to adjust balance: %w", domain.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "overdraft",
			body:       `{"user_id":9,"amount":-5000}`,
			amount:     -5000,
			err:        fmt.Errorf("%w: short by 4000", domain.ErrInsufficientFunds),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "overflowing credit",
			body:       `{"user_id":9,"amount":9223372036854775807}`,
			amount:     9223372036854775807,
			err:        fmt.Errorf("failed to adjust balance: %w", domain.ErrInvalidAdjustment),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, econ, _, _ := newAdminHandler()
			econ.On("AdminAdjustBalance", mock.Anything, int64(9), tt.amount).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			h.HandleAdjustBalance(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/balance", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, tt.result, decodeBody[domain.AdjustResult](t, rec))
			}
			econ.AssertExpectations(t)
		})
	}

	t.Run("missing user id", func(t *testing.T) {
		h, econ, _, _ := newAdminHandler()
		rec := httptest.NewRecorder()
		h.HandleAdjustBalance(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount":5}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		econ.AssertNotCalled(t, "AdminAdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdminListUsersAndStats(t *testing.T) {
	h, _, st, _ := newAdminHandler()
	list := domain.UserList{TotalUsers: 2, TotalSpins: 7, Users: []domain.UserSummary{{UserID: 1, Spins: 7}}}
	sys := domain.SystemStats{TotalUsers: 2, JackpotPool: 10020}
	st.On("UserList", mock.Anything).Return(list)
	st.On("SystemStats", mock.Anything).Return(sys)

	rec := httptest.NewRecorder()
	h.HandleListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, list, decodeBody[domain.UserList](t, rec))

	rec = httptest.NewRecorder()
	h.HandleSystemStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10020), decodeBody[domain.SystemStats](t, rec).JackpotPool)
}

func TestAdminSave(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, _, _, fl := newAdminHandler()
		fl.On("Flush", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		h.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/save", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, MsgSnapshotWritten, decodeBody[SuccessResponse](t, rec).Message)
	})

	t.Run("store failure", func(t *testing.T) {
		h, _, _, fl := newAdminHandler()
		fl.On("Flush", mock.Anything).Return(assert.AnError)

		rec := httptest.NewRecorder()
		h.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/save", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, ErrMsgSaveFailed, decodeBody[ErrorResponse](t, rec).Error)
	})
}
