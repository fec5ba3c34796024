package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("no storage to check", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("storage reachable", func(t *testing.T) {
		p := &MockPinger{}
		p.On("Ping", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		HandleReadyz(p).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		p.AssertExpectations(t)
	})

	t.Run("storage down", func(t *testing.T) {
		p := &MockPinger{}
		p.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		rec := httptest.NewRecorder()
		HandleReadyz(p).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
	})
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion("1.2.3").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	info := decodeBody[VersionInfo](t, rec)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
