package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/biztime-dev/biztime/internal/version"
)

func TestHandleHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestHandleReadiness(t *testing.T) {
	t.Run("database available", func(t *testing.T) {
		store := new(mockStore)
		store.On("IsDatabaseRunning", mock.Anything).Return(true, nil)

		rr := httptest.NewRecorder()
		HandleReadiness(store)(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ready"}`, rr.Body.String())
	})

	t.Run("database unavailable", func(t *testing.T) {
		store := new(mockStore)
		store.On("IsDatabaseRunning", mock.Anything).Return(false, errors.New("connection refused"))

		rr := httptest.NewRecorder()
		HandleReadiness(store)(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"status":"not ready","reason":"database unavailable"}`, rr.Body.String())
	})
}

func TestHandleVersion(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleVersion(version.Info{Version: "v1.2.0", BuildDate: "2026-10-19T10:00:00Z"})(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v1.2.0","build_time":"2026-10-19T10:00:00Z","service":"biztime-server"}`, rr.Body.String())
}
