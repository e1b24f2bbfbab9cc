package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/config"
	"github.com/biztime-dev/biztime/internal/database"
	"github.com/biztime-dev/biztime/internal/logger"
)

// fakeStore implements the queries used by these tests; any other call panics
type fakeStore struct {
	database.Store
}

func (fakeStore) IsDatabaseRunning(ctx context.Context) (bool, error) {
	return true, nil
}

func (fakeStore) ListCompanies(ctx context.Context) ([]database.Company, error) {
	return []database.Company{{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."}}, nil
}

func newTestServer(t *testing.T, maxRequestSize int64) http.Handler {
	t.Helper()

	cfg := &config.ServerEnvironment{
		Environment:         "test",
		Host:                "localhost",
		Port:                8080,
		RequestTimeout:      5 * time.Second,
		MaxRequestSize:      maxRequestSize,
		CompanyDeletePolicy: "restrict",
	}
	return NewServer(nil, fakeStore{}, cfg, logger.InitLogger(logger.LevelNone, "test")).Handler()
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t, 1024)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"liveness", http.MethodGet, "/health/live", http.StatusOK},
		{"readiness", http.MethodGet, "/health/ready", http.StatusOK},
		{"version", http.MethodGet, "/version", http.StatusOK},
		{"list companies", http.MethodGet, "/companies", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	h := newTestServer(t, 1024)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("X-Request-Id", "req-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
}

func TestRequestSizeLimitApplied(t *testing.T) {
	h := newTestServer(t, 16)

	body := `{"name":"` + strings.Repeat("a", 64) + `"}`
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "16", rr.Header().Get("X-Max-Request-Size"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, 1024)

	req := httptest.NewRequest(http.MethodOptions, "/companies", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
