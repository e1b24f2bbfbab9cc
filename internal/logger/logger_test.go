package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"none", LevelNone},
		{LevelNone.String(), LevelNone},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContextRequestLoggerDefault(t *testing.T) {
	if ContextRequestLogger(context.Background()) != slog.Default() {
		t.Error("expected the default logger outside a request")
	}

	// must not panic without a request context
	ContextWithLogAttrs(context.Background(), slog.String("key", "value"))
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogging(base))
	router.Get("/companies/{code}", func(w http.ResponseWriter, r *http.Request) {
		ContextRequestLogger(r.Context()).Debug("handler called")
		ContextWithLogAttrs(r.Context(), slog.String("company_code", chi.URLParam(r, "code")))
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/companies/apple", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var handlerLine, requestLine map[string]any
	if err := json.Unmarshal(lines[0], &handlerLine); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if err := json.Unmarshal(lines[1], &requestLine); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}

	if handlerLine["request_id"] == "" || handlerLine["request_id"] == nil {
		t.Error("handler log line is missing request_id")
	}
	if handlerLine["path"] != "/companies/apple" {
		t.Errorf("path = %v, want /companies/apple", handlerLine["path"])
	}

	if requestLine["msg"] != "Request completed" {
		t.Errorf("msg = %v, want Request completed", requestLine["msg"])
	}
	if requestLine["level"] != "WARN" {
		t.Errorf("level = %v, want WARN for a 404", requestLine["level"])
	}
	if requestLine["status"] != float64(http.StatusNotFound) {
		t.Errorf("status = %v, want 404", requestLine["status"])
	}
	if requestLine["company_code"] != "apple" {
		t.Errorf("company_code = %v, want apple", requestLine["company_code"])
	}
}
