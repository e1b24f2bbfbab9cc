package api

// responses.go provides helper functions for sending HTTP responses from the handlers.

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/biztime-dev/biztime/internal/logger"
)

// RespondWithError sends the JSON error response for err.
//
// It logs the full error details (including wrapped store errors) server-side and sends the
// sanitized message to the client. 5xx responses are logged at error level, 4xx at warn.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse := MapErrorToResponse(err, r)

	reqLogger := logger.ContextRequestLogger(r.Context())
	level := slog.LevelWarn
	if errorResponse.Error.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	reqLogger.Log(r.Context(), level, "Request failed",
		slog.String("error", err.Error()),
		slog.Int("status_code", errorResponse.Error.Status),
		slog.String("error_code", string(errorResponse.Error.Code)),
	)

	RespondWithJSONPayload(w, errorResponse.Error.Status, errorResponse)
}

// RespondWithJSONPayload sends a JSON response with the given status code.
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// headers are already written so there is nothing more to send
			slog.Error("Failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}

// DecodeJSONBody decodes the request body into dst.
//
// An empty or syntactically invalid body is a malformed request. A body cut off by
// http.MaxBytesReader (see middleware.RequestSizeLimit) is reported as request too large.
func DecodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return NewMalformedRequestError("request body is required")
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return NewRequestTooLargeError(fmt.Sprintf("request body exceeds maximum allowed size (%d bytes)", maxBytesErr.Limit))
		}
		return WrapMalformedRequestError(err, "invalid request body")
	}
	return nil
}
