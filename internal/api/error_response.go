package api

// error_response.go maps errors to HTTP status codes and the JSON error body

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes why a request failed.
type ErrorDetail struct {
	// The HTTP status code returned
	Status int `json:"status" example:"404"`

	// Error classification (not_found, validation, conflict ...)
	Code ErrorCode `json:"code" example:"not_found"`

	// Human-readable description. The wording is not part of the contract.
	Message string `json:"message" example:"company not found"`

	// The request id (also returned in the X-Request-Id header)
	RequestID string `json:"request_id,omitempty"`
}

// StatusCode returns the HTTP status for an error code.
func StatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidation, ErrCodeMalformedRequest, ErrCodeUnknownReference:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToResponse maps err to an error response.
//
// *Error values keep their code and client message. Any other error is reported as an
// internal error with a generic message; the caller is expected to log the original.
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = &Error{code: ErrCodeInternalError, message: "internal error", wrapped: err}
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Status:    StatusCode(apiErr.Code()),
			Code:      apiErr.Code(),
			Message:   apiErr.Message(),
			RequestID: requestID,
		},
	}
}
