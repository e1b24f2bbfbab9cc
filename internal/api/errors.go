package api

// errors.go defines the error codes returned by the API

import "fmt"

// Error represents a structured API error.
type Error struct {
	// code classifies the error and determines the HTTP status
	code ErrorCode

	// message is a human-readable message that is safe to return to the client
	message string

	// wrapped is the optional underlying error (logged, never returned to the client)
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Message() string { return e.message }
func (e *Error) Unwrap() error   { return e.wrapped }

// ErrorCode is returned in the "code" field of error responses.
type ErrorCode string

const (
	// ErrCodeNotFound is used when the company or invoice named in the path does not exist
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeValidation is used when a required field is missing or has an invalid value
	ErrCodeValidation ErrorCode = "validation"

	// ErrCodeMalformedRequest is used when the request body is not valid JSON
	ErrCodeMalformedRequest ErrorCode = "malformed_request"

	// ErrCodeConflict is used for uniqueness violations (duplicate company code)
	// and when a company with invoices cannot be deleted
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeUnknownReference is used when a request body references a company that does not exist
	ErrCodeUnknownReference ErrorCode = "unknown_reference"

	// ErrCodeRateLimitExceeded is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = "rate_limited"

	// ErrCodeRequestTooLarge is used when the request body exceeds the configured limit
	ErrCodeRequestTooLarge ErrorCode = "request_too_large"

	// ErrCodeInternalError is used for store failures and anything unexpected
	ErrCodeInternalError ErrorCode = "internal"
)

// NewNotFoundError creates an error for a missing company or invoice.
func NewNotFoundError(msg string) error {
	return &Error{code: ErrCodeNotFound, message: msg}
}

// WrapNotFoundError wraps a store error (typically pgx.ErrNoRows) as a not found error.
func WrapNotFoundError(err error, msg string) error {
	return &Error{code: ErrCodeNotFound, message: msg, wrapped: err}
}

// NewValidationError creates an error for missing or invalid request fields.
func NewValidationError(msg string) error {
	return &Error{code: ErrCodeValidation, message: msg}
}

// NewMalformedRequestError creates an error for request bodies that cannot be decoded.
func NewMalformedRequestError(msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps a JSON decoding error.
func WrapMalformedRequestError(err error, msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewConflictError creates an error for requests that conflict with stored state.
func NewConflictError(msg string) error {
	return &Error{code: ErrCodeConflict, message: msg}
}

// WrapConflictError wraps a constraint violation reported by the store.
func WrapConflictError(err error, msg string) error {
	return &Error{code: ErrCodeConflict, message: msg, wrapped: err}
}

// WrapUnknownReferenceError wraps a foreign key violation caused by the request body.
func WrapUnknownReferenceError(err error, msg string) error {
	return &Error{code: ErrCodeUnknownReference, message: msg, wrapped: err}
}

// WrapInternalError wraps a store or encoding failure.
// The wrapped error is logged but the client only sees msg.
func WrapInternalError(err error, msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
func NewRateLimitError(msg string) error {
	return &Error{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
func NewRequestTooLargeError(msg string) error {
	return &Error{code: ErrCodeRequestTooLarge, message: msg}
}
