// Package api defines the wire contract of the record service: the request and response
// bodies, the error taxonomy and the helpers handlers use to write responses.
//
// Handlers return failures as *Error values (see errors.go). RespondWithError maps them to an
// HTTP status and a `{"error": {...}}` body, and logs the full error server-side. Any other
// error type reaching RespondWithError is treated as an internal error.
package api
