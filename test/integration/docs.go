// Package integration contains end-to-end tests for the biztime API server.
//
// These tests verify the server handles API requests correctly (expected responses,
// error handling, database persistence, etc). Each test runs against a temporary
// database with migrations applied, and the server is started in-process.
//
// The tests need docker (testcontainers starts the PostgreSQL container) and are
// excluded from the default build:
//
//	go test -tags=integration ./test/integration
package integration
