// Package server provides the HTTP server for the biztime API.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Routes:
//   - /companies and /invoices (handlers in internal/server/handlers)
//   - /health/live, /health/ready and /version
//
// middleware is in internal/server/middleware
package server
