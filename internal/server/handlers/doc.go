// Package handlers provides the HTTP handlers for the biztime API.
//
// The company and invoice handlers are structs holding a database.Store; each request maps to one
// query, or to a short sequence of queries run in a single transaction with Store.ExecTx where the
// result depends on a read (invoice payment updates, company deletes).
//
// Errors are returned to the client as api.ErrorResponse bodies via api.RespondWithError.
//
// The infrastructure handlers (liveness, readiness, version) are plain http.HandlerFuncs.
package handlers
