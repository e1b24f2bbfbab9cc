// Package database is the data access layer for the companies and invoices tables.
//
// The query code (*.sql.go, models.go, querier.go) is generated by sqlc from sql/queries
// (see sqlc.yaml in the repository root) - regenerate it with `sqlc generate` rather than editing it.
//
// store.go and errors.go are maintained by hand: Store adds transaction support on top of the
// generated Querier, and the error helpers classify pgx errors for the HTTP layer.
package database
