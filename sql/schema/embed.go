// Package schema embeds the goose migration files that define the companies
// and invoices tables.
package schema

import "embed"

//go:embed *.sql
var FS embed.FS
