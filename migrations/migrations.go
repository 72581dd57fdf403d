// Package migrations embeds the goose SQL migrations for the backoffice
// analytics database. Files are named YYYYMMDDHHMMSS_description.sql and
// applied in order at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
