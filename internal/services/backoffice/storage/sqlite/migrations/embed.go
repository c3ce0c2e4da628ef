package migrations

import "embed"

// FS contains embedded SQLite migrations for back-office storage.
//
//go:embed *.sql
var FS embed.FS
