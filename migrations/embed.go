package migrations

import "embed"

// Files holds the app's SQL migrations, applied in version order by the
// db package at startup.
//
//go:embed *.sql
var Files embed.FS
