package patches

import "embed"

// FS holds the goose migrations applied on startup and in integration tests.
//
//go:embed *.sql
var FS embed.FS
