// Package migrations embeds the goose SQL migrations for the task backend
// schema so the binary can bootstrap a database without external files.
package migrations

import "embed"

// Files holds the embedded goose migration scripts.
//
//go:embed *.sql
var Files embed.FS
