// Package migrations embeds the SQL schema migrations so they compile into
// the binary and apply on startup without external files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
