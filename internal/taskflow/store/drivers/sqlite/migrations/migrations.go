// Package migrations embeds the SQL schema migrations so the binary carries
// its own schema and can bring a fresh database up on first boot.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
