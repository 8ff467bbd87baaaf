// Package migrations embeds the schema migration files for the sqlite
// identity cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
