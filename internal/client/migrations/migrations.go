// Package migrations embeds the goose migrations of the local session
// database used by the CLI.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
