// Package migrations embeds the SQL migrations applied to the client store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
