// Package migrations embeds the goose migration files for the document
// store. Provisioning is idempotent (create if not exists), so racing cold
// starts are safe.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
