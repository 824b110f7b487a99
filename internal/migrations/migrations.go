// AngelaMos | 2026
// migrations.go

// Package migrations embeds the schema applied by core.Database.Migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
