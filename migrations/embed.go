// Package migrations embeds the SQL that creates the key-value tables used by
// the SQLite and PostgreSQL storage providers.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
