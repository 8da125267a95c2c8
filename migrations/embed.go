// Package migrations embeds the schema of every supported dialect, one directory per dialect.
package migrations

import "embed"

// FS ...
//
//go:embed mysql/*.sql sqlite/*.sql
var FS embed.FS
