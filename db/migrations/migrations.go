// Package migrations embeds the SQL schema for every supported database driver.
package migrations

import "embed"

// FS holds one directory per driver name ("mysql", "sqlite") with ordered
// *.up.sql files.
//
//go:embed mysql/*.sql sqlite/*.sql
var FS embed.FS
