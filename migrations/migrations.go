// Package migrations embeds the versioned schema for every supported driver.
package migrations

import "embed"

// FS holds one directory per driver name.
//
//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS
