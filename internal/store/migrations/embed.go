// Package migrations embeds the golang-migrate SQL files of the catalog schema.
package migrations

import "embed"

// FS holds the up and down migrations at its root.
//
//go:embed *.sql
var FS embed.FS
