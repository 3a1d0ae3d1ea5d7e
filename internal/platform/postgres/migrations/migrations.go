// Package migrations embeds the goose SQL migrations for the kitchen schema.
package migrations

import "embed"

// FS holds every migration file, for use with goose.SetBaseFS.
//
//go:embed *.sql
var FS embed.FS
