// Package gamedata provides the embedded enemy, event and shop tables
// and the registries built from them.
package gamedata

import "embed"

// dataFS holds every JSON table in this directory.
//
//go:embed *.json
var dataFS embed.FS
