// Package locales embeds the message catalogs shipped with the binary.
package locales

import "embed"

// FS holds ja.yaml and en.yaml at its root.
//
//go:embed *.yaml
var FS embed.FS
