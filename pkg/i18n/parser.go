package i18n

import "context"

// Parser decodes the content of one catalog file.
type Parser interface {
	// Parse returns the file's entries keyed by language code.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension reports whether ext, with or without its dot,
	// names a file this parser reads.
	SupportsFileExtension(ext string) bool
}
