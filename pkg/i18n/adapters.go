package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter supplies catalogs keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs held in memory, mostly for tests.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter reads the catalog files of one directory in an fs.FS, usually
// the embedded locales package. Files the parser does not support are
// skipped. Later files override keys of earlier ones, in lexical order.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns an adapter for dir in fsys. Empty dir means ".".
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}
	if a.parser == nil || a.fsys == nil {
		return nil, ErrNilAdapter
	}

	files, err := a.catalogFiles()
	if err != nil {
		return nil, err
	}

	merged := make(map[string]map[string]any)
	for _, name := range files {
		langs, err := a.parseFile(ctx, name)
		if err != nil {
			return nil, err
		}
		for lang, tree := range langs {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any, len(tree))
			}
			maps.Copy(merged[lang], tree)
		}
	}
	return merged, nil
}

// catalogFiles lists the supported files of the directory.
func (a *FSAdapter) catalogFiles() ([]string, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && a.parser.SupportsFileExtension(path.Ext(e.Name())) {
			files = append(files, path.Join(a.dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return files, nil
}

func (a *FSAdapter) parseFile(ctx context.Context, name string) (map[string]map[string]any, error) {
	raw, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
	}
	langs, err := a.parser.Parse(ctx, string(raw))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return langs, nil
}
