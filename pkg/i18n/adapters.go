package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TranslationAdapter supplies translations from some storage.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations held in memory.
type MapAdapter struct {
	Translations map[string]map[string]any
}

func (a *MapAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	return a.Translations, nil
}

// EmbeddedFSAdapter reads every supported file in one directory of a file system,
// typically an embed.FS. Files are merged key by key in directory order, nested
// maps included; on conflicting leaves the later file wins.
type EmbeddedFSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewEmbeddedFSAdapter(parser Parser, fsys fs.FS, dir string) *EmbeddedFSAdapter {
	return &EmbeddedFSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *EmbeddedFSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.parser == nil || a.fsys == nil {
		return nil, ErrNilAdapter
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		parsed, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", name, err)
		}
		for lang, translations := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeNested(all[lang], translations)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}

// mergeNested copies src into dst, descending into maps present on both sides.
// Non-map values from src replace those in dst.
func mergeNested(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeNested(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
