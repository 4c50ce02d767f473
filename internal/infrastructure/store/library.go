package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/snoozie-v/dinner-sub000/internal/core/recipe"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"go.uber.org/zap"
)

// Library persists the recipe collection as a single JSON array document.
type Library struct {
	path string
}

// NewLibrary creates a store over the given document path.
func NewLibrary(path string) *Library {
	return &Library{path: path}
}

// Path returns the backing document path.
func (l *Library) Path() string {
	return l.path
}

// Load reads the library. A missing file is an empty library; a present but
// unparseable file is an error.
func (l *Library) Load() ([]recipe.Recipe, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, common.NewError(common.ErrCodeLibraryIO, "failed to read library", err)
	}

	var recipes []recipe.Recipe
	if err := common.ParseJSONBytes(data, &recipes); err != nil {
		return nil, common.NewError(common.ErrCodeLibraryIO, "failed to parse library", err)
	}

	return recipes, nil
}

// LoadStrict reads the library, treating a missing file as an error. The
// repair and update drivers use this: operating on a library that does not
// exist is operator error, not an empty diff.
func (l *Library) LoadStrict() ([]recipe.Recipe, error) {
	if _, err := os.Stat(l.path); err != nil {
		return nil, common.NewError(common.ErrCodeLibraryIO, "library file not found", err)
	}
	return l.Load()
}

// Append adds one recipe to the library and flushes to disk immediately, so
// a terminated import keeps everything parsed before the cut. A recipe whose
// source URL is already in the library is rejected with ErrDuplicateSource.
func (l *Library) Append(r recipe.Recipe) error {
	recipes, err := l.Load()
	if err != nil {
		return err
	}

	if r.SourceURL != "" {
		for _, existing := range recipes {
			if existing.SourceURL == r.SourceURL {
				return common.ErrDuplicateSource
			}
		}
	}

	return l.Replace(append(recipes, r))
}

// Replace atomically rewrites the whole library document: write to a temp
// file in the same directory, then rename over the original.
func (l *Library) Replace(recipes []recipe.Recipe) error {
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return common.NewError(common.ErrCodeLibraryIO, "failed to encode library", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return common.NewError(common.ErrCodeLibraryIO, "failed to create library directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return common.NewError(common.ErrCodeLibraryIO, "failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return common.NewError(common.ErrCodeLibraryIO, "failed to write library", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return common.NewError(common.ErrCodeLibraryIO, "failed to flush library", err)
	}

	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return common.NewError(common.ErrCodeLibraryIO, "failed to replace library", err)
	}

	common.LogDebug("library written",
		zap.String("path", l.path),
		zap.Int("recipes", len(recipes)),
	)

	return nil
}
