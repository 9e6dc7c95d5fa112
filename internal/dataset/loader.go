// Package dataset loads a single dataset from an open data file.
package dataset

import (
	"hdfscope/internal/errors"
	"hdfscope/internal/log"
	"hdfscope/internal/store"
	"hdfscope/pkg/types"
)

// Load materializes the array at the given dataset path. The path must be
// non-empty; an absent path surfaces as PathNotFound, which covers the
// case where the file changed on disk between discovery and load. Loading
// is all-or-nothing.
func Load(f store.File, path string) (*types.LoadedDataset, error) {
	if path == "" {
		return nil, errors.NewKind("dataset path must be a non-empty string", errors.InvalidPathType)
	}

	arr, err := f.Read(path)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %s:%s shape=%s (%d values)", f.Path(), path, arr.Shape(), arr.Len())

	return &types.LoadedDataset{
		Array:       arr,
		FilePath:    f.Path(),
		DatasetPath: path,
	}, nil
}
