// Package catalog discovers the loadable datasets inside one open data
// file and resolves user selections against the discovered set.
package catalog

import (
	"hdfscope/internal/errors"
	"hdfscope/internal/store"
)

// Catalog is the ordered set of dataset paths discovered in one file.
// Iteration order is discovery order (pre-order traversal) and is stable
// across runs on an unchanged file.
type Catalog struct {
	paths []string
	index map[string]int
}

// Discover traverses the file's hierarchy from the root and catalogs every
// leaf data-bearing node. Container nodes are traversed but never recorded.
func Discover(f store.File) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}

	err := f.Walk(func(path string, kind store.NodeKind) {
		if kind != store.KindDataset {
			return
		}
		if _, ok := c.index[path]; ok {
			return
		}
		c.index[path] = len(c.paths)
		c.paths = append(c.paths, path)
	})
	if err != nil {
		return nil, errors.NewStoreError("cannot traverse file", f.Path(), errors.FileUnreadable, err)
	}

	return c, nil
}

// Len returns the number of cataloged datasets.
func (c *Catalog) Len() int {
	return len(c.paths)
}

// Paths returns the dataset paths in discovery order. The returned slice
// is shared; callers must not mutate it.
func (c *Catalog) Paths() []string {
	return c.paths
}

// At returns the path at the given zero-based position.
func (c *Catalog) At(i int) (string, bool) {
	if i < 0 || i >= len(c.paths) {
		return "", false
	}
	return c.paths[i], true
}

// Contains reports whether the catalog holds the given path.
func (c *Catalog) Contains(path string) bool {
	_, ok := c.index[path]
	return ok
}
