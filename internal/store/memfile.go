package store

import (
	"sort"
	"strings"

	"hdfscope/internal/errors"
	"hdfscope/pkg/types"
)

// MemFile is an in-memory File used by tests and by components that need a
// store without touching the filesystem. Datasets are registered by
// absolute path; intermediate groups are derived from the paths.
type MemFile struct {
	name     string
	datasets map[string]*types.Array
	order    []string
	readErr  error
	walkErr  error
	closed   bool
}

// NewMemFile creates an empty in-memory file with the given path.
func NewMemFile(name string) *MemFile {
	return &MemFile{
		name:     name,
		datasets: make(map[string]*types.Array),
	}
}

// AddDataset registers an array under an absolute slash-delimited path.
// Registration order is preserved for Walk.
func (m *MemFile) AddDataset(path string, a *types.Array) *MemFile {
	if _, ok := m.datasets[path]; !ok {
		m.order = append(m.order, path)
	}
	m.datasets[path] = a
	return m
}

// RemoveDataset drops a dataset, simulating a file changed on disk
// between discovery and load.
func (m *MemFile) RemoveDataset(path string) {
	if _, ok := m.datasets[path]; !ok {
		return
	}
	delete(m.datasets, path)
	for i, p := range m.order {
		if p == path {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// FailReads makes every subsequent Read return err.
func (m *MemFile) FailReads(err error) {
	m.readErr = err
}

// FailWalks makes every subsequent Walk return err after visiting nothing.
func (m *MemFile) FailWalks(err error) {
	m.walkErr = err
}

// Closed reports whether Close has been called.
func (m *MemFile) Closed() bool {
	return m.closed
}

func (m *MemFile) Path() string {
	return m.name
}

func (m *MemFile) Walk(fn func(path string, kind NodeKind)) error {
	if m.walkErr != nil {
		return m.walkErr
	}
	fn("/", KindGroup)

	emitted := map[string]bool{"/": true}
	for _, path := range m.order {
		// Emit ancestor groups before the leaf, each exactly once.
		parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
		groups := make([]string, 0, len(parts)-1)
		for i := 1; i < len(parts); i++ {
			groups = append(groups, "/"+strings.Join(parts[:i], "/"))
		}
		sort.Strings(groups)
		for _, g := range groups {
			if !emitted[g] {
				emitted[g] = true
				fn(g, KindGroup)
			}
		}
		fn(path, KindDataset)
	}
	return nil
}

func (m *MemFile) Read(path string) (*types.Array, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	a, ok := m.datasets[path]
	if !ok {
		return nil, errors.NewStoreError("dataset path not found in file", path, errors.PathNotFound, nil)
	}
	return a, nil
}

func (m *MemFile) Close() error {
	m.closed = true
	return nil
}

// Describe reports the registered array's shape.
func (m *MemFile) Describe(path string) (string, error) {
	a, ok := m.datasets[path]
	if !ok {
		return "", errors.NewStoreError("dataset path not found in file", path, errors.PathNotFound, nil)
	}
	return a.Shape(), nil
}
