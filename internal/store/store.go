// Package store abstracts the hierarchical file format the browser reads.
// The session core depends only on the interfaces here; the production
// implementation wraps the pure-Go HDF5 reader.
package store

import "hdfscope/pkg/types"

// NodeKind distinguishes container nodes from leaf data-bearing nodes.
type NodeKind int

const (
	// KindGroup is a container node; it is traversed but never cataloged.
	KindGroup NodeKind = iota
	// KindDataset is a leaf node holding array data.
	KindDataset
)

// File is an open hierarchical data file.
type File interface {
	// Path returns the filesystem path the file was opened from.
	Path() string

	// Walk visits every node exactly once in pre-order, calling fn with
	// the node's slash-delimited absolute path and its kind. A non-nil
	// error means traversal hit a low-level I/O failure and the visit is
	// incomplete.
	Walk(fn func(path string, kind NodeKind)) error

	// Read materializes the array stored at the given dataset path.
	// Reading is all-or-nothing: either the whole array is returned or an
	// error with kind PathNotFound or FileUnreadable is raised.
	Read(path string) (*types.Array, error)

	// Close releases the underlying handle. Safe to call more than once.
	Close() error
}

// Describer is implemented by files that can report human-readable
// metadata for a dataset path, e.g. its dataspace and element type.
type Describer interface {
	Describe(path string) (string, error)
}

// Opener opens a data file read-only. Failures carry kind FileUnreadable.
type Opener func(path string) (File, error)
