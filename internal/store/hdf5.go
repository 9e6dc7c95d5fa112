package store

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/scigolib/hdf5"

	"hdfscope/internal/errors"
	"hdfscope/pkg/types"
)

// hdf5File adapts a scigolib/hdf5 file to the File interface.
type hdf5File struct {
	f    *hdf5.File
	path string
}

// OpenHDF5 opens an HDF5 file read-only.
func OpenHDF5(path string) (File, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, errors.NewStoreError("cannot open file", path, errors.FileUnreadable, err)
	}
	return &hdf5File{f: f, path: path}, nil
}

func (h *hdf5File) Path() string {
	return h.path
}

func (h *hdf5File) Walk(fn func(path string, kind NodeKind)) error {
	// The library resolves the whole hierarchy at open time, so traversal
	// itself cannot fail here.
	h.f.Walk(func(path string, obj hdf5.Object) {
		switch obj.(type) {
		case *hdf5.Group:
			fn(normalizePath(path), KindGroup)
		case *hdf5.Dataset:
			fn(normalizePath(path), KindDataset)
		}
	})
	return nil
}

func (h *hdf5File) Read(path string) (*types.Array, error) {
	ds := h.find(path)
	if ds == nil {
		return nil, errors.NewStoreError("dataset path not found in file", path, errors.PathNotFound, nil)
	}

	data, err := ds.Read()
	if err != nil {
		return nil, errors.NewStoreError("cannot read dataset", path, errors.FileUnreadable, err)
	}

	// The library exposes the dataspace only through the Info display
	// string. TODO: read dims structurally once scigolib/hdf5 exports
	// dataset metadata.
	var dims []uint64
	if info, err := ds.Info(); err == nil {
		dims = parseDims(info)
	}

	return &types.Array{Data: data, Dims: dims}, nil
}

func (h *hdf5File) Close() error {
	return h.f.Close()
}

// Describe returns the library's info string for the dataset at path.
func (h *hdf5File) Describe(path string) (string, error) {
	ds := h.find(path)
	if ds == nil {
		return "", errors.NewStoreError("dataset path not found in file", path, errors.PathNotFound, nil)
	}
	return ds.Info()
}

// find locates the dataset at the given normalized path, or nil.
func (h *hdf5File) find(path string) *hdf5.Dataset {
	var found *hdf5.Dataset
	h.f.Walk(func(p string, obj hdf5.Object) {
		if ds, ok := obj.(*hdf5.Dataset); ok && normalizePath(p) == path {
			found = ds
		}
	})
	return found
}

// normalizePath strips the trailing slash the library appends to group
// paths, keeping the root as "/".
func normalizePath(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimSuffix(path, "/")
}

// dimsRe matches the dataspace fragment of a dataset info string, e.g.
// "1D array [5]", "2D array [2 x 3]", "4D array [64 64 128 128]".
var dimsRe = regexp.MustCompile(`\d+D array \[([^\]]+)\]`)

func parseDims(info string) []uint64 {
	m := dimsRe.FindStringSubmatch(info)
	if m == nil {
		return nil // scalar or unknown dataspace
	}

	fields := strings.FieldsFunc(m[1], func(r rune) bool {
		return r == ' ' || r == 'x'
	})

	dims := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil
		}
		dims = append(dims, n)
	}
	return dims
}
