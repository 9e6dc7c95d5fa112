package types

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileEntry describes one data file discovered by the directory scanner.
type FileEntry struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Name returns the base name of the file.
func (f *FileEntry) Name() string {
	return filepath.Base(f.Path)
}

// Stat refreshes Size and ModTime from the filesystem, ignoring lookup
// failures.
func (f *FileEntry) Stat() {
	if info, err := os.Stat(f.Path); err == nil {
		f.Size = info.Size()
		f.ModTime = info.ModTime()
	}
}

// LoadedDataset is the realized array together with its origin. It exists
// only between a successful load and the handoff to visualization.
type LoadedDataset struct {
	Array       *Array
	FilePath    string
	DatasetPath string
}

// String returns a human-readable origin, e.g. "run1.h5:/raw/frames".
func (d *LoadedDataset) String() string {
	return fmt.Sprintf("%s:%s", filepath.Base(d.FilePath), d.DatasetPath)
}
