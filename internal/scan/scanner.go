// Package scan lists the data files in a directory that match a set of
// glob patterns.
package scan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"hdfscope/internal/errors"
	"hdfscope/pkg/types"
)

// CompilePatterns compiles glob patterns once per scan. A pattern that
// does not compile is rejected up front rather than silently skipped.
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid file pattern %q", p)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// ListFiles returns the names of regular files in dir whose base name
// matches at least one of the given glob patterns. The result is
// deduplicated and sorted ascending. An empty directory or a pattern set
// with no matches yields an empty catalog, not an error.
func ListFiles(dir string, patterns []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.NewStoreError("no such directory", dir, errors.DirectoryNotFound, err)
	}

	globs, err := CompilePatterns(patterns)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewStoreError("cannot read directory", dir, errors.DirectoryNotFound, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesAny(globs, entry.Name()) {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// ListEntries is ListFiles with sizes attached, for display purposes.
func ListEntries(dir string, patterns []string) ([]types.FileEntry, error) {
	names, err := ListFiles(dir, patterns)
	if err != nil {
		return nil, err
	}

	entries := make([]types.FileEntry, 0, len(names))
	for _, name := range names {
		e := types.FileEntry{Path: filepath.Join(dir, name)}
		e.Stat()
		entries = append(entries, e)
	}
	return entries, nil
}

// Matches reports whether name matches at least one of the patterns.
// A pattern that does not compile never matches.
func Matches(patterns []string, name string) bool {
	globs, err := CompilePatterns(patterns)
	if err != nil {
		return false
	}
	return matchesAny(globs, name)
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
