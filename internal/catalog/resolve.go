package catalog

import (
	"strconv"
	"strings"
)

// ChangeFileToken is the reserved input that exits the current file's
// exploration loop without loading anything. Matched case-insensitively.
const ChangeFileToken = "change file"

// ResolutionKind classifies the outcome of resolving raw user input.
type ResolutionKind int

const (
	// ResolvedPath: the input named exactly one catalog entry.
	ResolvedPath ResolutionKind = iota
	// ChangeFile: the input was the reserved change-file sentinel.
	ChangeFile
	// Invalid: the input was rejected; Reason says why and the caller
	// re-prompts without unwinding any state.
	Invalid
)

// Resolution is the result of resolving one line of user input against a
// catalog.
type Resolution struct {
	Kind   ResolutionKind
	Path   string // set when Kind == ResolvedPath
	Reason string // set when Kind == Invalid
}

// Resolve maps raw user input to a dataset path in the catalog. Input is
// either the change-file sentinel or a 1-based index into the catalog's
// iteration order. Resolve performs no I/O and is pure over its inputs.
func Resolve(c *Catalog, raw string) Resolution {
	trimmed := strings.TrimSpace(raw)

	if strings.EqualFold(trimmed, ChangeFileToken) {
		return Resolution{Kind: ChangeFile}
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return Resolution{Kind: Invalid, Reason: "not a number"}
	}

	path, ok := c.At(n - 1)
	if !ok {
		return Resolution{Kind: Invalid, Reason: "out of range"}
	}

	return Resolution{Kind: ResolvedPath, Path: path}
}
