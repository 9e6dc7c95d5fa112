package types

import (
	"fmt"
	"strings"
)

// Array is a fully materialized dataset read from a hierarchical store.
// Values are stored flat in row-major order; Dims describes the shape.
// A scalar has an empty Dims and a single value.
type Array struct {
	Data []float64
	Dims []uint64
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.Data)
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.Dims)
}

// Shape returns a human-readable shape, e.g. "[64 64 128 128]".
func (a *Array) Shape() string {
	if len(a.Dims) == 0 {
		return "scalar"
	}
	parts := make([]string, len(a.Dims))
	for i, d := range a.Dims {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Frame is a single 2D image derived from an Array, stored row-major.
type Frame struct {
	Data   []float64
	Height int
	Width  int
}

// At returns the value at row y, column x.
func (f *Frame) At(y, x int) float64 {
	return f.Data[y*f.Width+x]
}
