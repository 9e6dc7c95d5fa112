package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdfscope/internal/store"
	"hdfscope/pkg/types"
)

func threeEntryCatalog(t *testing.T) *Catalog {
	t.Helper()
	f := store.NewMemFile("run1.h5").
		AddDataset("/raw/frames", &types.Array{Data: []float64{1}}).
		AddDataset("/raw/dark", &types.Array{Data: []float64{2}}).
		AddDataset("/meta/energy", &types.Array{Data: []float64{3}})
	c, err := Discover(f)
	require.NoError(t, err)
	return c
}

func TestResolveIndex(t *testing.T) {
	c := threeEntryCatalog(t)

	// Every valid 1-based index maps to the i-th path in iteration order
	for i := 1; i <= c.Len(); i++ {
		res := Resolve(c, fmt.Sprintf("%d", i))
		assert.Equal(t, ResolvedPath, res.Kind)
		want, _ := c.At(i - 1)
		assert.Equal(t, want, res.Path)
	}
}

func TestResolveChangeFile(t *testing.T) {
	c := threeEntryCatalog(t)

	for _, raw := range []string{"change file", "CHANGE FILE", "Change File", "  change file  "} {
		res := Resolve(c, raw)
		assert.Equal(t, ChangeFile, res.Kind, raw)
	}
}

func TestResolveNotANumber(t *testing.T) {
	c := threeEntryCatalog(t)

	for _, raw := range []string{"", "abc", "1.5", "one", "change", "/raw/frames"} {
		res := Resolve(c, raw)
		assert.Equal(t, Invalid, res.Kind, raw)
		assert.Equal(t, "not a number", res.Reason, raw)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	c := threeEntryCatalog(t)

	for _, raw := range []string{"0", "-1", "4", "5", "99"} {
		res := Resolve(c, raw)
		assert.Equal(t, Invalid, res.Kind, raw)
		assert.Equal(t, "out of range", res.Reason, raw)
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	c := threeEntryCatalog(t)

	res := Resolve(c, " 2 ")
	assert.Equal(t, ResolvedPath, res.Kind)
	assert.Equal(t, "/raw/dark", res.Path)
}
