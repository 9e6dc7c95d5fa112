package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdfscope/internal/errors"
	"hdfscope/internal/store"
	"hdfscope/pkg/types"
)

func scalar(v float64) *types.Array {
	return &types.Array{Data: []float64{v}, Dims: []uint64{1}}
}

func TestDiscoverLeafOnly(t *testing.T) {
	f := store.NewMemFile("run1.h5").
		AddDataset("/raw/frames", scalar(1)).
		AddDataset("/raw/dark", scalar(2)).
		AddDataset("/meta/energy", scalar(300))

	c, err := Discover(f)
	require.NoError(t, err)

	// Leaf nodes only, in pre-order discovery order
	assert.Equal(t, []string{"/raw/frames", "/raw/dark", "/meta/energy"}, c.Paths())
	assert.Equal(t, 3, c.Len())

	// Group nodes are never entries
	assert.False(t, c.Contains("/"))
	assert.False(t, c.Contains("/raw"))
	assert.True(t, c.Contains("/raw/frames"))
}

func TestDiscoverSingleGroupSingleDataset(t *testing.T) {
	f := store.NewMemFile("run1.h5").AddDataset("/raw/frames", scalar(1))

	c, err := Discover(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"/raw/frames"}, c.Paths())
}

func TestDiscoverIsDeterministic(t *testing.T) {
	f := store.NewMemFile("run1.h5").
		AddDataset("/b/two", scalar(2)).
		AddDataset("/a/one", scalar(1))

	first, err := Discover(f)
	require.NoError(t, err)
	second, err := Discover(f)
	require.NoError(t, err)

	assert.Equal(t, first.Paths(), second.Paths())
}

func TestDiscoverEmptyFile(t *testing.T) {
	c, err := Discover(store.NewMemFile("empty.h5"))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Paths())
}

func TestDiscoverTraversalFailure(t *testing.T) {
	f := store.NewMemFile("broken.h5")
	f.FailWalks(errors.New("truncated superblock"))

	_, err := Discover(f)
	require.Error(t, err)
	assert.True(t, errors.IsFileUnreadable(err))
}

func TestCatalogAt(t *testing.T) {
	f := store.NewMemFile("run1.h5").
		AddDataset("/raw/frames", scalar(1)).
		AddDataset("/meta/energy", scalar(300))

	c, err := Discover(f)
	require.NoError(t, err)

	path, ok := c.At(0)
	assert.True(t, ok)
	assert.Equal(t, "/raw/frames", path)

	_, ok = c.At(-1)
	assert.False(t, ok)
	_, ok = c.At(2)
	assert.False(t, ok)
}
