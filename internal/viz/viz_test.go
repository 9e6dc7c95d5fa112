package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdfscope/internal/config"
	"hdfscope/internal/errors"
	"hdfscope/pkg/types"
)

func TestSummaryFrames4D(t *testing.T) {
	// 2x1 scan positions, 2x2 frames
	a := &types.Array{
		Dims: []uint64{2, 1, 2, 2},
		Data: []float64{
			1, 2, 3, 4, // frame at scan (0,0)
			5, 6, 7, 8, // frame at scan (1,0)
		},
	}

	mean, max, err := SummaryFrames(a)
	require.NoError(t, err)

	assert.Equal(t, 2, mean.Height)
	assert.Equal(t, 2, mean.Width)
	assert.Equal(t, []float64{3, 4, 5, 6}, mean.Data)
	assert.Equal(t, []float64{5, 6, 7, 8}, max.Data)
	assert.Equal(t, 8.0, max.At(1, 1))
}

func TestSummaryFrames2D(t *testing.T) {
	// A plain image is its own summary
	a := &types.Array{
		Dims: []uint64{2, 3},
		Data: []float64{1, 2, 3, 4, 5, 6},
	}

	mean, max, err := SummaryFrames(a)
	require.NoError(t, err)
	assert.Equal(t, a.Data, mean.Data)
	assert.Equal(t, a.Data, max.Data)
	assert.Equal(t, 3, mean.Width)
}

func TestSummaryFramesNegativeValues(t *testing.T) {
	a := &types.Array{
		Dims: []uint64{2, 1, 1},
		Data: []float64{-5, -2},
	}

	mean, max, err := SummaryFrames(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3.5}, mean.Data)
	assert.Equal(t, []float64{-2}, max.Data)
}

func TestSummaryFramesRejectsLowRank(t *testing.T) {
	for _, a := range []*types.Array{
		nil,
		{Dims: nil, Data: []float64{1}},
		{Dims: []uint64{5}, Data: []float64{1, 2, 3, 4, 5}},
	} {
		_, _, err := SummaryFrames(a)
		require.Error(t, err)
		assert.True(t, errors.IsVisualizationFailure(err))
	}
}

func TestSummaryFramesShapeMismatch(t *testing.T) {
	a := &types.Array{Dims: []uint64{2, 2}, Data: []float64{1, 2, 3}}

	_, _, err := SummaryFrames(a)
	require.Error(t, err)
	assert.True(t, errors.IsVisualizationFailure(err))
}

func TestRender(t *testing.T) {
	d := &types.LoadedDataset{
		FilePath:    "/data/run1.h5",
		DatasetPath: "/raw/frames",
		Array: &types.Array{
			Dims: []uint64{2, 2, 4, 4},
			Data: make([]float64, 64),
		},
	}
	for i := range d.Array.Data {
		d.Array.Data[i] = float64(i % 16)
	}

	r := NewRenderer(config.New())
	out, err := r.Render(d)
	require.NoError(t, err)
	assert.Contains(t, out, "run1.h5:/raw/frames")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "max")
	assert.Contains(t, out, "shape [2 2 4 4]")
}

func TestRenderUnknownColormap(t *testing.T) {
	r := &Renderer{Colormap: "plasma", Power: 0.25, Width: 8}
	d := &types.LoadedDataset{
		FilePath:    "x.h5",
		DatasetPath: "/d",
		Array:       &types.Array{Dims: []uint64{2, 2}, Data: []float64{1, 2, 3, 4}},
	}

	_, err := r.Render(d)
	require.Error(t, err)
	assert.True(t, errors.IsVisualizationFailure(err))
}

func TestRenderConstantFrame(t *testing.T) {
	// A flat frame must not divide by zero
	d := &types.LoadedDataset{
		FilePath:    "x.h5",
		DatasetPath: "/d",
		Array:       &types.Array{Dims: []uint64{2, 2}, Data: []float64{7, 7, 7, 7}},
	}

	_, err := NewRenderer(config.New()).Render(d)
	assert.NoError(t, err)
}
