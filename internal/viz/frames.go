// Package viz derives summary diffraction frames from a loaded array and
// renders them side by side in the terminal.
package viz

import (
	"math"

	"hdfscope/internal/errors"
	"hdfscope/pkg/types"
)

// SummaryFrames reduces an array to its per-pixel mean and maximum frames.
// The trailing two dimensions are treated as the frame; all leading
// dimensions (the scan positions in a 4D-STEM stack) are reduced over.
// A plain 2D array is returned as its own single frame.
func SummaryFrames(a *types.Array) (mean, max *types.Frame, err error) {
	if a == nil || a.Rank() < 2 {
		return nil, nil, errors.NewKind("array must have at least two dimensions", errors.VisualizationFailure)
	}

	dims := a.Dims
	height := int(dims[len(dims)-2])
	width := int(dims[len(dims)-1])
	frameSize := height * width
	if frameSize == 0 {
		return nil, nil, errors.NewKind("frame dimensions must be non-zero", errors.VisualizationFailure)
	}

	count := 1
	for _, d := range dims[:len(dims)-2] {
		count *= int(d)
	}
	if count*frameSize != len(a.Data) {
		return nil, nil, errors.NewKind("array length does not match its shape", errors.VisualizationFailure)
	}

	meanData := make([]float64, frameSize)
	maxData := make([]float64, frameSize)
	for i := range maxData {
		maxData[i] = math.Inf(-1)
	}

	for f := 0; f < count; f++ {
		frame := a.Data[f*frameSize : (f+1)*frameSize]
		for i, v := range frame {
			meanData[i] += v
			if v > maxData[i] {
				maxData[i] = v
			}
		}
	}
	for i := range meanData {
		meanData[i] /= float64(count)
	}

	mean = &types.Frame{Data: meanData, Height: height, Width: width}
	max = &types.Frame{Data: maxData, Height: height, Width: width}
	return mean, max, nil
}
