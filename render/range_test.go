package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noriah/wavescope/window"
)

func TestComputeRangeEmpty(t *testing.T) {
	for _, snap := range []window.Snapshot{
		nil,
		{},
		{{}, {}},
	} {
		require.Equal(t, Range{Min: -1.0, Max: 1.0}, ComputeRange(snap))
	}
}

func TestComputeRangeFlatSignal(t *testing.T) {
	for _, v := range []float64{0, 3.5, -2} {
		snap := window.Snapshot{
			{v, v, v},
			{v},
		}

		rng := ComputeRange(snap)
		require.Equal(t, v-1.0, rng.Min)
		require.Equal(t, v+1.0, rng.Max)
	}
}

func TestComputeRangeSingleSample(t *testing.T) {
	rng := ComputeRange(window.Snapshot{{4}})
	require.Equal(t, Range{Min: 3.0, Max: 5.0}, rng)
}

func TestComputeRangeSpansAllChannels(t *testing.T) {
	snap := window.Snapshot{
		{2, 3, 4, 5},
		{20, 30, 40, 50},
	}

	require.Equal(t, Range{Min: 2.0, Max: 50.0}, ComputeRange(snap))
}

func TestComputeRangeSkipsEmptyChannels(t *testing.T) {
	snap := window.Snapshot{
		{},
		{-3, 8},
		{},
	}

	require.Equal(t, Range{Min: -3.0, Max: 8.0}, ComputeRange(snap))
}

func TestComputeRangeDoesNotSanitizeInfinities(t *testing.T) {
	// accepted boundary: non-finite samples flow through untouched
	rng := ComputeRange(window.Snapshot{{0, math.Inf(1)}})
	require.Equal(t, 0.0, rng.Min)
	require.True(t, math.IsInf(rng.Max, 1))
}
