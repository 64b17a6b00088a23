package timestep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimingsAdd(t *testing.T) {
	var timings Timings

	timings = timings.Add(0.016)
	require.Equal(t, 1, timings.Count)
	require.Equal(t, 0.016, timings.Min)
	require.Equal(t, 0.016, timings.Max)
	require.Equal(t, 0.016, timings.MovingAverage)

	timings = timings.Add(0.020)
	require.Equal(t, 2, timings.Count)
	require.Equal(t, 0.016, timings.Min)
	require.Equal(t, 0.020, timings.Max)
	require.Equal(t, 0.020, timings.Latest)
	require.Greater(t, timings.MovingAverage, 0.016)
	require.Less(t, timings.MovingAverage, 0.020)
}

func TestFrameStatsFPS(t *testing.T) {
	var stats FrameStats
	require.Equal(t, 0.0, stats.FPS())

	for range 100 {
		stats.Record(1.0 / 60)
	}

	require.InDelta(t, 60, stats.FPS(), 0.5)
}
