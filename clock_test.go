package timestep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTime struct {
	now float64
}

func (f *fakeTime) source() func() float64 {
	return func() float64 { return f.now }
}

func TestClockFirstTickIsZero(t *testing.T) {
	ft := &fakeTime{now: 100}
	c := NewClockFrom(ft.source())

	require.Equal(t, 0.0, c.Tick())
	require.Equal(t, 0.0, c.Elapsed())
}

func TestClockAccumulates(t *testing.T) {
	ft := &fakeTime{now: 100}
	c := NewClockFrom(ft.source())
	c.Tick()

	ft.now = 100.5
	require.InDelta(t, 0.5, c.Tick(), 1e-9)

	ft.now = 101.25
	require.InDelta(t, 0.75, c.Tick(), 1e-9)

	require.InDelta(t, 1.25, c.Elapsed(), 1e-9)
	require.InDelta(t, 0.75, c.Delta(), 1e-9)
}

func TestClockScale(t *testing.T) {
	ft := &fakeTime{now: 0}
	c := NewClockFrom(ft.source())
	c.Tick()

	c.Scale = 0.5

	ft.now = 2
	require.InDelta(t, 1.0, c.Tick(), 1e-9)
	require.InDelta(t, 1.0, c.Elapsed(), 1e-9)
}

func TestClockPauseResume(t *testing.T) {
	ft := &fakeTime{now: 0}
	c := NewClockFrom(ft.source())
	c.Tick()

	ft.now = 1
	c.Tick()
	require.InDelta(t, 1.0, c.Elapsed(), 1e-9)

	c.Pause()
	require.True(t, c.Paused())

	ft.now = 5
	require.Equal(t, 0.0, c.Tick())
	require.InDelta(t, 1.0, c.Elapsed(), 1e-9)
	require.Equal(t, 0.0, c.Delta())

	// the baseline followed the source while paused, resuming must not jump
	c.Resume()
	ft.now = 5.25
	require.InDelta(t, 0.25, c.Tick(), 1e-9)
	require.InDelta(t, 1.25, c.Elapsed(), 1e-9)
}
