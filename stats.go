package timestep

// Timings keeps running statistics over a stream of durations in seconds.
type Timings struct {
	Count         int
	Latest        float64
	MovingAverage float64
	Min, Max      float64
}

func (t Timings) Add(d float64) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// FrameStats tracks frame deltas and derives the frame rate from their
// moving average.
type FrameStats struct {
	Frame Timings
}

// Record adds a frame delta in seconds.
func (s *FrameStats) Record(dt float64) {
	s.Frame = s.Frame.Add(dt)
}

// FPS returns the frame rate implied by the moving average of the recorded
// deltas, zero while nothing meaningful has been recorded.
func (s *FrameStats) FPS() float64 {
	if s.Frame.MovingAverage <= 0 {
		return 0
	}

	return 1 / s.Frame.MovingAverage
}
