package timestep

// Fixed advances a simulation at a constant interval, independent of the
// frame rate feeding it.
//
// Deltas go into an overstep accumulator via Accumulate, which drains whole
// intervals and advances the owned State by exactly one interval per step.
// Feeding it scaled deltas (e.g. from a Clock with Scale below 1) makes the
// fixed steps fire correspondingly less often.
type Fixed struct {
	State State

	interval float64
	overstep float64
}

// NewFixed creates a stepper with the given interval in seconds. Non positive
// intervals fall back to DefaultTick.
func NewFixed(interval float64) *Fixed {
	if interval <= 0 {
		interval = DefaultTick
	}

	return &Fixed{
		State:    State{Step: AddStep(interval)},
		interval: interval,
	}
}

// Accumulate adds dt to the overstep accumulator and returns how many whole
// fixed steps are now due. The owned State is advanced once per due step, so
// callers iterating the returned count see State.Time progress step by step.
func (f *Fixed) Accumulate(dt float64) int {
	f.overstep += dt

	var steps int
	for f.overstep >= f.interval {
		f.overstep -= f.interval
		steps++
	}

	return steps
}

// Step advances the owned State by one interval. Call it once per step
// reported by Accumulate.
func (f *Fixed) Step() *State {
	return Apply(&f.State, Sample{})
}

// Interval returns the configured step interval in seconds.
func (f *Fixed) Interval() float64 {
	return f.interval
}

// Overstep returns the not yet consumed remainder of accumulated time.
func (f *Fixed) Overstep() float64 {
	return f.overstep
}
