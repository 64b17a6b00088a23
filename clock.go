package timestep

// Clock measures the progression of wall clock time, one Tick per frame.
//
// The progression of time can be scaled by setting the Scale field. This will
// scale the delta starting at the next Tick. The first Tick only establishes
// the baseline and reports a zero delta.
type Clock struct {
	State State
	Scale float64

	now     func() float64
	last    float64
	started bool
}

// NewClock creates a Clock backed by the package wall clock sampler.
func NewClock() *Clock {
	return NewClockFrom(func() float64 { return Now() })
}

// NewClockFrom creates a Clock backed by a custom time source reporting
// seconds.
func NewClockFrom(now func() float64) *Clock {
	return &Clock{
		State: State{Step: AddStep(0)},
		Scale: 1,
		now:   now,
	}
}

// Tick samples the time source and advances the clock by the scaled delta,
// returning that delta in seconds. While paused the baseline still follows
// the time source, so Resume does not produce a jump.
func (c *Clock) Tick() float64 {
	now := c.now()

	if !c.started {
		c.started = true
		c.last = now
		c.State.DT = 0
		return 0
	}

	raw := now - c.last
	c.last = now

	if c.State.Step.Mode() == ModePause {
		Apply(&c.State, Sample{})
		return 0
	}

	dt := raw * c.Scale
	Apply(&c.State, Literal(dt))
	return dt
}

// Pause stops the clock from advancing until Resume is called.
func (c *Clock) Pause() {
	c.State.Step = Paused()
}

func (c *Clock) Resume() {
	c.State.Step = AddStep(0)
}

func (c *Clock) Paused() bool {
	return c.State.Step.Mode() == ModePause
}

// Elapsed returns the accumulated scaled time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.State.Time
}

// Delta returns the scaled delta of the previous Tick in seconds.
func (c *Clock) Delta() float64 {
	return c.State.DT
}
