package timestep

import (
	"strconv"
	"time"
)

// Mode identifies the stepping discipline of a State.
type Mode uint8

// ModeDiff treats the sample as an absolute time reading and reports the
// difference since the last recorded time. It is the zero value and thereby
// the default discipline of a zero State.
const ModeDiff Mode = 0

// ModeAdd treats the sample as an increment and accumulates it onto the
// recorded time.
const ModeAdd Mode = 1

// ModePause keeps the recorded time unchanged and reports a zero delta.
const ModePause Mode = 2

// DefaultTick is the fallback increment for add stepping, one 60th of a second.
const DefaultTick = 1.0 / 60

// Now is the default sampler for diff stepping. It reports the wall clock in
// seconds. Replaceable for tests.
var Now = func() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Step selects the stepping discipline, plus a default increment for add
// stepping. The zero value is Diff().
type Step struct {
	mode Mode
	size float64
}

// Diff returns the step that advances time to a newly sampled absolute value.
func Diff() Step {
	return Step{mode: ModeDiff}
}

// AddStep returns the step that advances time by size per call. A size of zero
// means "use the per-call sample, or DefaultTick if none is given".
func AddStep(size float64) Step {
	return Step{mode: ModeAdd, size: size}
}

// Paused returns the step that does not advance time at all.
func Paused() Step {
	return Step{mode: ModePause}
}

func (s Step) Mode() Mode {
	return s.mode
}

// Size returns the default increment of an add step, zero for the other modes.
func (s Step) Size() float64 {
	return s.size
}

// StepOf maps a raw numeric step code to its canonical Step: zero pauses,
// negative values select diff stepping, positive values select add stepping
// with that increment.
func StepOf(v float64) Step {
	switch {
	case v == 0:
		return Paused()
	case v < 0:
		return Diff()
	default:
		return AddStep(v)
	}
}

var stepAliases = map[string]Step{
	"pause": Paused(),
	"stop":  Paused(),
	"p":     Paused(),
	"diff":  Diff(),
	"d":     Diff(),
	"-":     Diff(),
	"add":   AddStep(0),
	"a":     AddStep(0),
	"+":     AddStep(0),
}

// ParseStep resolves a mnemonic step key through the alias table. Keys that
// parse as a number resolve through StepOf instead. Unknown keys report
// ok == false rather than poisoning later arithmetic.
func ParseStep(key string) (Step, bool) {
	if step, ok := stepAliases[key]; ok {
		return step, true
	}

	if v, err := strconv.ParseFloat(key, 64); err == nil {
		return StepOf(v), true
	}

	return Step{}, false
}

// Sample is the per-call now-source: a literal number, a zero-argument
// sampler function, or nothing at all. The zero value means "not provided"
// and resolves to a mode specific default.
type Sample struct {
	fn      func() float64
	value   float64
	present bool
}

// Literal wraps an already resolved time value or increment.
func Literal(v float64) Sample {
	return Sample{value: v, present: true}
}

// Sampler wraps a function that produces the value on demand. It is invoked
// at most once per Compute.
func Sampler(fn func() float64) Sample {
	return Sample{fn: fn, present: true}
}

func (s Sample) resolve(step Step) float64 {
	if s.fn != nil {
		return s.fn()
	}

	if s.present {
		return s.value
	}

	switch step.mode {
	case ModeAdd:
		if step.size != 0 {
			return step.size
		}

		return DefaultTick

	case ModeDiff:
		return Now()

	default:
		return 0
	}
}

// State is the caller owned record threaded through Apply. Time is the last
// recorded time value, DT the delta reported by the previous step.
type State struct {
	Time float64
	DT   float64
	Step Step
}

// Compute derives the next time value and its delta without touching state.
//
// Pause leaves time unchanged with a zero delta. Diff takes the resolved
// sample as an absolute reading, so the delta is the distance to the last
// recorded time. Add takes the resolved sample as an increment. In every
// case dt equals the produced time minus state.Time, except for pause where
// it is pinned to zero.
func Compute(state State, sample Sample) (t, dt float64) {
	switch state.Step.mode {
	case ModePause:
		return state.Time, 0

	case ModeAdd:
		size := sample.resolve(state.Step)
		return state.Time + size, size

	default:
		now := sample.resolve(state.Step)
		return now, now - state.Time
	}
}

// Apply computes the next step and writes Time and DT back into state,
// returning state.
func Apply(state *State, sample Sample) *State {
	state.Time, state.DT = Compute(*state, sample)
	return state
}

// ApplyTo computes the next step into a fresh record, leaving state
// untouched. The step selector is carried over into out.
func ApplyTo(state State, sample Sample, out *State) *State {
	out.Time, out.DT = Compute(state, sample)
	out.Step = state.Step
	return out
}

// Advance computes the next step and returns only the number of interest:
// the delta for diff stepping, the new time value otherwise.
func Advance(state State, sample Sample) float64 {
	t, dt := Compute(state, sample)
	if state.Step.mode == ModeDiff {
		return dt
	}

	return t
}
