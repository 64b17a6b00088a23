package timestepbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/timestep"
)

// Loop adapts the step calculator to the ebiten game loop. It implements
// ebiten.Game: every Update ticks the Clock, records frame stats and drains
// the Fixed stepper, invoking OnFixedUpdate once per due fixed step and
// OnUpdate once per frame.
//
// Loop does not schedule anything itself, ebiten owns the loop.
type Loop struct {
	Clock *timestep.Clock
	Fixed *timestep.Fixed
	Stats timestep.FrameStats

	// OnUpdate runs once per frame with the clock state.
	OnUpdate func(state timestep.State)

	// OnFixedUpdate runs once per due fixed step with the stepper state.
	OnFixedUpdate func(state timestep.State)

	OnDraw   func(screen *ebiten.Image)
	OnLayout func(outsideWidth, outsideHeight int) (int, int)
}

// NewLoop creates a Loop with a wall clock and a DefaultTick fixed stepper.
func NewLoop() *Loop {
	return &Loop{
		Clock: timestep.NewClock(),
		Fixed: timestep.NewFixed(timestep.DefaultTick),
	}
}

func (l *Loop) Update() error {
	dt := l.Clock.Tick()
	l.Stats.Record(dt)

	if l.Fixed != nil {
		for range l.Fixed.Accumulate(dt) {
			state := l.Fixed.Step()
			if l.OnFixedUpdate != nil {
				l.OnFixedUpdate(*state)
			}
		}
	}

	if l.OnUpdate != nil {
		l.OnUpdate(l.Clock.State)
	}

	return nil
}

func (l *Loop) Draw(screen *ebiten.Image) {
	if l.OnDraw != nil {
		l.OnDraw(screen)
	}
}

func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l.OnLayout != nil {
		return l.OnLayout(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight
}
