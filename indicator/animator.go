package indicator

import (
	"math"
	"time"
)

// Visual is the rendered state of a circle at an instant. Both values are in
// [0, 1].
type Visual struct {
	Scale   float64
	Opacity float64
}

// CircleAnimator drives the pulse and exit animations of one circle. It does
// not schedule anything by itself: visual state is computed from the clock,
// and exit completion is detected when the owner calls Advance on a frame.
type CircleAnimator struct {
	spec  CircleSpec
	clock Clock
	phase Phase

	delay     time.Duration
	cycle     time.Duration
	startedAt time.Time

	exitFrom     float64
	exitStart    time.Time
	exitDuration time.Duration
	onComplete   func()
}

// NewCircleAnimator returns a Pending animator for spec.
func NewCircleAnimator(spec CircleSpec, clock Clock) *CircleAnimator {
	if clock == nil {
		clock = realClock{}
	}
	return &CircleAnimator{spec: spec, clock: clock}
}

// Spec returns the circle this animator draws.
func (a *CircleAnimator) Spec() CircleSpec { return a.spec }

// Phase returns the animator's current phase.
func (a *CircleAnimator) Phase() Phase { return a.phase }

// Delay returns the initial delay passed to StartPulsing.
func (a *CircleAnimator) Delay() time.Duration { return a.delay }

// StartPulsing begins an endless pulse after afterDelay. Each cycle grows the
// circle from nothing to full size and back.
func (a *CircleAnimator) StartPulsing(afterDelay, cycleDuration time.Duration) {
	if a.phase == Removed {
		return
	}
	if afterDelay < 0 {
		afterDelay = 0
	}
	a.delay = afterDelay
	a.cycle = cycleDuration
	a.startedAt = a.clock.Now()
	a.phase = Pulsing
}

// CancelImmediately freezes and detaches the circle. A pending exit
// completion is dropped and will never fire.
func (a *CircleAnimator) CancelImmediately() {
	a.phase = Removed
	a.onComplete = nil
}

// PlayExitAndNotify replaces the pulse with a one-shot shrink and fade lasting
// half a pulse cycle. onComplete runs exactly once, from the Advance call that
// observes the end of the exit, after the circle is detached. A non-positive
// cycle finishes on the next Advance.
func (a *CircleAnimator) PlayExitAndNotify(onComplete func()) {
	switch a.phase {
	case Removed:
		return
	case Exiting:
		a.onComplete = onComplete
		return
	}
	now := a.clock.Now()
	a.exitFrom = a.visualAt(now).Scale
	a.exitStart = now
	a.exitDuration = a.cycle / 2
	a.onComplete = onComplete
	a.phase = Exiting
}

// Advance moves the animator to now and reports whether an exit finished on
// this call.
func (a *CircleAnimator) Advance(now time.Time) bool {
	if a.phase != Exiting {
		return false
	}
	if a.exitDuration > 0 && now.Sub(a.exitStart) < a.exitDuration {
		return false
	}
	a.phase = Removed
	done := a.onComplete
	a.onComplete = nil
	if done != nil {
		done()
	}
	return true
}

// VisualAt returns the circle's scale and opacity at now.
func (a *CircleAnimator) VisualAt(now time.Time) Visual {
	return a.visualAt(now)
}

func (a *CircleAnimator) visualAt(now time.Time) Visual {
	switch a.phase {
	case Pulsing:
		return visualForScale(pulseScale(now.Sub(a.startedAt)-a.delay, a.cycle))
	case Exiting:
		if a.exitDuration <= 0 {
			return Visual{}
		}
		progress := float64(now.Sub(a.exitStart)) / float64(a.exitDuration)
		return visualForScale(a.exitFrom * (1 - clamp01(progress)))
	default:
		return Visual{}
	}
}

func pulseScale(elapsed, cycle time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	if cycle <= 0 {
		return 1
	}
	phase := float64(elapsed%cycle) / float64(cycle)
	return 0.5 - 0.5*math.Cos(2*math.Pi*phase)
}

func visualForScale(scale float64) Visual {
	scale = clamp01(scale)
	return Visual{Scale: scale, Opacity: math.Sqrt(scale)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
