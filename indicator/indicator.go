// Package indicator is a bubbletea component that draws a row of dots, each
// pulsing on its own staggered loop, to signal indeterminate progress.
//
// A Model is owned by one event loop. Start, Stop, StopGracefully and Update
// must all be called from that loop (bubbletea's Update); completion callbacks
// run on it too.
package indicator

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the animation of the indicator with the matching ID.
type FrameMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Circle is a snapshot of one live circle.
type Circle struct {
	Spec  CircleSpec
	Delay time.Duration
	Phase Phase
}

type handle struct {
	spec     CircleSpec
	animator *CircleAnimator
}

// Model is the indicator controller.
type Model struct {
	id  int
	tag int

	cfg    Config
	active Config
	clock  Clock
	colors ColorResolver
	log    zerolog.Logger

	state      State
	handles    []*handle
	generation uint64
	pending    int
	completion func()
	now        time.Time
}

// Option configures a Model at construction.
type Option func(*Model)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(m *Model) { m.cfg = cfg }
}

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(m *Model) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithColorResolver sets the color resolver. See SetColorResolver.
func WithColorResolver(r ColorResolver) Option {
	return func(m *Model) { m.colors = r }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// New returns an Idle indicator.
func New(opts ...Option) *Model {
	m := &Model{
		id:    nextID(),
		cfg:   DefaultConfig(),
		clock: realClock{},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With().Str("component", "indicator").Int("id", m.id).Logger()
	m.now = m.clock.Now()
	return m
}

// ID identifies the indicator's frame messages.
func (m *Model) ID() int { return m.id }

// Config returns the configuration used by the next Start.
func (m *Model) Config() Config { return m.cfg }

// SetConfig replaces the configuration. Circles that already exist keep the
// geometry and timing they were started with.
func (m *Model) SetConfig(cfg Config) { m.cfg = cfg }

// SetColorResolver sets the resolver consulted on each Start. The model does
// not own the resolver: an owner that goes away must clear it by passing nil,
// after which every circle uses DefaultColor.
func (m *Model) SetColorResolver(r ColorResolver) { m.colors = r }

// State returns the lifecycle state.
func (m *Model) State() State { return m.state }

// Generation increases on every Start, Stop and graceful stop.
func (m *Model) Generation() uint64 { return m.generation }

// Circles returns a snapshot of the live circles in index order.
func (m *Model) Circles() []Circle {
	out := make([]Circle, 0, len(m.handles))
	for _, h := range m.handles {
		out = append(out, Circle{
			Spec:  h.spec,
			Delay: h.animator.Delay(),
			Phase: h.animator.Phase(),
		})
	}
	return out
}

// Start lays out fresh circles and starts them pulsing, each delayed by its
// index times Config.Delay. Existing circles are cancelled first, and an
// outstanding graceful stop is dropped without calling its completion. With
// zero circles configured Start does nothing.
//
// The returned command starts the frame loop.
func (m *Model) Start() tea.Cmd {
	cfg := m.cfg.normalized()
	if cfg.NumberOfCircles == 0 {
		return nil
	}
	if m.state == GracefulStopping {
		m.log.Debug().Uint64("generation", m.generation).Int("pending", m.pending).Msg("graceful stop superseded")
	}
	m.cancelAll()
	m.generation++
	m.active = cfg
	m.now = m.clock.Now()

	specs := Layout(cfg.NumberOfCircles, cfg.Radius, cfg.InternalSpacing, m.colors)
	m.handles = make([]*handle, 0, len(specs))
	for _, spec := range specs {
		a := NewCircleAnimator(spec, m.clock)
		a.StartPulsing(time.Duration(spec.Index)*cfg.Delay, cfg.Duration)
		m.handles = append(m.handles, &handle{spec: spec, animator: a})
	}
	m.state = Running
	m.log.Debug().Uint64("generation", m.generation).Int("circles", len(m.handles)).Msg("started")

	m.tag++
	return m.tick()
}

// Stop removes every circle at once. Calling it while Idle does nothing. An
// outstanding graceful stop is dropped without calling its completion.
func (m *Model) Stop() {
	if m.state == Idle {
		return
	}
	m.cancelAll()
	m.generation++
	m.state = Idle
	m.log.Debug().Uint64("generation", m.generation).Msg("stopped")
}

// StopGracefully lets every circle play its exit animation and calls
// completion once all of them have finished. When nothing is running,
// completion is called before StopGracefully returns. When a graceful stop is
// already in progress, a non-nil completion replaces the pending one and the
// countdown carries on. A Start or Stop issued before the countdown ends
// drops the completion for good.
func (m *Model) StopGracefully(completion func()) {
	switch m.state {
	case Idle:
		if completion != nil {
			completion()
		}
		return
	case GracefulStopping:
		if completion != nil {
			m.completion = completion
		}
		return
	}

	m.generation++
	gen := m.generation
	m.state = GracefulStopping
	m.pending = len(m.handles)
	m.completion = completion
	m.log.Debug().Uint64("generation", gen).Int("circles", m.pending).Msg("graceful stop requested")

	for _, h := range m.handles {
		h.animator.PlayExitAndNotify(func() { m.exitFinished(gen) })
	}
	if m.pending == 0 {
		m.finishGracefulStop()
	}
}

func (m *Model) exitFinished(gen uint64) {
	if gen != m.generation || m.state != GracefulStopping {
		return
	}
	m.pending--
	if m.pending > 0 {
		return
	}
	m.finishGracefulStop()
}

// finishGracefulStop settles into Idle before running the completion so that
// the callback may Start again.
func (m *Model) finishGracefulStop() {
	done := m.completion
	m.completion = nil
	m.pending = 0
	m.handles = nil
	m.state = Idle
	m.log.Debug().Uint64("generation", m.generation).Msg("graceful stop complete")
	if done != nil {
		done()
	}
}

func (m *Model) cancelAll() {
	for _, h := range m.handles {
		h.animator.CancelImmediately()
	}
	m.handles = nil
	m.pending = 0
	m.completion = nil
}

// Advance moves every circle to now, delivering any exit completions that
// are due. Update calls it on each frame; headless callers may call it
// directly.
func (m *Model) Advance(now time.Time) {
	m.now = now
	// The range keeps the slice it started with; completions may replace
	// m.handles.
	for _, h := range m.handles {
		h.animator.Advance(now)
	}
}

// Update handles FrameMsg for this indicator and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != m.id || frame.tag != m.tag {
		return nil
	}
	m.Advance(m.clock.Now())
	if m.state == Idle {
		return nil
	}
	// A completion that called Start has already scheduled a frame; the new
	// tag leaves only the loop scheduled here alive.
	m.tag++
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.active.frameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, tag: tag}
	})
}
