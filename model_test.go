package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/katistix/dots/indicator"
)

func keyPress(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (model, *indicator.ManualClock) {
	t.Helper()
	clock := indicator.NewManualClock(time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC))
	m := initialModel(defaultDotsConfig(), zerolog.Nop())
	m.indicator = indicator.New(indicator.WithClock(clock))
	return m, clock
}

// update runs msg through the model and returns the typed model.
func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

// messages runs cmd and flattens batches. It must not be given tick commands.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, messages(c)...)
	}
	return out
}

// stopDone returns the single gracefulStopDoneMsg produced by cmd.
func stopDone(t *testing.T, cmd tea.Cmd) gracefulStopDoneMsg {
	t.Helper()
	var found []gracefulStopDoneMsg
	for _, msg := range messages(cmd) {
		if done, ok := msg.(gracefulStopDoneMsg); ok {
			found = append(found, done)
		}
	}
	if len(found) != 1 {
		t.Fatalf("Expected one gracefulStopDoneMsg, got %d", len(found))
	}
	return found[0]
}

func TestStartKeyStartsIndicator(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, keyPress("s"))
	if cmd == nil {
		t.Fatal("Expected a frame command")
	}
	if m.indicator.State() != indicator.Running {
		t.Errorf("Expected running, got %s", m.indicator.State())
	}
	if got := len(m.indicator.Circles()); got != defaultDotsConfig().Presets[0].Circles {
		t.Errorf("Expected %d circles, got %d", defaultDotsConfig().Presets[0].Circles, got)
	}
	if m.lastEvent != eventStarted {
		t.Errorf("Expected %s, got %s", eventStarted, m.lastEvent)
	}

	m, _ = update(t, m, keyPress("s"))
	if m.lastEvent != eventRestarted {
		t.Errorf("Expected %s, got %s", eventRestarted, m.lastEvent)
	}
}

func TestStartKeyWithEmptyPreset(t *testing.T) {
	cfg := DotsConfig{Presets: []PresetConfig{{Name: "empty", Circles: 0, Radius: 1, Duration: time.Second}}}
	m := initialModel(cfg, zerolog.Nop())

	m, cmd := update(t, m, keyPress("s"))
	if cmd != nil {
		t.Error("Expected no frame command")
	}
	if m.indicator.State() != indicator.Idle {
		t.Errorf("Expected idle, got %s", m.indicator.State())
	}
	if m.lastEvent != eventNothingToStart {
		t.Errorf("Expected %s, got %s", eventNothingToStart, m.lastEvent)
	}
}

func TestStopKey(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, keyPress("s"))

	m, _ = update(t, m, keyPress("x"))
	if m.indicator.State() != indicator.Idle || len(m.indicator.Circles()) != 0 {
		t.Errorf("Expected idle with no circles, got %s with %d", m.indicator.State(), len(m.indicator.Circles()))
	}
	if m.lastEvent != eventStopped {
		t.Errorf("Expected %s, got %s", eventStopped, m.lastEvent)
	}
}

func TestGracefulStopKeyReportsCompletion(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, keyPress("s"))

	m, cmd := update(t, m, keyPress(" "))
	if cmd != nil {
		t.Fatal("Expected no message before the exit animations finish")
	}
	if m.indicator.State() != indicator.GracefulStopping {
		t.Fatalf("Expected stopping, got %s", m.indicator.State())
	}

	m.indicator.Advance(clock.Advance(time.Second))
	m, cmd = update(t, m, copiedExpiredMsg{})
	if cmd != nil {
		t.Fatal("copiedExpiredMsg returns early; outbox must still hold the message")
	}
	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	done := stopDone(t, cmd)
	if done.quit {
		t.Fatal("Expected a non-quit gracefulStopDoneMsg")
	}

	m, _ = update(t, m, done)
	if m.gracefulStops != 1 || m.lastEvent != eventStoppedGracefully {
		t.Errorf("Expected 1 graceful stop, got %d (%s)", m.gracefulStops, m.lastEvent)
	}
}

func TestQuitWaitsForGracefulStop(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, keyPress("s"))

	m, cmd := update(t, m, keyPress("q"))
	if !m.quitting || cmd != nil {
		t.Fatalf("Expected to be quitting with nothing to deliver yet, got %v, %v", m.quitting, cmd)
	}

	m.indicator.Advance(clock.Advance(time.Second))
	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	done := stopDone(t, cmd)
	if !done.quit {
		t.Fatal("Expected a quit gracefulStopDoneMsg")
	}

	_, cmd = update(t, m, done)
	if cmd == nil {
		t.Fatal("Expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected a QuitMsg")
	}
}

func TestQuitWhenIdleQuitsRightAway(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, keyPress("q"))
	_, cmd = update(t, m, stopDone(t, cmd))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected a QuitMsg")
	}
}

func TestOutboxDrain(t *testing.T) {
	o := &outbox{}
	if o.drain() != nil {
		t.Error("Expected nil command for an empty outbox")
	}
	o.push(copiedExpiredMsg{})
	msgs := messages(o.drain())
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(copiedExpiredMsg); !ok {
		t.Error("Expected the queued message")
	}
	if len(o.msgs) != 0 {
		t.Error("Expected drain to empty the outbox")
	}
}

func TestCircleSummary(t *testing.T) {
	circles := []indicator.Circle{{Phase: indicator.Pulsing}, {Phase: indicator.Exiting}, {Phase: indicator.Pulsing}}
	if got := circleSummary(circles); got != "3 (2 pulsing, 1 exiting)" {
		t.Errorf("Expected '3 (2 pulsing, 1 exiting)', got '%s'", got)
	}
	if got := circleSummary(nil); got != "0" {
		t.Errorf("Expected '0', got '%s'", got)
	}
}

func TestStartEvent(t *testing.T) {
	testCases := []struct {
		state    indicator.State
		expected event
	}{
		{indicator.Idle, eventStarted},
		{indicator.Running, eventRestarted},
		{indicator.GracefulStopping, eventSuperseded},
	}
	for _, tc := range testCases {
		if got := startEvent(tc.state); got != tc.expected {
			t.Errorf("Expected %s for %s, got %s", tc.expected, tc.state, got)
		}
	}
}
