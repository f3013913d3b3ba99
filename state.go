package main

import "github.com/katistix/dots/indicator"

// --- STATE MANAGEMENT ---

// event is the last thing that happened to the indicator, shown in the
// status pane.
type event int

const (
	eventNone event = iota
	eventStarted
	eventRestarted
	eventSuperseded
	eventStopped
	eventStopping
	eventStoppedGracefully
	eventNothingToStop
	eventNothingToStart
	eventCopied
	eventCopyFailed
)

func (e event) String() string {
	return [...]string{
		"Press enter to start", "🚀 Started", "🔄 Restarted", "⏭️ Restarted before the stop finished", "🛑 Stopped", "⏳ Stopping gracefully...", "✅ Stopped gracefully", "💤 Nothing to stop", "💤 Nothing to start", "📋 Preset copied", "🔥 Copy failed",
	}[e]
}

// startEvent describes a Start issued while the indicator was in state s.
func startEvent(s indicator.State) event {
	switch s {
	case indicator.Running:
		return eventRestarted
	case indicator.GracefulStopping:
		return eventSuperseded
	default:
		return eventStarted
	}
}
