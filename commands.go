package main

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// --- BUBBLE TEA MESSAGES ---
// These messages are the results of commands and indicator callbacks.

// gracefulStopDoneMsg reports that a graceful stop finished. quit is set when
// the stop was requested on the way out.
type gracefulStopDoneMsg struct {
	generation uint64
	quit       bool
}

type copiedToClipboardMsg struct {
	err error
}

type copiedExpiredMsg struct{}

// --- OUTBOX ---

// outbox collects messages emitted by indicator callbacks while Update runs.
// The model is copied on every Update, so it holds the outbox by pointer.
type outbox struct {
	msgs []tea.Msg
}

func (o *outbox) push(msg tea.Msg) {
	o.msgs = append(o.msgs, msg)
}

// drain turns queued messages into commands and empties the outbox.
func (o *outbox) drain() tea.Cmd {
	if len(o.msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(o.msgs))
	for i, msg := range o.msgs {
		cmds[i] = func() tea.Msg { return msg }
	}
	o.msgs = nil
	return tea.Batch(cmds...)
}

// --- CLIPBOARD COMMANDS ---

func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedToClipboardMsg{err: clipboard.WriteAll(text)}
	}
}

func expireCopiedCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copiedExpiredMsg{}
	})
}
