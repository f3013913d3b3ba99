package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/katistix/dots/indicator"
)

// --- BUBBLE TEA MODEL & ITEMS ---

// item represents a single preset in our list.
type item struct {
	preset PresetConfig
}

// Implement list.Item interface for item.
func (i item) Title() string {
	return fmt.Sprintf("● %s", i.preset.Name)
}

func (i item) Description() string {
	return fmt.Sprintf("%d circles • r=%g • gap=%g • %s/%s",
		i.preset.Circles, i.preset.Radius, i.preset.Spacing, i.preset.Delay, i.preset.Duration)
}
func (i item) FilterValue() string { return i.preset.Name }

// --- MAIN MODEL ---
type model struct {
	cfg       DotsConfig
	list      list.Model
	indicator *indicator.Model
	keys      keyMap
	help      help.Model
	outbox    *outbox
	log       zerolog.Logger

	lastEvent     event
	gracefulStops int
	showCopied    bool
	err           error
	quitting      bool
}

func initialModel(cfg DotsConfig, logger zerolog.Logger) model {
	items := make([]list.Item, len(cfg.Presets))
	for i, p := range cfg.Presets {
		items[i] = item{preset: p}
	}

	delegate := list.NewDefaultDelegate()
	selectedStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(katistixOrange).
		Foreground(katistixOrange).
		Padding(0, 0, 0, 1)

	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = selectedStyle.Foreground(lipgloss.Color("250")).Faint(true)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Dots Presets"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false) // We render our own help.

	ind := indicator.New(indicator.WithLogger(logger))
	first := eventNone
	if len(cfg.Presets) > 0 {
		ind.SetConfig(cfg.Presets[0].indicatorConfig(cfg))
		ind.SetColorResolver(cfg.Presets[0].palette())
		first = eventStarted
		if cfg.Presets[0].Circles <= 0 {
			first = eventNothingToStart
		}
	}

	return model{
		lastEvent: first,
		cfg:       cfg,
		list:      l,
		indicator: ind,
		keys:      defaultKeyMap(),
		help:      help.New(),
		outbox:    &outbox{},
		log:       logger.With().Str("component", "ui").Logger(),
	}
}

// --- BUBBLE TEA LOGIC ---
func (m model) Init() tea.Cmd {
	// initialModel already loaded the first preset.
	return m.indicator.Start()
}

// startSelected applies the selected preset and (re)starts the indicator.
func (m *model) startSelected() tea.Cmd {
	selected, ok := m.list.SelectedItem().(item)
	if !ok {
		return nil
	}
	prev, gen := m.indicator.State(), m.indicator.Generation()
	m.indicator.SetConfig(selected.preset.indicatorConfig(m.cfg))
	m.indicator.SetColorResolver(selected.preset.palette())
	cmd := m.indicator.Start()
	if m.indicator.Generation() == gen {
		// Presets with no circles leave the indicator untouched.
		m.lastEvent = eventNothingToStart
	} else {
		m.lastEvent = startEvent(prev)
	}
	m.log.Info().Str("preset", selected.preset.Name).Str("event", m.lastEvent.String()).Msg("start requested")
	return cmd
}

// stopGracefully asks the indicator to wind down; quit exits the program once
// it has.
func (m *model) stopGracefully(quit bool) {
	if m.indicator.State() == indicator.Idle && !quit {
		m.lastEvent = eventNothingToStop
	} else {
		m.lastEvent = eventStopping
	}
	ob, ind := m.outbox, m.indicator
	m.indicator.StopGracefully(func() {
		ob.push(gracefulStopDoneMsg{generation: ind.Generation(), quit: quit})
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.quitting {
		if done, ok := msg.(gracefulStopDoneMsg); ok && done.quit {
			return m, tea.Quit
		}
		// Ctrl+C while winding down skips the exit animation.
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
			m.indicator.Stop()
			return m, tea.Quit
		}
		cmds = append(cmds, m.indicator.Update(msg), m.outbox.drain())
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		listWidth := int(float32(msg.Width-h) * 0.45)
		m.list.SetSize(listWidth, msg.Height-v-3)
		m.help.Width = msg.Width - h

	case gracefulStopDoneMsg:
		if m.lastEvent == eventStopping {
			m.gracefulStops++
			m.lastEvent = eventStoppedGracefully
		}
		m.log.Info().Uint64("generation", msg.generation).Int("total", m.gracefulStops).Msg("graceful stop finished")
		return m, nil

	case copiedToClipboardMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastEvent = eventCopyFailed
			m.log.Warn().Err(msg.err).Msg("copy to clipboard failed")
			return m, nil
		}
		m.err = nil
		m.showCopied = true
		m.lastEvent = eventCopied
		return m, expireCopiedCmd()

	case copiedExpiredMsg:
		m.showCopied = false
		return m, nil

	case tea.KeyMsg:
		// Let the list have every key while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.log.Info().Msg("quitting")
			m.stopGracefully(true)
			return m, m.outbox.drain()
		case key.Matches(msg, m.keys.Start):
			return m, m.startSelected()
		case key.Matches(msg, m.keys.Stop):
			if m.indicator.State() != indicator.Idle {
				m.lastEvent = eventStopped
			}
			m.indicator.Stop()
			return m, nil
		case key.Matches(msg, m.keys.Graceful):
			m.stopGracefully(false)
			return m, m.outbox.drain()
		case key.Matches(msg, m.keys.Copy):
			selected, ok := m.list.SelectedItem().(item)
			if !ok {
				return m, nil
			}
			text, err := presetYAML(selected.preset)
			if err != nil {
				m.err = err
				m.lastEvent = eventCopyFailed
				return m, nil
			}
			return m, copyToClipboardCmd(text)
		}
	}

	cmds = append(cmds, m.indicator.Update(msg))
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd, m.outbox.drain())

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.quitting {
		return docStyle.Render(fmt.Sprintf("\n%s\n\nStopping gracefully... Please wait.\n", m.indicator.View()))
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.list.View())
	right := lipgloss.JoinVertical(lipgloss.Left,
		indicatorPaneStyle.Render(m.renderIndicator()),
		detailPaneStyle.Render(m.renderDetailView()),
	)
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, mainView, m.renderHelpView()))
}

func (m model) renderIndicator() string {
	v := m.indicator.View()
	if strings.TrimSpace(v) == "" && m.indicator.State() == indicator.Idle {
		return idleStyle.Render("(idle)")
	}
	return v
}

func (m model) renderDetailView() string {
	var b strings.Builder
	state := m.indicator.State()

	b.WriteString(detailTitleStyle.Render("Indicator"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("State"), stateStyle(state).Render(state.String())))
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Generation"), detailValStyle.Render(fmt.Sprintf("%d", m.indicator.Generation()))))
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Circles"), detailValStyle.Render(circleSummary(m.indicator.Circles()))))
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Graceful stops"), detailValStyle.Render(fmt.Sprintf("%d", m.gracefulStops))))

	last := m.lastEvent.String()
	if m.showCopied {
		last += " " + copiedStyle.Render("Copied!")
	}
	b.WriteString(fmt.Sprintf("\n%s\n", last))

	if m.err != nil {
		b.WriteString(fmt.Sprintf("\n%s: %s\n", detailAttrStyle.Render("Details"), errorStyle.Render(m.err.Error())))
	}
	return b.String()
}

// circleSummary counts live circles by phase, e.g. "3 (2 pulsing, 1 exiting)".
func circleSummary(circles []indicator.Circle) string {
	if len(circles) == 0 {
		return "0"
	}
	counts := map[indicator.Phase]int{}
	for _, c := range circles {
		counts[c.Phase]++
	}
	var parts []string
	for _, p := range []indicator.Phase{indicator.Pulsing, indicator.Exiting} {
		if counts[p] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[p], p))
		}
	}
	return fmt.Sprintf("%d (%s)", len(circles), strings.Join(parts, ", "))
}

func (m model) renderHelpView() string {
	return helpStyle.Render("\n↑/↓: navigate • " + m.help.View(m.keys))
}
