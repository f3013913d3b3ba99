package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katistix/dots/indicator"
)

// --- STYLES ---
var (
	// Katistix brand color
	katistixOrange = lipgloss.Color("#ff4f00")

	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(katistixOrange).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// State styles
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	stoppingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	idleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	copiedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)

	// Detail view styles
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(katistixOrange).
				Padding(0, 1)
	detailAttrStyle = lipgloss.NewStyle().Bold(true)
	detailValStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	detailPaneStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(katistixOrange)
	indicatorPaneStyle = lipgloss.NewStyle().
				Padding(1, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62"))
)

func stateStyle(s indicator.State) lipgloss.Style {
	switch s {
	case indicator.Running:
		return runningStyle
	case indicator.GracefulStopping:
		return stoppingStyle
	default:
		return idleStyle
	}
}
