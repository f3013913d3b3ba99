package indicator

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Glyphs from smallest to largest. A circle's scale picks one.
var glyphs = [...]string{" ", "·", "•", "●"}

func glyphForScale(scale float64) string {
	switch {
	case scale < 0.05:
		return glyphs[0]
	case scale < 0.35:
		return glyphs[1]
	case scale < 0.7:
		return glyphs[2]
	default:
		return glyphs[3]
	}
}

// View renders the circles as of the last frame. An Idle indicator renders
// as blank cells of the width it last occupied.
func (m *Model) View() string {
	cfg := m.active
	if cfg.Radius <= 0 || cfg.NumberOfCircles == 0 {
		return ""
	}
	width := int(math.Ceil(Width(cfg.NumberOfCircles, cfg.Radius, cfg.InternalSpacing)))
	if width <= 0 {
		return ""
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	for _, h := range m.handles {
		if h.animator.Phase() == Removed {
			continue
		}
		v := h.animator.VisualAt(m.now)
		g := glyphForScale(v.Scale)
		if g == glyphs[0] {
			continue
		}
		col := int(math.Floor(h.spec.CenterOffset))
		if col >= width {
			col = width - 1
		}
		style := lipgloss.NewStyle().Foreground(fade(h.spec.Color, cfg.Background, v.Opacity))
		cells[col] = style.Render(g)
	}
	return strings.Join(cells, "")
}

// fade blends c toward bg by 1-opacity. Colors that are not hex, such as
// ANSI indexes, are returned unchanged.
func fade(c, bg lipgloss.Color, opacity float64) lipgloss.Color {
	if bg == "" {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	back, err := colorful.Hex(string(bg))
	if err != nil {
		return c
	}
	return lipgloss.Color(back.BlendLab(fg, clamp01(opacity)).Clamped().Hex())
}
