package indicator

import "github.com/charmbracelet/lipgloss"

// DefaultColor is used for any dot whose color is not supplied.
const DefaultColor = lipgloss.Color("#7D56F4")

// ColorResolver supplies the color of dot index. Returning false means the
// resolver has no opinion and DefaultColor is used.
type ColorResolver interface {
	ColorForCircle(index int) (lipgloss.Color, bool)
}

// ColorResolverFunc adapts a function to a ColorResolver.
type ColorResolverFunc func(index int) (lipgloss.Color, bool)

// ColorForCircle implements ColorResolver.
func (f ColorResolverFunc) ColorForCircle(index int) (lipgloss.Color, bool) {
	if f == nil {
		return "", false
	}
	return f(index)
}

// Palette cycles through a fixed list of colors. An empty palette resolves
// nothing.
type Palette []lipgloss.Color

// ColorForCircle implements ColorResolver.
func (p Palette) ColorForCircle(index int) (lipgloss.Color, bool) {
	if len(p) == 0 || index < 0 {
		return "", false
	}
	c := p[index%len(p)]
	return c, c != ""
}

func resolveColor(r ColorResolver, index int) lipgloss.Color {
	if r == nil {
		return DefaultColor
	}
	if c, ok := r.ColorForCircle(index); ok && c != "" {
		return c
	}
	return DefaultColor
}
