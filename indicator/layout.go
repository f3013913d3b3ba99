package indicator

import "github.com/charmbracelet/lipgloss"

// CircleSpec is the immutable description of one dot.
type CircleSpec struct {
	Index int
	// CenterOffset is the distance of the dot's center from the left edge.
	CenterOffset float64
	Color        lipgloss.Color
}

// CenterOffset returns the center of dot index for the given geometry.
func CenterOffset(index int, radius, spacing float64) float64 {
	return float64(index)*(2*radius+spacing) + radius
}

// Layout places count dots left to right. colors is consulted once per dot,
// in index order; a nil resolver or an absent color yields DefaultColor.
func Layout(count int, radius, spacing float64, colors ColorResolver) []CircleSpec {
	if count <= 0 {
		return []CircleSpec{}
	}
	specs := make([]CircleSpec, count)
	for i := range specs {
		specs[i] = CircleSpec{
			Index:        i,
			CenterOffset: CenterOffset(i, radius, spacing),
			Color:        resolveColor(colors, i),
		}
	}
	return specs
}

// Width is the number of cells occupied by count dots.
func Width(count int, radius, spacing float64) float64 {
	if count <= 0 {
		return 0
	}
	return float64(count)*2*radius + float64(count-1)*spacing
}
