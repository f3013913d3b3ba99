package indicator

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Config describes the indicator's geometry and timing. Distances are in
// terminal cells. Changing the config of a running indicator takes effect on
// the next Start.
type Config struct {
	// NumberOfCircles is how many dots are drawn. Zero makes Start a no-op.
	NumberOfCircles int
	// InternalSpacing is the gap between two adjacent dots.
	InternalSpacing float64
	// Radius of each dot. Dots with a non-positive radius are not drawn.
	Radius float64
	// Delay staggers the pulse of dot i by i*Delay.
	Delay time.Duration
	// Duration is one full grow-then-shrink pulse cycle.
	Duration time.Duration
	// FPS is the frame rate of the tick loop.
	FPS int
	// Background is blended with each dot's color according to its opacity.
	// Only hex colors are blended.
	Background lipgloss.Color
}

const (
	defaultFPS        = 30
	defaultBackground = lipgloss.Color("#000000")
)

// DefaultConfig returns the configuration applied by New when no WithConfig
// option is given.
func DefaultConfig() Config {
	return Config{
		NumberOfCircles: 5,
		InternalSpacing: 1,
		Radius:          1,
		Delay:           200 * time.Millisecond,
		Duration:        800 * time.Millisecond,
		FPS:             defaultFPS,
		Background:      defaultBackground,
	}
}

// normalized clamps negative values instead of rejecting them.
func (c Config) normalized() Config {
	if c.NumberOfCircles < 0 {
		c.NumberOfCircles = 0
	}
	if c.InternalSpacing < 0 {
		c.InternalSpacing = 0
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}
	return c
}

func (c Config) frameInterval() time.Duration {
	return time.Second / time.Duration(c.normalized().FPS)
}
