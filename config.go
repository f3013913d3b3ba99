package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katistix/dots/indicator"
)

// --- CONFIGURATION ---

const defaultConfigPath = "dots.config.yaml"

// PresetConfig defines one named indicator look in the config file.
type PresetConfig struct {
	Name     string        `yaml:"name"`
	Circles  int           `yaml:"circles"`
	Spacing  float64       `yaml:"spacing"`
	Radius   float64       `yaml:"radius"`
	Delay    time.Duration `yaml:"delay"`
	Duration time.Duration `yaml:"duration"`
	Colors   []string      `yaml:"colors,omitempty"`
}

// UnmarshalYAML fills radius and duration from the indicator defaults when the
// keys are absent. Explicit zeros are kept.
func (p *PresetConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain PresetConfig
	def := indicator.DefaultConfig()
	raw := plain{Radius: def.Radius, Duration: def.Duration}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*p = PresetConfig(raw)
	return nil
}

// DotsConfig defines the top-level structure of the config file.
type DotsConfig struct {
	LogFile    string         `yaml:"log_file,omitempty"`
	LogLevel   string         `yaml:"log_level,omitempty"`
	FPS        int            `yaml:"fps,omitempty"`
	Background string         `yaml:"background,omitempty"`
	Presets    []PresetConfig `yaml:"presets"`
}

func defaultDotsConfig() DotsConfig {
	return DotsConfig{
		Presets: []PresetConfig{
			{Name: "classic", Circles: 5, Spacing: 1, Radius: 1, Delay: 200 * time.Millisecond, Duration: 800 * time.Millisecond},
			{Name: "katistix", Circles: 4, Spacing: 2, Radius: 1, Delay: 150 * time.Millisecond, Duration: time.Second, Colors: []string{"#ff4f00", "#ff7a33", "#ffa366", "#ffcc99"}},
			{Name: "lockstep", Circles: 3, Spacing: 1, Radius: 1, Delay: 0, Duration: 600 * time.Millisecond, Colors: []string{"46"}},
			{Name: "wide", Circles: 8, Spacing: 0, Radius: 0.5, Delay: 100 * time.Millisecond, Duration: 1200 * time.Millisecond},
		},
	}
}

// --- HELPER FUNCTIONS ---

// loadConfig reads the config file at path. A missing file yields the
// built-in presets. JSON files are accepted too.
func loadConfig(path string) (DotsConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := defaultDotsConfig()
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return DotsConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (DotsConfig, error) {
	var cfg DotsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DotsConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = defaultDotsConfig().Presets
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return DotsConfig{}, err
	}
	return cfg, nil
}

func (c *DotsConfig) applyDefaults() {
	def := indicator.DefaultConfig()
	if c.FPS == 0 {
		c.FPS = def.FPS
	}
	if c.Background == "" {
		c.Background = string(def.Background)
	}
}

func (c DotsConfig) validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("preset %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("preset %q: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if err := p.validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

var errNegative = errors.New("must not be negative")

func (p PresetConfig) validate() error {
	switch {
	case p.Circles < 0:
		return fmt.Errorf("circles %w", errNegative)
	case p.Spacing < 0:
		return fmt.Errorf("spacing %w", errNegative)
	case p.Radius < 0:
		return fmt.Errorf("radius %w", errNegative)
	case p.Delay < 0:
		return fmt.Errorf("delay %w", errNegative)
	case p.Duration < 0:
		return fmt.Errorf("duration %w", errNegative)
	}
	return nil
}

// indicatorConfig converts a preset into the indicator's configuration.
func (p PresetConfig) indicatorConfig(c DotsConfig) indicator.Config {
	return indicator.Config{
		NumberOfCircles: p.Circles,
		InternalSpacing: p.Spacing,
		Radius:          p.Radius,
		Delay:           p.Delay,
		Duration:        p.Duration,
		FPS:             c.FPS,
		Background:      lipgloss.Color(c.Background),
	}
}

// palette returns the preset's colors, or nil to use the indicator default.
func (p PresetConfig) palette() indicator.ColorResolver {
	if len(p.Colors) == 0 {
		return nil
	}
	pal := make(indicator.Palette, len(p.Colors))
	for i, c := range p.Colors {
		pal[i] = lipgloss.Color(c)
	}
	return pal
}

// presetYAML renders a preset the way it would appear in the config file.
func presetYAML(p PresetConfig) (string, error) {
	out, err := yaml.Marshal([]PresetConfig{p})
	if err != nil {
		return "", fmt.Errorf("encode preset %q: %w", p.Name, err)
	}
	return string(out), nil
}
