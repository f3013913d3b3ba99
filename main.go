// main.go
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := defaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error: Could not load '%s'. %v\n", configPath, err)
		os.Exit(1)
	}

	logger, closer, err := configureLogging(cfg)
	if err != nil {
		fmt.Printf("Error: Could not set up logging. %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.Info().Str("config", configPath).Int("presets", len(cfg.Presets)).Msg("starting")

	p := tea.NewProgram(initialModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		closer.Close()
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
