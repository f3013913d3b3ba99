package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// configureLogging builds the base logger. The TUI owns the terminal, so logs
// go to cfg.LogFile as JSON lines, or nowhere when it is unset. The returned
// closer releases the file.
func configureLogging(cfg DotsConfig) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	} else if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogFile == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().
		Timestamp().
		Str("service", "dots").
		Logger()
	return logger, f, nil
}
