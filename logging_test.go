package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigureLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dots.log")
	logger, closer, err := configureLogging(DotsConfig{LogFile: path, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	logger.Debug().Str("preset", "classic").Msg("start requested")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{`"level":"debug"`, `"service":"dots"`, `"preset":"classic"`, `"message":"start requested"`} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected log line to contain %s, got %s", want, line)
		}
	}
}

func TestConfigureLoggingWithoutFile(t *testing.T) {
	_, closer, err := configureLogging(DotsConfig{})
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Expected a no-op closer, got '%v'", err)
	}
}

func TestConfigureLoggingBadLevel(t *testing.T) {
	if _, _, err := configureLogging(DotsConfig{LogLevel: "loud"}); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
