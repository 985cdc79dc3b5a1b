package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger("debug")
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %s", logger.GetLevel())
	}
}

func TestNewLoggerInvalidLevelFallsBack(t *testing.T) {
	logger := newLogger("not-a-level")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected fallback to info level, got %s", logger.GetLevel())
	}
}
