package utils

import (
	"testing"
)

func TestCommandExists(t *testing.T) {
	// Test with a command that should exist on most systems
	if !CommandExists("ls") {
		t.Error("Expected 'ls' command to exist")
	}

	// Test with a command that shouldn't exist
	if CommandExists("definitely_does_not_exist_command_12345") {
		t.Error("Expected non-existent command to return false")
	}
}

func TestGetToolVersion(t *testing.T) {
	version, err := GetToolVersion("echo", "v1.2.3")
	if err != nil {
		t.Fatalf("Expected echo to run, got error: %v", err)
	}
	if version != "v1.2.3" {
		t.Errorf("Expected first output line v1.2.3, got %q", version)
	}
}

func TestGetToolVersionMissingTool(t *testing.T) {
	if _, err := GetToolVersion("definitely_does_not_exist_command_12345", "--version"); err == nil {
		t.Error("Expected an error for a missing tool")
	}
}
