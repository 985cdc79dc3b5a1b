package utils

import (
	"os/exec"
	"strings"
)

// CommandExists checks if a command is available in the system PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// GetToolVersion runs a tool with its version flag and returns the first
// non-blank output line. Stderr is included because mdadm, like several md
// utilities, prints its version banner there.
func GetToolVersion(tool string, versionFlag string) (string, error) {
	output, err := exec.Command(tool, versionFlag).CombinedOutput()
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", nil
}
