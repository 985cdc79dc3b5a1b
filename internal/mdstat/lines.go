package mdstat

import (
	"os"
	"strings"
)

// blankSet are the characters a line may consist of and still be considered
// empty after trimming.
const blankSet = "\t\r\v "

// TrimChar strips every leading and trailing occurrence of c from s. Unlike
// strings.TrimSpace it trims exactly the caller-supplied character.
func TrimChar(s string, c byte) string {
	start := 0
	for start < len(s) && s[start] == c {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == c {
		end--
	}
	return s[start:end]
}

// NormalizeLines splits content on newlines, trims c from both ends of each
// line, and drops lines that are empty or contain only whitespace characters.
func NormalizeLines(content string, c byte) []string {
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		line := TrimChar(raw, c)
		if strings.Trim(line, blankSet) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ReadLines reads the report at path and returns its normalized lines. An
// absent or unreadable path yields nil: no md subsystem means nothing to
// report, not an error.
func ReadLines(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return NormalizeLines(string(content), ' ')
}
