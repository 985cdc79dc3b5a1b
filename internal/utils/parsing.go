package utils

import (
	"strconv"
	"strings"
)

// RaidStateValue converts an md array state token to a numeric status value
// (0=unknown, 1=ok, 2=degraded, 3=failed)
func RaidStateValue(state string) int {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "active", "clean":
		return 1
	case "degraded", "recovering", "resyncing":
		return 2
	case "inactive", "failed", "broken":
		return 3
	default:
		return 0
	}
}

// ParseMemberCounts splits a healthy-drives token like "2/2" (kernel order is
// total/working) into live and total member counts.
func ParseMemberCounts(s string) (healthy, total int, ok bool) {
	left, right, found := strings.Cut(strings.Trim(strings.TrimSpace(s), "[]"), "/")
	if !found {
		return 0, 0, false
	}
	total, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, false
	}
	healthy, err = strconv.Atoi(right)
	if err != nil {
		return 0, 0, false
	}
	return healthy, total, true
}

// ProgressPercent extracts the percent-complete value from a progress
// annotation such as "12.3% (123456/987654) finish=45.6min speed=9999K/sec".
func ProgressPercent(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "%"), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
