package utils

import "testing"

func TestRaidStateValue(t *testing.T) {
	tests := []struct {
		state    string
		expected int
	}{
		{"active", 1},
		{"clean", 1},
		{"  Active  ", 1},
		{"degraded", 2},
		{"recovering", 2},
		{"inactive", 3},
		{"failed", 3},
		{"weird", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := RaidStateValue(tt.state); got != tt.expected {
			t.Errorf("RaidStateValue(%q) = %d, want %d", tt.state, got, tt.expected)
		}
	}
}

func TestParseMemberCounts(t *testing.T) {
	healthy, total, ok := ParseMemberCounts("2/2")
	if !ok || healthy != 2 || total != 2 {
		t.Errorf("ParseMemberCounts(2/2) = (%d, %d, %v), want (2, 2, true)", healthy, total, ok)
	}

	healthy, total, ok = ParseMemberCounts("[5/4]")
	if !ok || healthy != 4 || total != 5 {
		t.Errorf("ParseMemberCounts([5/4]) = (%d, %d, %v), want (4, 5, true)", healthy, total, ok)
	}

	if _, _, ok := ParseMemberCounts("nope"); ok {
		t.Error("Expected ParseMemberCounts to reject a token without a slash")
	}

	if _, _, ok := ParseMemberCounts("a/b"); ok {
		t.Error("Expected ParseMemberCounts to reject non-numeric counts")
	}
}

func TestProgressPercent(t *testing.T) {
	value, ok := ProgressPercent("12.3% (123456/987654) finish=45.6min speed=9999K/sec")
	if !ok || value != 12.3 {
		t.Errorf("ProgressPercent = (%f, %v), want (12.3, true)", value, ok)
	}

	if _, ok := ProgressPercent(""); ok {
		t.Error("Expected ProgressPercent to reject an empty string")
	}

	if _, ok := ProgressPercent("nonsense first token"); ok {
		t.Error("Expected ProgressPercent to reject a non-numeric token")
	}
}
