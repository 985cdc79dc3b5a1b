package collector

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"mdstat-exporter/internal/metrics"
)

const fixture = "Personalities : [raid1]\n" +
	"md0 : active raid1 sda1[0] sdb1[1]\n" +
	"      2048000 blocks [2/2] [UU]\n" +
	"unused devices: <none>\n"

const degradedFixture = "Personalities : [raid1]\n" +
	"md0 : active raid1 sda1[0]\n" +
	"      2048000 blocks [2/1] [U_]\n" +
	"unused devices: <none>\n"

func TestCollect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdstat")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	m := metrics.New()
	c := New(m, path, time.Minute, zerolog.Nop())

	c.Collect()

	if got := testutil.ToFloat64(m.ArrayStatus.WithLabelValues("md0", "raid1", "active")); got != 1 {
		t.Errorf("Expected array status 1, got %f", got)
	}
	if got := testutil.ToFloat64(m.ArrayMembers.WithLabelValues("md0")); got != 2 {
		t.Errorf("Expected 2 healthy members, got %f", got)
	}
	if got := testutil.ToFloat64(m.ArrayMembersTotal.WithLabelValues("md0")); got != 2 {
		t.Errorf("Expected 2 total members, got %f", got)
	}
	if got := testutil.ToFloat64(m.MemberUp.WithLabelValues("md0", "sda1[0]", "0")); got != 1 {
		t.Errorf("Expected member sda1[0] up, got %f", got)
	}
	if got := testutil.ToFloat64(m.ParseDiagnostics); got != 0 {
		t.Errorf("Expected 0 diagnostics, got %f", got)
	}

	// A changed source must be fully re-read on the next cycle.
	if err := os.WriteFile(path, []byte(degradedFixture), 0o644); err != nil {
		t.Fatalf("Failed to rewrite fixture: %v", err)
	}

	c.Collect()

	if got := testutil.ToFloat64(m.ArrayMembers.WithLabelValues("md0")); got != 1 {
		t.Errorf("Expected 1 healthy member after rewrite, got %f", got)
	}
	// One member token against a two-slot mask draws a diagnostic.
	if got := testutil.ToFloat64(m.ParseDiagnostics); got != 1 {
		t.Errorf("Expected 1 diagnostic after rewrite, got %f", got)
	}
}
