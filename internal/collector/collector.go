package collector

import (
	"time"

	"github.com/rs/zerolog"

	"mdstat-exporter/internal/mdstat"
	"mdstat-exporter/internal/metrics"
	"mdstat-exporter/internal/tables"
	"mdstat-exporter/internal/utils"
)

// Collector handles metric collection. Every collection cycle re-reads and
// re-parses the mdstat report; no parse state survives between cycles.
type Collector struct {
	metrics  *metrics.Metrics
	path     string
	interval time.Duration
	log      zerolog.Logger
}

// New creates a new collector
func New(m *metrics.Metrics, path string, interval time.Duration, log zerolog.Logger) *Collector {
	return &Collector{
		metrics:  m,
		path:     path,
		interval: interval,
		log:      log.With().Str("component", "collector").Logger(),
	}
}

// Start begins the metric collection loop
func (c *Collector) Start() {
	// Set exporter as up
	c.metrics.ExporterUp.Set(1)

	// Collect metrics immediately on startup
	c.Collect()

	// Start periodic collection
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for range ticker.C {
		c.Collect()
	}
}

// Collect performs one collection cycle.
func (c *Collector) Collect() {
	report, diags := mdstat.ParseFile(c.path)

	c.metrics.Reset()
	c.metrics.ParseDiagnostics.Set(float64(len(diags)))
	for _, d := range diags {
		c.log.Warn().Int("line", d.Line).Msg(d.Message)
	}

	for _, dev := range report.Devices {
		c.metrics.ArrayStatus.
			WithLabelValues(dev.Name, dev.RaidLevel, dev.Status).
			Set(float64(utils.RaidStateValue(dev.Status)))

		if healthy, total, ok := utils.ParseMemberCounts(dev.HealthyCount); ok {
			c.metrics.ArrayMembers.WithLabelValues(dev.Name).Set(float64(healthy))
			c.metrics.ArrayMembersTotal.WithLabelValues(dev.Name).Set(float64(total))
		}

		c.recordSyncProgress(dev.Name, "recovery", dev.Recovery)
		c.recordSyncProgress(dev.Name, "resync", dev.Resync)
		c.recordSyncProgress(dev.Name, "check", dev.CheckArray)
	}

	driveRows, driveDiags := tables.DriveRows(report)
	for _, d := range driveDiags {
		c.log.Warn().Int("line", d.Line).Msg(d.Message)
	}
	for _, row := range driveRows {
		status, ok := row["status"]
		if !ok {
			continue
		}
		up := 0.0
		if status == "1" {
			up = 1.0
		}
		c.metrics.MemberUp.
			WithLabelValues(row["md_device_name"], row["drive_name"], row["slot"]).
			Set(up)
	}

	c.log.Debug().
		Int("arrays", len(report.Devices)).
		Int("members", len(driveRows)).
		Int("diagnostics", len(diags)).
		Msg("updated mdstat metrics")
}

// recordSyncProgress records the percent-complete of an in-flight
// recovery/resync/check annotation, if one is present.
func (c *Collector) recordSyncProgress(device, action, raw string) {
	if raw == "" {
		return
	}
	if pct, ok := utils.ProgressPercent(raw); ok {
		c.metrics.ArraySyncProgress.WithLabelValues(device, action).Set(pct)
	}
}
