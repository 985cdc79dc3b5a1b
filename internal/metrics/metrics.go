package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	ArrayStatus       *prometheus.GaugeVec
	ArrayMembers      *prometheus.GaugeVec
	ArrayMembersTotal *prometheus.GaugeVec
	ArraySyncProgress *prometheus.GaugeVec
	MemberUp          *prometheus.GaugeVec
	ParseDiagnostics  prometheus.Gauge
	ExporterUp        prometheus.Gauge
}

// New creates and registers all metrics
func New() *Metrics {
	m := &Metrics{
		ArrayStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mdstat_array_status",
				Help: "md array status (0=unknown, 1=ok, 2=degraded, 3=failed)",
			},
			[]string{"device", "raid_level", "state"},
		),
		ArrayMembers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mdstat_array_members_healthy",
				Help: "Number of live members in the md array",
			},
			[]string{"device"},
		),
		ArrayMembersTotal: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mdstat_array_members_total",
				Help: "Number of member slots in the md array",
			},
			[]string{"device"},
		),
		ArraySyncProgress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mdstat_array_sync_progress_percent",
				Help: "Progress of an in-flight recovery/resync/check operation",
			},
			[]string{"device", "action"},
		),
		MemberUp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mdstat_member_up",
				Help: "Whether the member drive's slot is up in its array (1=up, 0=down)",
			},
			[]string{"device", "drive", "slot"},
		),
		ParseDiagnostics: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mdstat_parse_diagnostics",
				Help: "Number of recoverable structural problems in the last mdstat parse",
			},
		),
		ExporterUp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mdstat_exporter_up",
				Help: "Whether the mdstat exporter is up and running",
			},
		),
	}

	// Register all metrics
	prometheus.MustRegister(
		m.ArrayStatus,
		m.ArrayMembers,
		m.ArrayMembersTotal,
		m.ArraySyncProgress,
		m.MemberUp,
		m.ParseDiagnostics,
		m.ExporterUp,
	)

	return m
}

// Reset clears all per-array metrics
func (m *Metrics) Reset() {
	m.ArrayStatus.Reset()
	m.ArrayMembers.Reset()
	m.ArrayMembersTotal.Reset()
	m.ArraySyncProgress.Reset()
	m.MemberUp.Reset()
}
