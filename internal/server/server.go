// Package server exposes the exporter's HTTP surface: Prometheus metrics,
// health endpoints, and the three md_* table views as JSON.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"mdstat-exporter/internal/config"
	"mdstat-exporter/internal/health"
	"mdstat-exporter/internal/system"
	"mdstat-exporter/internal/tables"
	"mdstat-exporter/pkg/types"
)

// Server wires the HTTP handlers together.
type Server struct {
	cfg     *config.Config
	tables  *tables.Provider
	health  *health.Service
	sysInfo *system.SystemInfo
	version string
	log     zerolog.Logger
}

// New creates a new server
func New(cfg *config.Config, provider *tables.Provider, healthService *health.Service, sysInfo *system.SystemInfo, version string, log zerolog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		tables:  provider,
		health:  healthService,
		sysInfo: sysInfo,
		version: version,
		log:     log.With().Str("component", "server").Logger(),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Handle(s.cfg.MetricsPath, promhttp.Handler())
	r.Get("/health", s.handleHealth)
	r.Get("/health/json", s.handleHealthJSON)
	r.Route("/tables", func(r chi.Router) {
		r.Get("/md_devices", s.handleTable(s.tables.Devices))
		r.Get("/md_drives", s.handleTable(s.tables.Drives))
		r.Get("/md_personalities", s.handleTable(s.tables.Personalities))
	})

	return r
}

// ListenAndServe starts the HTTP server on the configured port.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("port", s.cfg.Port).Msg("listening")
	return http.ListenAndServe(":"+s.cfg.Port, s.Router())
}

// handleTable serves one table view. The generator performs a fresh parse per
// request and always yields a row set, so this handler cannot fail.
func (s *Server) handleTable(gen func() []types.Row) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows := gen()
		if rows == nil {
			rows = []types.Row{}
		}
		writeJSON(w, map[string]any{"rows": rows})
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `
	<html>
	<head><title>mdstat Exporter</title></head>
	<body>
	<h1>mdstat Exporter</h1>
	<p><a href="%s">Metrics</a></p>
	<p><a href="/health">Health Check</a></p>
	<p><a href="/health/json">Health JSON</a></p>
	<p><a href="/tables/md_devices">md_devices</a></p>
	<p><a href="/tables/md_drives">md_drives</a></p>
	<p><a href="/tables/md_personalities">md_personalities</a></p>
	<p>Version: %s</p>
	<p>Collect Interval: %s</p>
	<h3>System Information</h3>
	<p>Platform: %s</p>
	<p>mdstat Present: %v</p>
	<p>mdadm Available: %v</p>
	</body>
	</html>
	`, s.cfg.MetricsPath, s.version, s.cfg.CollectInterval, s.sysInfo.Platform, s.sysInfo.MdstatPresent, s.sysInfo.HasMdadm)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","service":"mdstat-exporter"}`)
}

func (s *Server) handleHealthJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.health.GetHealthData())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
