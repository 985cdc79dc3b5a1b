package main

import (
	"os"

	"github.com/rs/zerolog"

	"mdstat-exporter/internal/collector"
	"mdstat-exporter/internal/config"
	"mdstat-exporter/internal/health"
	"mdstat-exporter/internal/metrics"
	"mdstat-exporter/internal/server"
	"mdstat-exporter/internal/system"
	"mdstat-exporter/internal/tables"
)

// Build-time variables (set via -ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	// Load configuration
	cfg := config.New()

	logger := newLogger(cfg.LogLevel)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_time", buildTime).
		Msg("starting mdstat exporter")

	// Perform one-time system detection
	sysInfo := system.New(cfg.MdstatPath, logger).Detect()

	// Initialize metrics
	m := metrics.New()

	// Table view provider for the HTTP surface
	provider := tables.NewProvider(cfg.MdstatPath, logger)

	// Create health service
	healthService := health.New(cfg.MdstatPath, sysInfo)

	// Start metrics collection in background
	c := collector.New(m, cfg.MdstatPath, cfg.CollectInterval, logger)
	go c.Start()

	// Start HTTP server
	srv := server.New(cfg, provider, healthService, sysInfo, version, logger)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server failed")
	}
}

// newLogger builds the root logger from the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
