package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"mdstat-exporter/internal/mdstat"
)

// Config holds the application configuration
type Config struct {
	Port            string
	MetricsPath     string
	CollectInterval time.Duration
	LogLevel        string
	MdstatPath      string
}

// fileConfig mirrors Config for the optional YAML config file. Every field is
// optional; unset fields keep their current value.
type fileConfig struct {
	Port            string `yaml:"port"`
	MetricsPath     string `yaml:"metrics_path"`
	CollectInterval string `yaml:"collect_interval"`
	LogLevel        string `yaml:"log_level"`
	MdstatPath      string `yaml:"mdstat_path"`
}

// New builds the configuration. Precedence, lowest to highest: built-in
// defaults, YAML file named by CONFIG_FILE, environment variables, flags.
func New() *Config {
	cfg := &Config{
		Port:            "9101",
		MetricsPath:     "/metrics",
		CollectInterval: 30 * time.Second,
		LogLevel:        "info",
		MdstatPath:      mdstat.Path,
	}

	cfg.applyFile(os.Getenv("CONFIG_FILE"))
	cfg.applyEnv()
	cfg.applyFlags()

	return cfg
}

// applyFile overlays values from a YAML config file. A missing or malformed
// file is ignored: the file layer is optional.
func (c *Config) applyFile(path string) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.MetricsPath != "" {
		c.MetricsPath = fc.MetricsPath
	}
	if fc.CollectInterval != "" {
		if d, err := time.ParseDuration(fc.CollectInterval); err == nil {
			c.CollectInterval = d
		}
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.MdstatPath != "" {
		c.MdstatPath = fc.MdstatPath
	}
}

// applyEnv overlays values from environment variables.
func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.MetricsPath = getEnv("METRICS_PATH", c.MetricsPath)
	c.CollectInterval = getEnvDuration("COLLECT_INTERVAL", c.CollectInterval)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.MdstatPath = getEnv("MDSTAT_PATH", c.MdstatPath)
}

// applyFlags overlays values from command-line flags. Flag defaults are the
// current values, so a flag left unset keeps the env/file layer's result.
func (c *Config) applyFlags() {
	port := flag.String("port", c.Port, "HTTP listen port")
	metricsPath := flag.String("metrics-path", c.MetricsPath, "Prometheus metrics path")
	collectInterval := flag.Duration("collect-interval", c.CollectInterval, "metric collection interval")
	logLevel := flag.String("log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	mdstatPath := flag.String("mdstat-path", c.MdstatPath, "path to the mdstat report")
	flag.Parse()

	c.Port = *port
	c.MetricsPath = *metricsPath
	c.CollectInterval = *collectInterval
	c.LogLevel = *logLevel
	c.MdstatPath = *mdstatPath
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
