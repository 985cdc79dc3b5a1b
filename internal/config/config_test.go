package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigFromFlags(t *testing.T) {
	// Reset flag.CommandLine for testing
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	clearConfigEnv(t)

	// Mock command line arguments
	os.Args = []string{"cmd", "-port", "8080", "-metrics-path", "/test-metrics", "-collect-interval", "45s", "-log-level", "debug", "-mdstat-path", "/tmp/mdstat"}

	config := New()

	if config.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", config.Port)
	}

	if config.MetricsPath != "/test-metrics" {
		t.Errorf("Expected metrics path /test-metrics, got %s", config.MetricsPath)
	}

	if config.CollectInterval != 45*time.Second {
		t.Errorf("Expected collect interval 45s, got %v", config.CollectInterval)
	}

	if config.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", config.LogLevel)
	}

	if config.MdstatPath != "/tmp/mdstat" {
		t.Errorf("Expected mdstat path /tmp/mdstat, got %s", config.MdstatPath)
	}
}

func TestConfigFromEnvironmentFallback(t *testing.T) {
	// Reset flag.CommandLine for testing
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	clearConfigEnv(t)

	os.Setenv("PORT", "7070")
	os.Setenv("METRICS_PATH", "/env-metrics")
	os.Setenv("COLLECT_INTERVAL", "90s")
	os.Setenv("LOG_LEVEL", "warn")
	os.Setenv("MDSTAT_PATH", "/env/mdstat")

	// Mock command line arguments with no flags
	os.Args = []string{"cmd"}

	config := New()

	if config.Port != "7070" {
		t.Errorf("Expected port 7070 from env, got %s", config.Port)
	}

	if config.MetricsPath != "/env-metrics" {
		t.Errorf("Expected metrics path /env-metrics from env, got %s", config.MetricsPath)
	}

	if config.CollectInterval != 90*time.Second {
		t.Errorf("Expected collect interval 90s from env, got %v", config.CollectInterval)
	}

	if config.LogLevel != "warn" {
		t.Errorf("Expected log level warn from env, got %s", config.LogLevel)
	}

	if config.MdstatPath != "/env/mdstat" {
		t.Errorf("Expected mdstat path /env/mdstat from env, got %s", config.MdstatPath)
	}
}

func TestConfigFromFile(t *testing.T) {
	// Reset flag.CommandLine for testing
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"6060\"\nmetrics_path: /file-metrics\ncollect_interval: 2m\nlog_level: trace\nmdstat_path: /file/mdstat\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	os.Setenv("CONFIG_FILE", path)

	// Env should still win over the file for the fields it sets
	os.Setenv("LOG_LEVEL", "error")

	os.Args = []string{"cmd"}

	config := New()

	if config.Port != "6060" {
		t.Errorf("Expected port 6060 from file, got %s", config.Port)
	}

	if config.MetricsPath != "/file-metrics" {
		t.Errorf("Expected metrics path /file-metrics from file, got %s", config.MetricsPath)
	}

	if config.CollectInterval != 2*time.Minute {
		t.Errorf("Expected collect interval 2m from file, got %v", config.CollectInterval)
	}

	if config.LogLevel != "error" {
		t.Errorf("Expected log level error from env override, got %s", config.LogLevel)
	}

	if config.MdstatPath != "/file/mdstat" {
		t.Errorf("Expected mdstat path /file/mdstat from file, got %s", config.MdstatPath)
	}
}

func TestConfigDefaults(t *testing.T) {
	// Reset flag.CommandLine for testing
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	clearConfigEnv(t)

	// Mock command line arguments with no flags
	os.Args = []string{"cmd"}

	config := New()

	if config.Port != "9101" {
		t.Errorf("Expected default port 9101, got %s", config.Port)
	}

	if config.MetricsPath != "/metrics" {
		t.Errorf("Expected default metrics path /metrics, got %s", config.MetricsPath)
	}

	if config.CollectInterval != 30*time.Second {
		t.Errorf("Expected default collect interval 30s, got %v", config.CollectInterval)
	}

	if config.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", config.LogLevel)
	}

	if config.MdstatPath != "/proc/mdstat" {
		t.Errorf("Expected default mdstat path /proc/mdstat, got %s", config.MdstatPath)
	}
}

// clearConfigEnv unsets every config environment variable for the duration of
// the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "METRICS_PATH", "COLLECT_INTERVAL", "LOG_LEVEL", "MDSTAT_PATH", "CONFIG_FILE"} {
		os.Unsetenv(key)
		t.Cleanup(func() { os.Unsetenv(key) })
	}
}
