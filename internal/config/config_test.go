package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level: %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("default log format: %q", cfg.LogFormat)
	}
	if cfg.DefaultKind != "default" {
		t.Fatalf("default kind: %q", cfg.DefaultKind)
	}
	if cfg.ReclaimIntervalMs != 1000 {
		t.Fatalf("default reclaim interval: %d", cfg.ReclaimIntervalMs)
	}
	if cfg.HistoryLimit != 0 {
		t.Fatalf("history should default to unbounded: %d", cfg.HistoryLimit)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "hyperion.json")
	data := []byte(`{"logLevel":"debug","dataDir":"/tmp/hyp","defaultKind":"email","reclaimIntervalMs":250,"historyLimit":64,"reclaimRecordsFailure":true,"strictDurability":true}`)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.DataDir != "/tmp/hyp" || cfg.DefaultKind != "email" {
		t.Fatalf("loaded: %+v", cfg)
	}
	if cfg.ReclaimIntervalMs != 250 || cfg.HistoryLimit != 64 {
		t.Fatalf("loaded ints: %+v", cfg)
	}
	if !cfg.ReclaimRecordsFailure || !cfg.StrictDurability {
		t.Fatalf("loaded bools: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.LogFormat != "text" {
		t.Fatalf("partial file should keep defaults: %+v", cfg)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "does_not_exist.json"))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("malformed config should error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("HYPERION_LOG_LEVEL", "debug")
	t.Setenv("HYPERION_DATA_DIR", "/srv/hyperion")
	t.Setenv("HYPERION_RECLAIM_INTERVAL_MS", "500")
	t.Setenv("HYPERION_RECLAIM_RECORDS_FAILURE", "true")
	t.Setenv("HYPERION_METRICS_ADDR", ":9100")
	FromEnv(&cfg)
	if cfg.LogLevel != "debug" {
		t.Fatalf("env log level: %+v", cfg)
	}
	if cfg.DataDir != "/srv/hyperion" {
		t.Fatalf("env data dir: %+v", cfg)
	}
	if cfg.ReclaimIntervalMs != 500 {
		t.Fatalf("env reclaim interval: %+v", cfg)
	}
	if !cfg.ReclaimRecordsFailure {
		t.Fatalf("env reclaim flag: %+v", cfg)
	}
	if cfg.MetricsAddr != ":9100" {
		t.Fatalf("env metrics addr: %+v", cfg)
	}
}

func TestFromEnvIgnoresInvalidNumbers(t *testing.T) {
	cfg := Default()
	t.Setenv("HYPERION_RECLAIM_INTERVAL_MS", "soon")
	FromEnv(&cfg)
	if cfg.ReclaimIntervalMs != 1000 {
		t.Fatalf("invalid number should keep default: %+v", cfg)
	}
}
