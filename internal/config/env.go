package config

import (
	"os"
	"strconv"
)

// FromEnv overlays HYPERION_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("HYPERION_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HYPERION_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("HYPERION_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HYPERION_DEFAULT_KIND"); v != "" {
		cfg.DefaultKind = v
	}
	if v := os.Getenv("HYPERION_RECLAIM_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ReclaimIntervalMs = n
		}
	}
	if v := os.Getenv("HYPERION_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("HYPERION_RECLAIM_RECORDS_FAILURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ReclaimRecordsFailure = b
		}
	}
	if v := os.Getenv("HYPERION_STRICT_DURABILITY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StrictDurability = b
		}
	}
	if v := os.Getenv("HYPERION_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
}
