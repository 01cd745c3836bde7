package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "HYPERION_CONFIG"

// DefaultPath is used when neither a flag nor HYPERION_CONFIG is set.
const DefaultPath = "config.json"

// Config is the top-level configuration loaded from file/env.
type Config struct {
	LogLevel              string `json:"logLevel"`
	LogFormat             string `json:"logFormat"`
	DataDir               string `json:"dataDir"`
	DefaultKind           string `json:"defaultKind"`
	ReclaimIntervalMs     int    `json:"reclaimIntervalMs"`
	HistoryLimit          int    `json:"historyLimit"`
	ReclaimRecordsFailure bool   `json:"reclaimRecordsFailure"`
	StrictDurability      bool   `json:"strictDurability"`
	MetricsAddr           string `json:"metricsAddr"`
}

// Default returns built-in defaults. DataDir is left empty; callers
// resolve it through DefaultDataDir when unset.
func Default() Config {
	return Config{
		LogLevel:          "info",
		LogFormat:         "text",
		DefaultKind:       "default",
		ReclaimIntervalMs: 1000,
	}
}

// Load reads configuration from a JSON file. An empty path falls back to
// HYPERION_CONFIG, then DefaultPath. A missing file is not an error; it
// yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
