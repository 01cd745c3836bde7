package config

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default data directory based on the host OS.
// It prefers standard locations when available and falls back to a dotdir
// in the user's home directory.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./data"
	}

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "hyperion")
	}

	// Common Linux/Unix system dir
	if isDir("/var/lib") {
		return "/var/lib/hyperion"
	}

	// macOS: ~/Library/Application Support/Hyperion
	if isDir(filepath.Join(homeDir, "Library")) {
		return filepath.Join(homeDir, "Library", "Application Support", "Hyperion")
	}

	// Windows: %USERPROFILE%/AppData/Local/Hyperion
	if isDir(filepath.Join(homeDir, "AppData")) {
		return filepath.Join(homeDir, "AppData", "Local", "Hyperion")
	}

	// Fallback: ~/.hyperion
	return filepath.Join(homeDir, ".hyperion")
}

// EventLogPath returns the audit log location inside a data directory,
// resolving an empty dataDir through DefaultDataDir.
func EventLogPath(dataDir string) string {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	return filepath.Join(dataDir, "events.ndjson")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
