// Package config loads Hyperion's configuration from a JSON file with a
// HYPERION_* environment overlay, and resolves OS-specific default paths.
package config
