package main

import (
	"os"

	"github.com/pranavpramod01/Hyperion/internal/cmd"
	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

func main() {
	// Respect HYPERION_LOG_LEVEL for CLI output; serve re-reads the full
	// logging config after the config file and flags are applied.
	level := os.Getenv("HYPERION_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	if err := cmd.NewRoot(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
