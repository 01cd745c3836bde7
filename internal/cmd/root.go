// Package cmd contains Hyperion's Cobra command surface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pranavpramod01/Hyperion/internal/config"
	"github.com/pranavpramod01/Hyperion/internal/eventlog"
	"github.com/pranavpramod01/Hyperion/internal/scheduler"
	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

// NewRoot constructs the root command and registers all subcommands.
func NewRoot(logger logpkg.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "hyperion",
		Short: "Hyperion task lifecycle engine",
		Long: `Hyperion is a single-process task lifecycle engine: a lease-based job
scheduler with retry/reclaim semantics paired with a durable append-only
audit log.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "Config file path (default $HYPERION_CONFIG, then config.json)")
	root.PersistentFlags().String("data-dir", "", "Data directory (default OS-specific application data directory)")

	root.AddCommand(
		newStatusCommand(logger),
		newLogsCommand(logger),
		newSubmitCommand(logger),
		newServeCommand(logger),
	)
	return root
}

// loadConfig resolves configuration in flag > env > file > default order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)
	if dd, _ := cmd.Flags().GetString("data-dir"); dd != "" {
		cfg.DataDir = dd
	}
	return cfg, nil
}

// openLog opens the audit log under the configured data directory.
func openLog(cfg config.Config) (*eventlog.Log, error) {
	l, err := eventlog.Open(config.EventLogPath(cfg.DataDir))
	if err != nil {
		return nil, err
	}
	if cfg.StrictDurability {
		l.WithStrictDurability(true)
	}
	return l, nil
}

// newScheduler builds a scheduler from config.
func newScheduler(cfg config.Config) *scheduler.Scheduler {
	return scheduler.NewWithOptions(scheduler.Options{
		DefaultKind:           cfg.DefaultKind,
		HistoryLimit:          cfg.HistoryLimit,
		ReclaimRecordsFailure: cfg.ReclaimRecordsFailure,
	})
}
