package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pranavpramod01/Hyperion/internal/eventlog"
	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

// newStatusCommand constructs `hyperion status`: queue depth and leased
// count of an engine instance, recorded to the audit log.
func newStatusCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show scheduler status (queue depth, leased count)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			l, err := openLog(cfg)
			if err != nil {
				return err
			}
			defer l.Close()

			sched := newScheduler(cfg)
			depth, leased := sched.Depth(), sched.LeasedCount()
			fmt.Fprintf(cmd.OutOrStdout(), "depth=%d leased=%d\n", depth, leased)
			logger.Info("status", logpkg.Int("depth", depth), logpkg.Int("leased", leased))
			_ = l.Append(eventlog.Now("cli", "info", fmt.Sprintf("status depth=%d leased=%d", depth, leased)))
			return nil
		},
	}
}
