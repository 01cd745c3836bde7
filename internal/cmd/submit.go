package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pranavpramod01/Hyperion/internal/eventlog"
	"github.com/pranavpramod01/Hyperion/internal/metrics"
	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

// newSubmitCommand constructs `hyperion submit <kind> <payload>`.
func newSubmitCommand(logger logpkg.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <kind> <payload>",
		Short: "Submit a new job to a kind's queue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, payload := args[0], args[1]
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
			id := sched.Enqueue(kind, payload)
			metrics.JobsSubmitted.Inc()
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", id)
			logger.Info("submitted job", logpkg.Uint64("id", id), logpkg.Str("kind", kind))
			_ = l.Append(eventlog.Now("cli", "info", fmt.Sprintf("submitted job %d to %s", id, kind)))
			return nil
		},
	}
}
