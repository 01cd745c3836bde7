package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

// newLogsCommand constructs `hyperion logs`: replay the audit log file and
// print the most recent events.
func newLogsCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent events from the audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tail, _ := cmd.Flags().GetInt("tail")
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			l, err := openLog(cfg)
			if err != nil {
				return err
			}
			defer l.Close()

			n, err := l.LoadFromDisk()
			if err != nil {
				return err
			}
			logger.Debug("replayed audit log", logpkg.Int("events", n), logpkg.Str("path", l.Path()))

			for _, ev := range l.Tail(tail) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d [%s] %s: %s\n", ev.TsMs, ev.Level, ev.Source, ev.Message)
			}
			return nil
		},
	}
	cmd.Flags().Int("tail", 20, "Number of trailing events to print")
	return cmd
}
