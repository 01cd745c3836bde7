package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pranavpramod01/Hyperion/internal/config"
	"github.com/pranavpramod01/Hyperion/internal/eventlog"
	"github.com/pranavpramod01/Hyperion/internal/metrics"
	"github.com/pranavpramod01/Hyperion/internal/runtime"
	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

// newServeCommand constructs `hyperion serve`: the single-owner host loop
// that schedules lease reclaim and exposes metrics/health.
func newServeCommand(logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Hyperion engine loop",
		Long: `Serve owns one scheduler and one event log on a single goroutine,
drives the cooperative lease-expiry sweep on a fixed interval, and exposes
prometheus metrics and a health endpoint when --metrics is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if v, _ := cmd.Flags().GetString("metrics"); v != "" {
				cfg.MetricsAddr = v
			}
			if v, _ := cmd.Flags().GetInt("reclaim-interval-ms"); v > 0 {
				cfg.ReclaimIntervalMs = v
			}
			if v, _ := cmd.Flags().GetString("log-level"); v != "" {
				cfg.LogLevel = v
			}
			if v, _ := cmd.Flags().GetString("log-format"); v != "" {
				cfg.LogFormat = v
			}

			procLogger, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				// Fall back to the bootstrap logger rather than dying on a
				// bad level string.
				logger.Warn("invalid log config", logpkg.Err(err))
				procLogger = logger
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, procLogger)
		},
	}
	cmd.Flags().String("metrics", os.Getenv("HYPERION_METRICS_ADDR"), "Metrics/health listen address (empty disables)")
	cmd.Flags().Int("reclaim-interval-ms", 0, "Lease reclaim sweep interval in ms (default from config, 1000)")
	cmd.Flags().String("log-level", os.Getenv("HYPERION_LOG_LEVEL"), "Log level: debug|info|warn|error")
	cmd.Flags().String("log-format", os.Getenv("HYPERION_LOG_FORMAT"), "Log format: text|json")
	return cmd
}

// runServe blocks until ctx is cancelled. The calling goroutine is the
// exclusive owner of the scheduler and event log; the metrics server only
// touches wrapper-local health state.
func runServe(ctx context.Context, cfg config.Config, logger logpkg.Logger) error {
	instanceID := uuid.NewString()

	l, err := openLog(cfg)
	if err != nil {
		return err
	}
	sched := newScheduler(cfg)

	schedMod := runtime.NewSchedulerModule(sched)
	logMod := runtime.NewEventLogModule(l)
	rt := runtime.New(logger.WithComponent("runtime"))
	rt.Register(schedMod)
	rt.Register(logMod)

	if err := rt.StartAll(); err != nil {
		_ = l.Close()
		return err
	}
	// Stops modules in reverse order and closes the log.
	defer func() { _ = rt.StopAll() }()

	interval := time.Duration(cfg.ReclaimIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}

	logger.Info("hyperion serving",
		logpkg.Str("instance", instanceID),
		logpkg.Str("events", l.Path()),
		logpkg.Duration("reclaim_interval", interval),
		logpkg.Str("metrics", cfg.MetricsAddr),
	)
	startEv := eventlog.Now("serve", "info", "runtime started")
	startEv.KV = map[string]any{"instance": instanceID}
	if err := l.Append(startEv); err != nil {
		return err
	}
	metrics.EventsAppended.Inc()

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			h := rt.OverallHealth()
			if h.State != runtime.StateHealthy {
				http.Error(w, fmt.Sprintf("%s: %s", h.State, h.Reason), http.StatusServiceUnavailable)
				return
			}
			fmt.Fprintln(w, "ok")
		})
		srv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server error", logpkg.Err(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			stopEv := eventlog.Now("serve", "info", "runtime stopped")
			stopEv.KV = map[string]any{"instance": instanceID}
			if err := l.Append(stopEv); err != nil {
				logger.Error("append stop event", logpkg.Err(err))
			} else {
				metrics.EventsAppended.Inc()
			}
			logger.Info("hyperion stopping", logpkg.Str("instance", instanceID))
			return nil
		case <-tk.C:
			n := sched.ReclaimExpired()
			metrics.QueueDepth.Set(float64(sched.Depth()))
			metrics.LeasedJobs.Set(float64(sched.LeasedCount()))
			if n == 0 {
				continue
			}
			metrics.LeasesReclaimed.Add(float64(n))
			logger.Info("reclaimed expired leases", logpkg.Int("count", n))
			ev := eventlog.Now("serve", "warn", fmt.Sprintf("reclaimed %d expired leases", n))
			ev.KV = map[string]any{"instance": instanceID, "count": n}
			if err := l.Append(ev); err != nil {
				logger.Error("append reclaim event", logpkg.Err(err))
				continue
			}
			metrics.EventsAppended.Inc()
		}
	}
}
