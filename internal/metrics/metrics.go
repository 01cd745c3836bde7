// Package metrics holds Hyperion's prometheus collectors. The serve loop
// is the only writer; gauges are refreshed on each reclaim tick.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QueueDepth tracks jobs queued (not leased) across all kinds.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hyperion_scheduler_queue_depth",
		Help: "Jobs queued (not leased) across all kinds.",
	})

	// LeasedJobs tracks active leases.
	LeasedJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hyperion_scheduler_leased_jobs",
		Help: "Jobs currently checked out under a lease.",
	})

	// JobsSubmitted counts jobs accepted by Enqueue.
	JobsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hyperion_scheduler_jobs_submitted_total",
		Help: "Total jobs enqueued.",
	})

	// LeasesReclaimed counts leases returned to their queues by the
	// reclaim sweep.
	LeasesReclaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hyperion_scheduler_leases_reclaimed_total",
		Help: "Total expired leases reclaimed back to their queues.",
	})

	// EventsAppended counts audit events written to the event log.
	EventsAppended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hyperion_eventlog_events_appended_total",
		Help: "Total events appended to the audit log.",
	})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
