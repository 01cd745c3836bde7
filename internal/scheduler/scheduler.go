package scheduler

import (
	"fmt"
	"time"
)

// Job is the minimum unit of schedulable work. Payload is opaque to the
// scheduler.
type Job struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	Attempts  int       `json:"attempts"`
}

// lease is a time-bounded exclusive checkout of a job.
type lease struct {
	job       Job
	expiresAt time.Time
}

// Options configure a Scheduler.
type Options struct {
	// DefaultKind is used by EnqueueDefault. Empty means "default".
	DefaultKind string
	// HistoryLimit bounds the done and failed histories; oldest entries
	// are dropped first. 0 keeps them unbounded.
	HistoryLimit int
	// ReclaimRecordsFailure makes ReclaimExpired record reclaimed jobs in
	// the failed history, symmetric with Fail. Off by default: expiry is
	// not an explicit failure.
	ReclaimRecordsFailure bool
	// Now supplies the clock; nil means time.Now.
	Now func() time.Time
}

// Scheduler owns per-kind FIFO queues of pending jobs and a table of
// active leases. It performs no locking; a single owner must serialize
// all calls.
type Scheduler struct {
	nextID uint64
	queued map[string][]Job
	leased map[uint64]lease
	done   []Job
	failed []Job
	opts   Options
}

// New creates a Scheduler with default options.
func New() *Scheduler {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Scheduler with explicit options.
func NewWithOptions(opts Options) *Scheduler {
	if opts.DefaultKind == "" {
		opts.DefaultKind = "default"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scheduler{
		queued: make(map[string][]Job),
		leased: make(map[uint64]lease),
		opts:   opts,
	}
}

// Enqueue creates a job with the next id and appends it to the tail of the
// kind's queue. Ids are unique and never reused. Always succeeds.
func (s *Scheduler) Enqueue(kind, payload string) uint64 {
	s.nextID++
	job := Job{
		ID:        s.nextID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: s.opts.Now(),
	}
	s.queued[kind] = append(s.queued[kind], job)
	return job.ID
}

// EnqueueDefault enqueues a job under the configured default kind.
func (s *Scheduler) EnqueueDefault(payload string) uint64 {
	return s.Enqueue(s.opts.DefaultKind, payload)
}

// Dequeue pops the oldest queued job of the given kind and grants a lease
// for leaseDur. The second return is false when the queue is empty or the
// kind is unknown. Attempts is incremented exactly once per dequeue.
// Durations <= 0 are clamped to 1ms so the lease expiry is strictly after
// the grant time.
func (s *Scheduler) Dequeue(kind string, leaseDur time.Duration) (Job, bool) {
	q := s.queued[kind]
	if len(q) == 0 {
		return Job{}, false
	}
	job := q[0]
	s.queued[kind] = q[1:]

	job.Attempts++
	if leaseDur <= 0 {
		leaseDur = time.Millisecond
	}
	s.leased[job.ID] = lease{job: job, expiresAt: s.opts.Now().Add(leaseDur)}
	return job, true
}

// Complete removes the lease for id and records the job in the done
// history. Returns ErrNotLeased if id has no active lease.
func (s *Scheduler) Complete(id uint64) error {
	le, ok := s.leased[id]
	if !ok {
		return fmt.Errorf("complete: job %d: %w", id, ErrNotLeased)
	}
	delete(s.leased, id)
	s.done = appendHistory(s.done, le.job, s.opts.HistoryLimit)
	return nil
}

// Fail removes the lease for id, re-enqueues the job at the tail of its
// own kind's queue (immediate retry, no backoff), and records it in the
// failed history. Returns ErrNotLeased if id has no active lease.
func (s *Scheduler) Fail(id uint64) error {
	le, ok := s.leased[id]
	if !ok {
		return fmt.Errorf("fail: job %d: %w", id, ErrNotLeased)
	}
	delete(s.leased, id)
	s.queued[le.job.Kind] = append(s.queued[le.job.Kind], le.job)
	s.failed = appendHistory(s.failed, le.job, s.opts.HistoryLimit)
	return nil
}

// ReclaimExpired returns every job whose lease deadline is at or before
// the current time to the tail of its kind's queue and reports how many
// were reclaimed. Attempts is not bumped again; the original dequeue
// already counted this delivery. Callers invoke this on a cadence of
// their choosing; leases never expire on their own.
func (s *Scheduler) ReclaimExpired() int {
	now := s.opts.Now()
	reclaimed := 0
	for id, le := range s.leased {
		if le.expiresAt.After(now) {
			continue
		}
		delete(s.leased, id)
		s.queued[le.job.Kind] = append(s.queued[le.job.Kind], le.job)
		if s.opts.ReclaimRecordsFailure {
			s.failed = appendHistory(s.failed, le.job, s.opts.HistoryLimit)
		}
		reclaimed++
	}
	return reclaimed
}

// Depth returns the number of queued (not leased) jobs across all kinds.
func (s *Scheduler) Depth() int {
	depth := 0
	for _, q := range s.queued {
		depth += len(q)
	}
	return depth
}

// LeasedCount returns the number of active leases.
func (s *Scheduler) LeasedCount() int {
	return len(s.leased)
}

// Done returns a copy of the done history in resolution order.
func (s *Scheduler) Done() []Job {
	return append([]Job(nil), s.done...)
}

// Failed returns a copy of the failed history in resolution order.
func (s *Scheduler) Failed() []Job {
	return append([]Job(nil), s.failed...)
}

func appendHistory(h []Job, j Job, limit int) []Job {
	h = append(h, j)
	if limit > 0 && len(h) > limit {
		h = append([]Job(nil), h[len(h)-limit:]...)
	}
	return h
}
