// Package scheduler implements Hyperion's in-memory lease-based job
// scheduler.
//
// Jobs are partitioned by kind into independent FIFO queues. Dequeue grants
// a time-bounded lease; the job is then exactly one of queued, leased, or
// resolved (recorded in the done or failed history).
//
// # Job Lifecycle
//
//  1. Enqueue: job appended to the tail of its kind's queue
//  2. Dequeue: oldest job popped, attempts incremented, lease granted
//  3. Processing:
//     - Complete: lease removed, job recorded in done history
//     - Fail: lease removed, job re-enqueued at the tail, recorded in
//     failed history
//  4. Expiry: lease deadline passes; the lease stays in the table until
//     ReclaimExpired observes it and returns the job to its queue
//
// # At-Least-Once Semantics
//
// A job is redelivered via explicit Fail or via lease expiry; both paths
// re-enqueue at the tail of the kind's queue. Duplicates can occur if a
// worker holding an expired lease still acts on the job. By default only
// Fail records the job in the failed history; Options.ReclaimRecordsFailure
// makes expiry symmetric.
//
// # Concurrency
//
// The scheduler does no internal locking and evaluates lease expiry only
// when ReclaimExpired is called. A concurrent host must serialize all calls
// behind a single-writer boundary and schedule reclaim itself.
package scheduler
