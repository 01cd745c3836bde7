package runtime

import (
	"fmt"
	"sync/atomic"

	"github.com/pranavpramod01/Hyperion/internal/eventlog"
	"github.com/pranavpramod01/Hyperion/internal/scheduler"
)

// SchedulerModule adapts a Scheduler to the Module lifecycle. The
// scheduler itself has no notion of running or health; the wrapper tracks
// both. Health reads only the wrapper's atomic flag, so it is safe to call
// from a health endpoint while another goroutine owns the scheduler.
type SchedulerModule struct {
	sched   *scheduler.Scheduler
	running atomic.Bool
}

// NewSchedulerModule wraps a scheduler.
func NewSchedulerModule(s *scheduler.Scheduler) *SchedulerModule {
	return &SchedulerModule{sched: s}
}

// Name implements Module.
func (m *SchedulerModule) Name() string { return "scheduler" }

// Start implements Module.
func (m *SchedulerModule) Start() error {
	if !m.running.CompareAndSwap(false, true) {
		return fmt.Errorf("module %s already running", m.Name())
	}
	return nil
}

// Stop implements Module.
func (m *SchedulerModule) Stop() error {
	if !m.running.CompareAndSwap(true, false) {
		return fmt.Errorf("module %s not running", m.Name())
	}
	return nil
}

// Health implements Module.
func (m *SchedulerModule) Health() Health {
	if !m.running.Load() {
		return Unhealthy("not running")
	}
	return Healthy()
}

// Scheduler returns the wrapped scheduler.
func (m *SchedulerModule) Scheduler() *scheduler.Scheduler { return m.sched }

// EventLogModule adapts an event log to the Module lifecycle. Stop closes
// the log's append handle.
type EventLogModule struct {
	log     *eventlog.Log
	running atomic.Bool
}

// NewEventLogModule wraps an event log.
func NewEventLogModule(l *eventlog.Log) *EventLogModule {
	return &EventLogModule{log: l}
}

// Name implements Module.
func (m *EventLogModule) Name() string { return "eventlog" }

// Start implements Module.
func (m *EventLogModule) Start() error {
	if !m.running.CompareAndSwap(false, true) {
		return fmt.Errorf("module %s already running", m.Name())
	}
	return nil
}

// Stop implements Module.
func (m *EventLogModule) Stop() error {
	if !m.running.CompareAndSwap(true, false) {
		return fmt.Errorf("module %s not running", m.Name())
	}
	return m.log.Close()
}

// Health implements Module. A file-less log still works but loses events
// on exit, so it reports degraded rather than unhealthy.
func (m *EventLogModule) Health() Health {
	if !m.running.Load() {
		return Unhealthy("not running")
	}
	if m.log.Path() == "" {
		return Degraded("no backing file; events are not durable")
	}
	return Healthy()
}

// Log returns the wrapped event log.
func (m *EventLogModule) Log() *eventlog.Log { return m.log }
