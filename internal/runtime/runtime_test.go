package runtime

import (
	"errors"
	"testing"

	"github.com/pranavpramod01/Hyperion/internal/eventlog"
	"github.com/pranavpramod01/Hyperion/internal/scheduler"
	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

type fakeModule struct {
	name     string
	running  bool
	startErr error
	stopErr  error
	health   Health
	events   *[]string
}

func (m *fakeModule) Name() string { return m.name }

func (m *fakeModule) Start() error {
	if m.startErr != nil {
		return m.startErr
	}
	m.running = true
	if m.events != nil {
		*m.events = append(*m.events, "start:"+m.name)
	}
	return nil
}

func (m *fakeModule) Stop() error {
	if m.stopErr != nil {
		return m.stopErr
	}
	m.running = false
	if m.events != nil {
		*m.events = append(*m.events, "stop:"+m.name)
	}
	return nil
}

func (m *fakeModule) Health() Health {
	if m.health != (Health{}) {
		return m.health
	}
	if m.running {
		return Healthy()
	}
	return Unhealthy("not running")
}

func quietLogger() logpkg.Logger {
	return logpkg.NewLogger(logpkg.WithOutput(logpkg.NewNullOutput()))
}

func TestStartStopOrder(t *testing.T) {
	var events []string
	rt := New(quietLogger())
	rt.Register(&fakeModule{name: "a", events: &events})
	rt.Register(&fakeModule{name: "b", events: &events})

	if err := rt.StartAll(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := rt.StopAll(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	if len(events) != len(want) {
		t.Fatalf("events: %v", events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("order: got %v, want %v", events, want)
		}
	}
}

func TestStartAllAbortsOnFirstFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	rt := New(quietLogger())
	rt.Register(&fakeModule{name: "a", events: &events})
	rt.Register(&fakeModule{name: "b", startErr: boom})
	rt.Register(&fakeModule{name: "c", events: &events})

	err := rt.StartAll()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	for _, ev := range events {
		if ev == "start:c" {
			t.Fatalf("module after failure must not start: %v", events)
		}
	}
}

func TestStopAllContinuesPastFailures(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	rt := New(quietLogger())
	rt.Register(&fakeModule{name: "a", events: &events})
	rt.Register(&fakeModule{name: "b", stopErr: boom})
	_ = rt.StartAll()

	err := rt.StopAll()
	if !errors.Is(err, boom) {
		t.Fatalf("joined error should include boom, got %v", err)
	}
	found := false
	for _, ev := range events {
		if ev == "stop:a" {
			found = true
		}
	}
	if !found {
		t.Fatalf("earlier module must still stop: %v", events)
	}
}

func TestOverallHealthFirstNonHealthyWins(t *testing.T) {
	rt := New(quietLogger())
	rt.Register(&fakeModule{name: "a", running: true})
	rt.Register(&fakeModule{name: "b", health: Degraded("slow disk")})
	rt.Register(&fakeModule{name: "c", health: Unhealthy("down")})

	h := rt.OverallHealth()
	if h.State != StateDegraded || h.Reason != "slow disk" {
		t.Fatalf("overall = %+v, want first non-healthy", h)
	}
}

func TestOverallHealthAllHealthy(t *testing.T) {
	rt := New(quietLogger())
	rt.Register(&fakeModule{name: "a", running: true})
	if h := rt.OverallHealth(); h.State != StateHealthy {
		t.Fatalf("overall = %+v", h)
	}
}

func TestSchedulerModuleLifecycle(t *testing.T) {
	m := NewSchedulerModule(scheduler.New())
	if h := m.Health(); h.State != StateUnhealthy {
		t.Fatalf("stopped module should be unhealthy: %+v", h)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Start(); err == nil {
		t.Fatalf("double start should fail")
	}
	if h := m.Health(); h.State != StateHealthy {
		t.Fatalf("running module should be healthy: %+v", h)
	}
	if err := m.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := m.Stop(); err == nil {
		t.Fatalf("double stop should fail")
	}
}

func TestEventLogModuleHealth(t *testing.T) {
	mem := NewEventLogModule(eventlog.OpenInMemory())
	if err := mem.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if h := mem.Health(); h.State != StateDegraded {
		t.Fatalf("in-memory log should report degraded: %+v", h)
	}
	if err := mem.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
