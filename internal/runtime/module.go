package runtime

// State classifies a module's health.
type State int

const (
	StateHealthy State = iota
	StateDegraded
	StateUnhealthy
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// Health is a module's health report. Reason is empty for healthy modules.
type Health struct {
	State  State
	Reason string
}

// Healthy reports a healthy module.
func Healthy() Health { return Health{State: StateHealthy} }

// Degraded reports a module that works but with reduced guarantees.
func Degraded(reason string) Health { return Health{State: StateDegraded, Reason: reason} }

// Unhealthy reports a module that is not functioning.
func Unhealthy(reason string) Health { return Health{State: StateUnhealthy, Reason: reason} }

// Module is the minimal lifecycle every managed component implements.
type Module interface {
	Name() string
	Start() error
	Stop() error
	Health() Health
}
