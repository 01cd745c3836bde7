// Package runtime provides Hyperion's module lifecycle registry: a
// caller-constructed list of components with start/stop/health, started in
// registration order and stopped in reverse. Wrapper modules adapt the
// scheduler and event log cores, which themselves carry no lifecycle or
// health state, to the Module interface.
package runtime
