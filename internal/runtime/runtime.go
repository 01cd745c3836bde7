package runtime

import (
	"errors"
	"fmt"

	logpkg "github.com/pranavpramod01/Hyperion/pkg/log"
)

// Runtime manages an explicitly owned, caller-constructed list of modules.
// There is no ambient registry; whoever builds the Runtime decides what
// runs and in which order.
type Runtime struct {
	modules []Module
	logger  logpkg.Logger
}

// New creates an empty Runtime. A nil logger falls back to the default.
func New(logger logpkg.Logger) *Runtime {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	return &Runtime{logger: logger}
}

// Register appends a module. Modules start in registration order and stop
// in reverse.
func (r *Runtime) Register(m Module) {
	r.modules = append(r.modules, m)
}

// StartAll starts modules in registration order. The first failure aborts;
// previously started modules are left running for the caller to stop.
func (r *Runtime) StartAll() error {
	for _, m := range r.modules {
		if err := m.Start(); err != nil {
			return fmt.Errorf("start %s: %w", m.Name(), err)
		}
		r.logger.Debug("module started", logpkg.Str("module", m.Name()))
	}
	return nil
}

// StopAll stops modules in reverse registration order. Every module is
// stopped regardless of earlier failures; errors are joined.
func (r *Runtime) StopAll() error {
	var errs []error
	for i := len(r.modules) - 1; i >= 0; i-- {
		m := r.modules[i]
		if err := m.Stop(); err != nil {
			r.logger.Error("module stop failed", logpkg.Str("module", m.Name()), logpkg.Err(err))
			errs = append(errs, fmt.Errorf("stop %s: %w", m.Name(), err))
			continue
		}
		r.logger.Debug("module stopped", logpkg.Str("module", m.Name()))
	}
	return errors.Join(errs...)
}

// OverallHealth aggregates module health; the first non-healthy report
// wins, in registration order.
func (r *Runtime) OverallHealth() Health {
	for _, m := range r.modules {
		if h := m.Health(); h.State != StateHealthy {
			return h
		}
	}
	return Healthy()
}
