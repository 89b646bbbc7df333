package host

import (
	"log/slog"
	"sync"
)

// Environment is one host integration the engine can read configuration
// from: an embedding framework's own property space. Implementations are
// explicit and enumerable; the engine never probes the runtime to guess
// which host it is embedded in.
type Environment interface {
	// Name identifies the host environment in logs and diagnostics.
	Name() string

	// Available reports whether the host's configuration is actually
	// present in this process (e.g. its config file exists and parses).
	Available() bool

	// Lookup returns the value for a canonical dotted property name.
	Lookup(propertyName string) (string, bool)

	// PropertyNames returns every property name the host currently exposes.
	// Used for instance prefix discovery.
	PropertyNames() []string
}

// Detector selects the host environment for the process from an explicit,
// ordered candidate list. The first available candidate wins and the result
// is cached for the lifetime of the detector; host detection is a one-shot
// decision, not something that changes at steady state.
type Detector struct {
	candidates []Environment

	once     sync.Once
	detected Environment
}

// NewDetector creates a detector probing the given candidates in order.
func NewDetector(candidates ...Environment) *Detector {
	return &Detector{candidates: candidates}
}

// Detect returns the first available candidate environment. The probe runs
// once; subsequent calls return the cached result.
func (d *Detector) Detect() (Environment, bool) {
	d.once.Do(func() {
		for _, candidate := range d.candidates {
			if candidate.Available() {
				slog.Debug("host environment detected", "host", candidate.Name())
				d.detected = candidate

				return
			}
		}

		slog.Debug("no host environment detected")
	})

	if d.detected == nil {
		return nil, false
	}

	return d.detected, true
}
