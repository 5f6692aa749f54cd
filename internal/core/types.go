package core

import (
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sim defines the minimal contract a vehicle simulation must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	Done() bool
	Path() []r2.Vec
	Parameters() ParameterSnapshot
}

// Factory constructs a Sim using an optional configuration map. A nil logger
// is replaced with a no-op logger by the implementations.
type Factory func(cfg map[string]string, logger *zap.Logger) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
