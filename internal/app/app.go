// Package app drives registered sims headlessly for the command-line tools.
package app

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"braitenberg/internal/core"
	"braitenberg/internal/vehicle"
)

// Summary describes one completed run.
type Summary struct {
	Sim          string
	Seed         int64
	Ticks        int
	Start        r2.Vec
	Final        r2.Vec
	Displacement float64
	Rejections   int
	Fingerprint  uint64
}

// Fields renders the summary as structured log fields.
func (s Summary) Fields() []zap.Field {
	return []zap.Field{
		zap.String("sim", s.Sim),
		zap.Int64("seed", s.Seed),
		zap.Int("ticks", s.Ticks),
		zap.Float64("start_x", s.Start.X),
		zap.Float64("start_y", s.Start.Y),
		zap.Float64("final_x", s.Final.X),
		zap.Float64("final_y", s.Final.Y),
		zap.Float64("displacement", s.Displacement),
		zap.Int("rejections", s.Rejections),
		zap.Uint64("fingerprint", s.Fingerprint),
	}
}

type rejectionCounter interface {
	Rejections() int
}

// Run resets sim with seed, steps it to its horizon and summarises the path.
func Run(sim core.Sim, seed int64) (Summary, []r2.Vec) {
	sim.Reset(seed)
	for !sim.Done() {
		sim.Step()
	}
	return Summarize(sim, seed), sim.Path()
}

// Summarize reports on the sim's current path without stepping it.
func Summarize(sim core.Sim, seed int64) Summary {
	path := sim.Path()
	s := Summary{
		Sim:         sim.Name(),
		Seed:        seed,
		Fingerprint: vehicle.Fingerprint(path),
	}
	if len(path) > 0 {
		s.Ticks = len(path) - 1
		s.Start = path[0]
		s.Final = path[len(path)-1]
		s.Displacement = r2.Norm(r2.Sub(s.Final, s.Start))
	}
	if rc, ok := sim.(rejectionCounter); ok {
		s.Rejections = rc.Rejections()
	}
	return s
}
