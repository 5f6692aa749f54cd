// Package avoidance runs a three-ray vehicle through a walled occupancy grid.
package avoidance

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"braitenberg/internal/core"
	"braitenberg/internal/vehicle"
	"braitenberg/internal/world"
	rng "braitenberg/pkg/core"
)

// Avoidance is an obstacle-avoiding vehicle simulation. A start pose inside
// a fully enclosed region is not detected; every move is then rejected.
type Avoidance struct {
	cfg    Config
	arena  *world.ObstacleMap
	driver *vehicle.Driver
}

// New returns a simulation using defaults.
func New() *Avoidance {
	return NewWithConfig(DefaultConfig(), nil)
}

// NewWithConfig builds the obstacle map once and wires the vehicle to it.
func NewWithConfig(cfg Config, logger *zap.Logger) *Avoidance {
	if logger == nil {
		logger = zap.NewNop()
	}
	arena := world.NewObstacleMap(cfg.GridSize, cfg.Obstacles)
	sensors := vehicle.RaySensors{
		Map:     arena,
		Angle:   cfg.Params.SensorAngle,
		MaxDist: cfg.Params.SensorMaxDist,
		Step:    cfg.Params.RayStep,
	}
	steering := vehicle.Steering{
		Mode:       vehicle.Avoidance,
		MaxDist:    cfg.Params.SensorMaxDist,
		HardTurn:   cfg.Params.HardTurn,
		GentleTurn: cfg.Params.GentleTurn,
	}
	kin := vehicle.Kinematics{
		Speed:      cfg.Params.Speed,
		Boundary:   arena,
		BounceKick: cfg.Params.BounceKick,
	}
	a := &Avoidance{
		cfg:   cfg,
		arena: arena,
		driver: vehicle.New(vehicle.DriverConfig{Horizon: cfg.Horizon}, sensors, steering, kin,
			vehicle.WithLogger(logger.With(zap.String("sim", "avoidance")))),
	}
	a.Reset(0)
	return a
}

// Name returns the simulation identifier.
func (a *Avoidance) Name() string { return vehicle.Avoidance.String() }

// Config returns the active configuration.
func (a *Avoidance) Config() Config { return a.cfg }

// Map exposes the static obstacle grid.
func (a *Avoidance) Map() *world.ObstacleMap { return a.arena }

// Driver exposes the underlying loop.
func (a *Avoidance) Driver() *vehicle.Driver { return a.driver }

// Reset puts the vehicle back at the start pose. A zero seed falls back to the
// configured seed.
func (a *Avoidance) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	heading := a.cfg.Heading
	if a.cfg.RandomHeading {
		heading = rng.NewRNG(effective).SignedAngle()
	}
	start := r2.Vec{X: a.cfg.StartX, Y: a.cfg.StartY}
	a.driver.Reset(vehicle.Pose{Position: start, Heading: heading})
}

// Step advances the simulation by one tick.
func (a *Avoidance) Step() { a.driver.Step() }

// Done reports whether the horizon has been reached.
func (a *Avoidance) Done() bool { return a.driver.Done() }

// Run steps to the horizon and returns the trajectory.
func (a *Avoidance) Run() vehicle.Trajectory { return a.driver.Run() }

// Path returns the positions visited so far.
func (a *Avoidance) Path() []r2.Vec { return a.driver.Trajectory().Points() }

// Rejections counts the bounce kicks applied so far.
func (a *Avoidance) Rejections() int { return a.driver.Rejections() }

func init() {
	core.Register(vehicle.Avoidance.String(), func(cfg map[string]string, logger *zap.Logger) core.Sim {
		return NewWithConfig(FromMap(cfg), logger)
	})
}
