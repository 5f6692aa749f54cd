// Package phototaxis runs a two-sensor vehicle on a wrapped light field. In
// aggression mode it curves toward the light, in fear mode away from it.
package phototaxis

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"braitenberg/internal/core"
	"braitenberg/internal/vehicle"
	"braitenberg/internal/world"
	rng "braitenberg/pkg/core"
)

// Phototaxis is a light-driven vehicle simulation.
type Phototaxis struct {
	cfg    Config
	field  *world.LightField
	driver *vehicle.Driver
}

// New returns a simulation with the default configuration in the given mode.
func New(mode vehicle.Mode) *Phototaxis {
	cfg := DefaultConfig()
	cfg.Mode = mode
	return NewWithConfig(cfg, nil)
}

// NewWithConfig returns a simulation configured from the provided options.
// The vehicle is placed at the start pose using the config seed.
func NewWithConfig(cfg Config, logger *zap.Logger) *Phototaxis {
	if logger == nil {
		logger = zap.NewNop()
	}
	field := world.NewLightField(r2.Vec{X: cfg.LightX, Y: cfg.LightY})
	sensors := vehicle.FieldSensors{
		Field:  field,
		Angle:  cfg.Params.SensorAngle,
		Radius: cfg.Params.SensorRadius,
	}
	steering := vehicle.Steering{Mode: cfg.Mode, TurnAngle: cfg.Params.TurnAngle}
	kin := vehicle.Kinematics{
		Speed:       cfg.Params.Speed,
		Boundary:    field,
		WrapHeading: cfg.Mode.WrapsHeading(),
	}
	p := &Phototaxis{
		cfg:   cfg,
		field: field,
		driver: vehicle.New(vehicle.DriverConfig{Horizon: cfg.Horizon}, sensors, steering, kin,
			vehicle.WithLogger(logger.With(zap.String("sim", cfg.Mode.String())))),
	}
	p.Reset(0)
	return p
}

// Name returns the simulation identifier.
func (p *Phototaxis) Name() string { return p.cfg.Mode.String() }

// Config returns the active configuration.
func (p *Phototaxis) Config() Config { return p.cfg }

// Field exposes the light field.
func (p *Phototaxis) Field() *world.LightField { return p.field }

// Driver exposes the underlying loop.
func (p *Phototaxis) Driver() *vehicle.Driver { return p.driver }

// Reset puts the vehicle back at the start pose. A zero seed falls back to the
// configured seed; the seed only matters when the heading is random.
func (p *Phototaxis) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = p.cfg.Seed
	}
	heading := p.cfg.Heading
	if p.cfg.RandomHeading {
		heading = rng.NewRNG(effective).Angle()
	}
	start := world.Wrap(r2.Vec{X: p.cfg.StartX, Y: p.cfg.StartY})
	p.driver.Reset(vehicle.Pose{Position: start, Heading: heading})
}

// Step advances the simulation by one tick.
func (p *Phototaxis) Step() { p.driver.Step() }

// Done reports whether the horizon has been reached.
func (p *Phototaxis) Done() bool { return p.driver.Done() }

// Run steps to the horizon and returns the trajectory.
func (p *Phototaxis) Run() vehicle.Trajectory { return p.driver.Run() }

// Path returns the positions visited so far.
func (p *Phototaxis) Path() []r2.Vec { return p.driver.Trajectory().Points() }

// Rejections is always zero on the torus; it is reported for parity with the
// grid sim.
func (p *Phototaxis) Rejections() int { return p.driver.Rejections() }

func init() {
	for _, mode := range []vehicle.Mode{vehicle.Aggression, vehicle.Fear} {
		core.Register(mode.String(), func(cfg map[string]string, logger *zap.Logger) core.Sim {
			c := FromMap(cfg)
			c.Mode = mode
			return NewWithConfig(c, logger)
		})
	}
}
