package vehicle

import "go.uber.org/zap"

// DriverConfig fixes the length of a run.
type DriverConfig struct {
	Horizon int
}

// Option customises a Driver.
type Option func(*Driver)

// WithLogger routes driver diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.log = logger
		}
	}
}

// Driver runs the fixed-step sense, steer, move loop for one vehicle.
type Driver struct {
	cfg      DriverConfig
	sensors  SensorArray
	steering Steering
	kin      Kinematics
	log      *zap.Logger

	pose       Pose
	tick       int
	rejections int
	traj       Trajectory
}

// New wires a driver. Call Reset before stepping.
func New(cfg DriverConfig, sensors SensorArray, steering Steering, kin Kinematics, opts ...Option) *Driver {
	if cfg.Horizon < 0 {
		cfg.Horizon = 0
	}
	d := &Driver{
		cfg:      cfg,
		sensors:  sensors,
		steering: steering,
		kin:      kin,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Reset(Pose{})
	return d
}

// Reset rewinds the run to tick zero at the given pose.
func (d *Driver) Reset(start Pose) {
	d.pose = start
	d.tick = 0
	d.rejections = 0
	d.traj = newTrajectory(start, d.cfg.Horizon+1)
}

// Step advances one tick. It does nothing once the horizon is reached.
func (d *Driver) Step() {
	if d.Done() {
		return
	}
	reading := d.sensors.Read(d.pose)
	delta := d.steering.Delta(reading)
	next, ok := d.kin.Step(d.pose, delta)
	if !ok {
		d.rejections++
		d.log.Debug("move rejected",
			zap.Int("tick", d.tick),
			zap.Float64("x", d.pose.Position.X),
			zap.Float64("y", d.pose.Position.Y),
			zap.Float64("heading", next.Heading),
		)
	}
	d.pose = next
	d.tick++
	d.traj.append(next)
	if d.Done() {
		d.log.Info("horizon reached",
			zap.String("mode", d.steering.Mode.String()),
			zap.Int("ticks", d.tick),
			zap.Int("rejections", d.rejections),
		)
	}
}

// Run steps until the horizon and returns the trajectory.
func (d *Driver) Run() Trajectory {
	for !d.Done() {
		d.Step()
	}
	return d.Trajectory()
}

// Done reports whether the horizon has been reached.
func (d *Driver) Done() bool { return d.tick >= d.cfg.Horizon }

// Tick returns the number of completed ticks.
func (d *Driver) Tick() int { return d.tick }

// Pose returns the current pose.
func (d *Driver) Pose() Pose { return d.pose }

// Rejections counts ticks whose move the boundary refused.
func (d *Driver) Rejections() int { return d.rejections }

// Trajectory returns the poses recorded so far.
func (d *Driver) Trajectory() Trajectory {
	return Trajectory{poses: d.traj.Poses()}
}

// Mode returns the steering mode in use.
func (d *Driver) Mode() Mode { return d.steering.Mode }
