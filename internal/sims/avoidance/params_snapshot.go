package avoidance

import (
	"braitenberg/internal/core"
	"braitenberg/internal/world"
)

// Parameters reports the effective configuration.
func (a *Avoidance) Parameters() core.ParameterSnapshot {
	params := a.cfg.Params
	heading := core.FloatParam("heading", "Initial heading", a.cfg.Heading)
	if a.cfg.RandomHeading {
		heading = core.StringParam("heading", "Initial heading", "random")
	}
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("horizon", "Horizon", a.cfg.Horizon),
				core.Int64Param("seed", "Seed", a.cfg.Seed),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("grid_size", "Grid size", a.cfg.GridSize),
				core.StringParam("obstacles", "Obstacles", world.FormatRects(a.cfg.Obstacles)),
				core.FloatParam("start_x", "Start X", a.cfg.StartX),
				core.FloatParam("start_y", "Start Y", a.cfg.StartY),
				heading,
			},
		},
		{
			Name: "Sensors",
			Params: []core.Parameter{
				core.FloatParam("sensor_angle", "Sensor angle", params.SensorAngle),
				core.FloatParam("sensor_max_dist", "Sensor max distance", params.SensorMaxDist),
				core.FloatParam("ray_step", "Ray step", params.RayStep),
			},
		},
		{
			Name: "Steering",
			Params: []core.Parameter{
				core.FloatParam("speed", "Speed", params.Speed),
				core.FloatParam("hard_turn", "Hard turn", params.HardTurn),
				core.FloatParam("gentle_turn", "Gentle turn", params.GentleTurn),
				core.FloatParam("bounce_kick", "Bounce kick", params.BounceKick),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
