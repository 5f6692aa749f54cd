package phototaxis

import "braitenberg/internal/core"

// Parameters reports the effective configuration.
func (p *Phototaxis) Parameters() core.ParameterSnapshot {
	heading := core.FloatParam("heading", "Initial heading", p.cfg.Heading)
	if p.cfg.RandomHeading {
		heading = core.StringParam("heading", "Initial heading", "random")
	}
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", p.cfg.Mode.String()),
				core.IntParam("horizon", "Horizon", p.cfg.Horizon),
				core.Int64Param("seed", "Seed", p.cfg.Seed),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.FloatParam("light_x", "Light X", p.cfg.LightX),
				core.FloatParam("light_y", "Light Y", p.cfg.LightY),
				core.FloatParam("start_x", "Start X", p.cfg.StartX),
				core.FloatParam("start_y", "Start Y", p.cfg.StartY),
				heading,
			},
		},
		{
			Name: "Vehicle",
			Params: []core.Parameter{
				core.FloatParam("speed", "Speed", p.cfg.Params.Speed),
				core.FloatParam("turn_angle", "Turn angle", p.cfg.Params.TurnAngle),
				core.FloatParam("sensor_angle", "Sensor angle", p.cfg.Params.SensorAngle),
				core.FloatParam("sensor_radius", "Sensor radius", p.cfg.Params.SensorRadius),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
