package avoidance

import (
	"math"
	"strconv"

	"braitenberg/internal/world"
)

// Params holds the sensor and motor constants of the obstacle-avoiding vehicle.
type Params struct {
	Speed         float64
	SensorAngle   float64
	SensorMaxDist float64
	RayStep       float64
	HardTurn      float64
	GentleTurn    float64
	BounceKick    float64
}

// Config controls an avoidance run.
type Config struct {
	Horizon  int
	Seed     int64
	GridSize int

	StartX, StartY float64

	// Heading is used as-is unless RandomHeading is set, in which case Reset
	// draws one in [-π, π) from the seed.
	Heading       float64
	RandomHeading bool

	Obstacles []world.Rect

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Horizon:       1000,
		Seed:          1337,
		GridSize:      1000,
		StartX:        0.01,
		StartY:        0.91,
		RandomHeading: true,
		Obstacles:     world.DefaultObstacles(1000),
		Params: Params{
			Speed:         0.01,
			SensorAngle:   math.Pi / 4,
			SensorMaxDist: 0.15,
			RayStep:       0.001,
			HardTurn:      math.Pi / 4,
			GentleTurn:    math.Pi / 8,
			BounceKick:    math.Pi / 4,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Without an explicit obstacles entry the default walls are scaled to the
// configured grid size.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["horizon"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Horizon = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["grid_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.GridSize = parsed
			c.Obstacles = world.DefaultObstacles(parsed)
		}
	}
	if v, ok := cfg["obstacles"]; ok {
		if parsed, err := world.ParseRects(v); err == nil {
			c.Obstacles = parsed
		}
	}
	readUnit := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
				*dst = parsed
			}
		}
	}
	readUnit("start_x", &c.StartX)
	readUnit("start_y", &c.StartY)
	if v, ok := cfg["heading"]; ok {
		if v == "random" {
			c.RandomHeading = true
		} else if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Heading = parsed
			c.RandomHeading = false
		}
	}
	readPositive := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	readPositive("speed", &c.Params.Speed)
	readPositive("sensor_max_dist", &c.Params.SensorMaxDist)
	readPositive("ray_step", &c.Params.RayStep)
	readAngle := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	readAngle("sensor_angle", &c.Params.SensorAngle)
	readAngle("hard_turn", &c.Params.HardTurn)
	readAngle("gentle_turn", &c.Params.GentleTurn)
	readAngle("bounce_kick", &c.Params.BounceKick)
	return c
}
