package phototaxis

import (
	"math"
	"strconv"

	"braitenberg/internal/vehicle"
)

// Params holds the sensor and motor constants of the light-seeking vehicle.
type Params struct {
	Speed        float64
	TurnAngle    float64
	SensorAngle  float64
	SensorRadius float64
}

// Config controls a phototaxis run.
type Config struct {
	Horizon int
	Seed    int64
	Mode    vehicle.Mode

	LightX, LightY float64
	StartX, StartY float64

	// Heading is used as-is unless RandomHeading is set, in which case Reset
	// draws one from the seed.
	Heading       float64
	RandomHeading bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Horizon:       1000,
		Seed:          1337,
		Mode:          vehicle.Aggression,
		LightX:        0.5,
		LightY:        0.5,
		StartX:        0.1,
		StartY:        0.9,
		RandomHeading: true,
		Params: Params{
			Speed:        0.01,
			TurnAngle:    math.Pi / 8,
			SensorAngle:  math.Pi / 4,
			SensorRadius: 0.05,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["mode"]; ok {
		if parsed, err := vehicle.ParseMode(v); err == nil && parsed.WrapsHeading() {
			c.Mode = parsed
		}
	}
	readUnit := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
				*dst = parsed
			}
		}
	}
	readUnit("light_x", &c.LightX)
	readUnit("light_y", &c.LightY)
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
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Speed = parsed
		}
	}
	if v, ok := cfg["turn_angle"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.TurnAngle = parsed
		}
	}
	if v, ok := cfg["sensor_angle"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SensorAngle = parsed
		}
	}
	if v, ok := cfg["sensor_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SensorRadius = parsed
		}
	}
	return c
}
