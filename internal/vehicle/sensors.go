package vehicle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"braitenberg/internal/world"
)

// Reading holds one tick of sensor values. Light sensors fill Left and Right;
// range sensors fill all three.
type Reading struct {
	Left, Center, Right float64
}

// SensorArray samples the environment around a pose.
type SensorArray interface {
	Read(p Pose) Reading
}

// FieldSensors are two light sensors mounted Radius away from the vehicle
// centre at ±Angle from the heading.
type FieldSensors struct {
	Field  *world.LightField
	Angle  float64
	Radius float64
}

// Points returns the wrapped left and right sensor positions.
func (s FieldSensors) Points(p Pose) (left, right r2.Vec) {
	left = world.Wrap(r2.Add(p.Position, polar(s.Radius, p.Heading+s.Angle)))
	right = world.Wrap(r2.Add(p.Position, polar(s.Radius, p.Heading-s.Angle)))
	return left, right
}

// Read returns the light intensity at both sensors.
func (s FieldSensors) Read(p Pose) Reading {
	left, right := s.Points(p)
	return Reading{Left: s.Field.Intensity(left), Right: s.Field.Intensity(right)}
}

// RaySensors are three range finders cast from the vehicle position at
// +Angle, 0 and -Angle relative to the heading.
type RaySensors struct {
	Map     *world.ObstacleMap
	Angle   float64
	MaxDist float64
	Step    float64
}

// Read returns the obstacle distance along each ray.
func (s RaySensors) Read(p Pose) Reading {
	return Reading{
		Left:   s.Map.Raycast(p.Position, p.Heading+s.Angle, s.MaxDist, s.Step),
		Center: s.Map.Raycast(p.Position, p.Heading, s.MaxDist, s.Step),
		Right:  s.Map.Raycast(p.Position, p.Heading-s.Angle, s.MaxDist, s.Step),
	}
}

func polar(r, theta float64) r2.Vec {
	return r2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
