// Package world holds the two environments a vehicle can move through: a
// continuous light field on a torus and a bounded occupancy grid.
package world

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// LightField is a scalar intensity field that falls off linearly from a single
// source. Both axes wrap around the unit square.
type LightField struct {
	source r2.Vec
}

// NewLightField returns a field centred on source.
func NewLightField(source r2.Vec) *LightField {
	return &LightField{source: source}
}

// Source returns the light source position.
func (f *LightField) Source() r2.Vec { return f.source }

// Intensity returns max(0, 1 - |p - source|). It is defined for any point;
// callers wrap coordinates first.
func (f *LightField) Intensity(p r2.Vec) float64 {
	return math.Max(0, 1-r2.Norm(r2.Sub(p, f.source)))
}

// Admit wraps p onto the torus. The move is never rejected.
func (f *LightField) Admit(p r2.Vec) (r2.Vec, bool) {
	return Wrap(p), true
}

// Wrap maps both coordinates into [0, 1).
func Wrap(p r2.Vec) r2.Vec {
	return r2.Vec{X: wrapUnit(p.X), Y: wrapUnit(p.Y)}
}

func wrapUnit(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	// -1e-18 + 1 rounds to exactly 1.
	if v >= 1 {
		v = 0
	}
	return v
}
