package vehicle

import "gonum.org/v1/gonum/spatial/r2"

// Boundary decides whether a candidate position may be occupied. It returns
// the position to commit, which may differ from the candidate (a torus wraps
// it).
type Boundary interface {
	Admit(p r2.Vec) (r2.Vec, bool)
}

// Kinematics integrates a pose one tick forward at constant speed.
type Kinematics struct {
	Speed    float64
	Boundary Boundary

	// WrapHeading reduces the heading mod 2π after steering.
	WrapHeading bool

	// BounceKick is added to the heading when a move is rejected.
	BounceKick float64
}

// Step applies delta to the heading, moves Speed along it and returns the new
// pose. When the boundary rejects the move the position stays put, the
// heading gets the bounce kick and ok is false.
func (k Kinematics) Step(p Pose, delta float64) (next Pose, ok bool) {
	heading := p.Heading + delta
	if k.WrapHeading {
		heading = NormalizeAngle(heading)
	}
	candidate := r2.Add(p.Position, polar(k.Speed, heading))
	pos, ok := k.Boundary.Admit(candidate)
	if !ok {
		return Pose{Position: p.Position, Heading: heading + k.BounceKick}, false
	}
	return Pose{Position: pos, Heading: heading}, true
}

