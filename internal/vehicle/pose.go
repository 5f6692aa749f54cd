package vehicle

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is the vehicle position and heading at one tick. Heading is in radians
// and may hold any real value.
type Pose struct {
	Position r2.Vec
	Heading  float64
}

// Bearing returns the heading reduced to [0, 2π).
func (p Pose) Bearing() float64 {
	return NormalizeAngle(p.Heading)
}

// NormalizeAngle reduces a to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Trajectory is the append-only record of poses produced by one run.
type Trajectory struct {
	poses []Pose
}

func newTrajectory(start Pose, capacity int) Trajectory {
	poses := make([]Pose, 0, capacity)
	return Trajectory{poses: append(poses, start)}
}

func (t *Trajectory) append(p Pose) { t.poses = append(t.poses, p) }

// Len returns the number of recorded poses.
func (t Trajectory) Len() int { return len(t.poses) }

// At returns the pose recorded at tick i.
func (t Trajectory) At(i int) Pose { return t.poses[i] }

// Last returns the most recent pose.
func (t Trajectory) Last() Pose {
	if len(t.poses) == 0 {
		return Pose{}
	}
	return t.poses[len(t.poses)-1]
}

// Poses returns a copy of the recorded poses.
func (t Trajectory) Poses() []Pose {
	return append([]Pose(nil), t.poses...)
}

// Points returns the recorded positions.
func (t Trajectory) Points() []r2.Vec {
	out := make([]r2.Vec, len(t.poses))
	for i, p := range t.poses {
		out[i] = p.Position
	}
	return out
}

// Fingerprint hashes the exact bit patterns of every recorded position. Two
// runs with the same fingerprint visited the same points in the same order.
func (t Trajectory) Fingerprint() uint64 {
	return Fingerprint(t.Points())
}

// Fingerprint hashes a sequence of positions.
func Fingerprint(points []r2.Vec) uint64 {
	h := xxhash.New()
	var buf [16]byte
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
