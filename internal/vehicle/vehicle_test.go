package vehicle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/spatial/r2"

	"braitenberg/internal/world"
)

type fixedSensors struct{ r Reading }

func (s fixedSensors) Read(Pose) Reading { return s.r }

type openPlane struct{}

func (openPlane) Admit(p r2.Vec) (r2.Vec, bool) { return p, true }

type rejectAll struct{}

func (rejectAll) Admit(r2.Vec) (r2.Vec, bool) { return r2.Vec{}, false }

func TestEqualReadingsDoNotSteer(t *testing.T) {
	for _, mode := range []Mode{Aggression, Fear} {
		s := Steering{Mode: mode, TurnAngle: math.Pi / 8}
		for _, v := range []float64{0, 0.3, 1} {
			assert.Zero(t, s.Delta(Reading{Left: v, Right: v}), "%s with %v", mode, v)
		}
	}
}

func TestAggressionMirrorsFear(t *testing.T) {
	agg := Steering{Mode: Aggression, TurnAngle: math.Pi / 8}
	fear := Steering{Mode: Fear, TurnAngle: math.Pi / 8}
	values := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	for _, l := range values {
		for _, r := range values {
			reading := Reading{Left: l, Right: r}
			assert.Equal(t, agg.Delta(reading), -fear.Delta(reading), "left=%v right=%v", l, r)
		}
	}
	assert.InDelta(t, math.Pi/8*0.5, agg.Delta(Reading{Left: 0.25, Right: 0.75}), 1e-12, "aggression turns toward the brighter right")
}

func TestAvoidanceLawPriority(t *testing.T) {
	s := Steering{Mode: Avoidance, MaxDist: 0.15, HardTurn: math.Pi / 4, GentleTurn: math.Pi / 8}
	cases := []struct {
		name string
		r    Reading
		want float64
	}{
		{"obstacle ahead, more room left", Reading{Left: 0.12, Center: 0.05, Right: 0.03}, math.Pi / 4},
		{"obstacle ahead, more room right", Reading{Left: 0.03, Center: 0.05, Right: 0.12}, -math.Pi / 4},
		{"obstacle ahead, tie", Reading{Left: 0.1, Center: 0.0, Right: 0.1}, -math.Pi / 4},
		{"clear ahead, left shorter", Reading{Left: 0.05, Center: 0.15, Right: 0.15}, math.Pi / 8},
		{"clear ahead, right shorter", Reading{Left: 0.15, Center: 0.15, Right: 0.05}, -math.Pi / 8},
		{"all clear", Reading{Left: 0.15, Center: 0.15, Right: 0.15}, -math.Pi / 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Delta(tc.r))
		})
	}
}

func TestModeParsing(t *testing.T) {
	for _, m := range []Mode{Aggression, Fear, Avoidance} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMode("curious")
	assert.Error(t, err)

	assert.True(t, Aggression.WrapsHeading())
	assert.True(t, Fear.WrapsHeading())
	assert.False(t, Avoidance.WrapsHeading())

	unknown := Mode(9)
	assert.Equal(t, "mode(9)", unknown.String())
	assert.Zero(t, Steering{Mode: unknown, TurnAngle: 1}.Delta(Reading{Left: 1}))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), 1e-12)
	assert.InDelta(t, 2*math.Pi-0.5, NormalizeAngle(-0.5), 1e-12)
	assert.Equal(t, 0.0, NormalizeAngle(2*math.Pi))
	assert.InDelta(t, math.Pi, Pose{Heading: -math.Pi}.Bearing(), 1e-12)
}

func TestKinematicsAcceptedMove(t *testing.T) {
	k := Kinematics{Speed: 0.01, Boundary: openPlane{}, WrapHeading: true}
	next, ok := k.Step(Pose{Position: r2.Vec{X: 0.5, Y: 0.5}, Heading: 2*math.Pi - 0.1}, 0.2)
	require.True(t, ok)
	assert.InDelta(t, 0.1, next.Heading, 1e-12, "heading wraps past 2π")
	assert.InDelta(t, 0.5+0.01*math.Cos(0.1), next.Position.X, 1e-12)
	assert.InDelta(t, 0.5+0.01*math.Sin(0.1), next.Position.Y, 1e-12)
}

func TestKinematicsTorusWrapsPosition(t *testing.T) {
	field := world.NewLightField(r2.Vec{X: 0.5, Y: 0.5})
	k := Kinematics{Speed: 0.01, Boundary: field, WrapHeading: true}
	next, ok := k.Step(Pose{Position: r2.Vec{X: 0.995, Y: 0.5}}, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.005, next.Position.X, 1e-12)
}

func TestKinematicsRejectedMoveKicksHeading(t *testing.T) {
	k := Kinematics{Speed: 0.01, Boundary: rejectAll{}, BounceKick: math.Pi / 4}
	start := Pose{Position: r2.Vec{X: 0.3, Y: 0.4}, Heading: 7}
	next, ok := k.Step(start, math.Pi/8)
	require.False(t, ok)
	assert.Equal(t, start.Position, next.Position)
	assert.InDelta(t, 7+math.Pi/8+math.Pi/4, next.Heading, 1e-12, "heading is not wrapped")
}

func TestDriverTrajectoryLengthWithRejections(t *testing.T) {
	steer := Steering{Mode: Avoidance, MaxDist: 0.15, HardTurn: math.Pi / 4, GentleTurn: math.Pi / 8}
	kin := Kinematics{Speed: 0.01, Boundary: rejectAll{}, BounceKick: math.Pi / 4}
	d := New(DriverConfig{Horizon: 25}, fixedSensors{Reading{Left: 0.15, Center: 0.15, Right: 0.15}}, steer, kin)

	start := Pose{Position: r2.Vec{X: 0.5, Y: 0.5}, Heading: 0}
	d.Reset(start)
	traj := d.Run()

	require.Equal(t, 26, traj.Len())
	assert.Equal(t, 25, d.Rejections())
	assert.True(t, d.Done())
	for i := 0; i < traj.Len(); i++ {
		assert.Equal(t, start.Position, traj.At(i).Position)
	}
	// Each tick adds -π/8 from the law and +π/4 from the kick.
	assert.InDelta(t, 25*math.Pi/8, d.Pose().Heading, 1e-9)

	d.Step()
	assert.Equal(t, 25, d.Tick(), "Step after the horizon is a no-op")
	assert.Equal(t, 26, d.Trajectory().Len())
}

func TestDriverResetAndZeroHorizon(t *testing.T) {
	kin := Kinematics{Speed: 0.01, Boundary: openPlane{}, WrapHeading: true}
	d := New(DriverConfig{Horizon: 0}, fixedSensors{}, Steering{Mode: Aggression, TurnAngle: 1}, kin)
	d.Reset(Pose{Position: r2.Vec{X: 0.2, Y: 0.2}})
	assert.True(t, d.Done())
	assert.Equal(t, 1, d.Run().Len())

	d = New(DriverConfig{Horizon: 3}, fixedSensors{}, Steering{Mode: Aggression, TurnAngle: 1}, kin)
	d.Reset(Pose{Position: r2.Vec{X: 0.2, Y: 0.2}})
	first := d.Run()
	d.Reset(Pose{Position: r2.Vec{X: 0.2, Y: 0.2}})
	second := d.Run()

	if diff := cmp.Diff(first.Poses(), second.Poses(), cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("reset run differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.Zero(t, d.Rejections())
	assert.Equal(t, Aggression, d.Mode())
}

func TestTrajectoryAccessorsCopy(t *testing.T) {
	kin := Kinematics{Speed: 0.1, Boundary: openPlane{}}
	d := New(DriverConfig{Horizon: 2}, fixedSensors{}, Steering{Mode: Avoidance}, kin)
	d.Reset(Pose{})
	traj := d.Run()

	poses := traj.Poses()
	poses[0].Position.X = 42
	assert.Zero(t, traj.At(0).Position.X, "Poses returns a copy")

	pts := traj.Points()
	require.Len(t, pts, 3)
	assert.Equal(t, traj.Last().Position, pts[2])
	assert.NotEqual(t, Fingerprint(pts[:2]), Fingerprint(pts))
	assert.Equal(t, Pose{}, Trajectory{}.Last())
}

func TestDriverLogsRejections(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	kin := Kinematics{Speed: 0.01, Boundary: rejectAll{}, BounceKick: math.Pi / 4}
	d := New(DriverConfig{Horizon: 3}, fixedSensors{}, Steering{Mode: Avoidance}, kin, WithLogger(zap.New(core)))
	d.Reset(Pose{Position: r2.Vec{X: 0.5, Y: 0.5}})
	d.Run()

	assert.Equal(t, 3, logs.FilterMessage("move rejected").Len())
	require.Equal(t, 1, logs.FilterMessage("horizon reached").Len())
	entry := logs.FilterMessage("horizon reached").All()[0]
	assert.Equal(t, int64(3), entry.ContextMap()["rejections"])
}

func TestFieldSensorGeometry(t *testing.T) {
	field := world.NewLightField(r2.Vec{X: 0.5, Y: 0.5})
	s := FieldSensors{Field: field, Angle: math.Pi / 4, Radius: 0.05}
	pose := Pose{Position: r2.Vec{X: 0.98, Y: 0.01}, Heading: 0}

	left, right := s.Points(pose)
	off := 0.05 * math.Sqrt2 / 2
	assert.InDelta(t, world.Wrap(r2.Vec{X: 0.98 + off}).X, left.X, 1e-12)
	assert.InDelta(t, 0.01+off, left.Y, 1e-12)
	assert.InDelta(t, 1+0.01-off, right.Y, 1e-12, "right sensor wraps below zero")

	r := s.Read(pose)
	assert.InDelta(t, field.Intensity(left), r.Left, 1e-12)
	assert.InDelta(t, field.Intensity(right), r.Right, 1e-12)
	assert.Zero(t, r.Center)
}

func TestRaySensorsCastFromVehicle(t *testing.T) {
	m := world.NewObstacleMap(1000, []world.Rect{{X0: 620, X1: 623, Y0: 0, Y1: 1000}})
	s := RaySensors{Map: m, Angle: math.Pi / 4, MaxDist: 0.15, Step: 0.001}
	r := s.Read(Pose{Position: r2.Vec{X: 0.5, Y: 0.5}})
	assert.InDelta(t, 0.12, r.Center, 0.0015)
	assert.Equal(t, 0.15, r.Left, "diagonal ray ends near x=0.606, short of the wall")
	assert.Equal(t, 0.15, r.Right)
}
