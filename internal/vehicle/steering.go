package vehicle

import "fmt"

// Mode selects the steering law for a whole run.
type Mode uint8

const (
	// Aggression turns toward the brighter side.
	Aggression Mode = iota
	// Fear turns away from the brighter side.
	Fear
	// Avoidance steers away from obstacles seen by range sensors.
	Avoidance
)

var modeNames = [...]string{
	Aggression: "aggression",
	Fear:       "fear",
	Avoidance:  "avoidance",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode maps a mode name to its value.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// WrapsHeading reports whether the heading is reduced mod 2π every tick.
// The light-seeking laws wrap; avoidance lets the heading accumulate.
func (m Mode) WrapsHeading() bool {
	return m == Aggression || m == Fear
}

// Steering maps sensor readings to a heading change.
type Steering struct {
	Mode Mode

	// TurnAngle scales the intensity difference for Aggression and Fear.
	TurnAngle float64

	// MaxDist, HardTurn and GentleTurn parameterise Avoidance.
	MaxDist    float64
	HardTurn   float64
	GentleTurn float64
}

type law func(s Steering, r Reading) float64

var laws = [...]law{
	Aggression: aggressionLaw,
	Fear:       fearLaw,
	Avoidance:  avoidanceLaw,
}

// Delta returns the heading change for one tick.
func (s Steering) Delta(r Reading) float64 {
	if int(s.Mode) >= len(laws) {
		return 0
	}
	return laws[s.Mode](s, r)
}

func aggressionLaw(s Steering, r Reading) float64 {
	return s.TurnAngle * (r.Right - r.Left)
}

func fearLaw(s Steering, r Reading) float64 {
	return s.TurnAngle * (r.Left - r.Right)
}

// avoidanceLaw turns hard toward the roomier side when something is ahead.
// Otherwise it turns gently left when the left reading is the smaller one,
// which is the opposite bias of the hard turn.
func avoidanceLaw(s Steering, r Reading) float64 {
	if r.Center < s.MaxDist {
		if r.Left > r.Right {
			return s.HardTurn
		}
		return -s.HardTurn
	}
	if r.Left < r.Right {
		return s.GentleTurn
	}
	return -s.GentleTurn
}
