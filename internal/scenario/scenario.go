// Package scenario loads run descriptions from YAML files and turns them into
// registered sims.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"braitenberg/internal/core"
	"braitenberg/internal/world"
)

// ErrUnknownSim is returned when a scenario names a sim that is not registered.
var ErrUnknownSim = errors.New("unknown sim")

const maxFileSize = 1 << 20

// Scenario describes a single run.
//
//	sim: avoidance
//	seed: 42
//	params:
//	  horizon: 2000
//	  speed: 0.01
//	obstacles:
//	  - {x0: 0, x1: 300, y0: 397, y1: 400}
type Scenario struct {
	Sim       string         `yaml:"sim"`
	Seed      int64          `yaml:"seed,omitempty"`
	Params    map[string]any `yaml:"params,omitempty"`
	Obstacles []world.Rect   `yaml:"obstacles,omitempty"`
}

// Decode reads a scenario from YAML. Unknown top-level keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("scenario file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat scenario: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("scenario file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks the sim name, parameter value types and rect extents.
func (s *Scenario) Validate() error {
	if s.Sim == "" {
		return errors.New("scenario: sim is required")
	}
	for k, v := range s.Params {
		if _, err := formatScalar(v); err != nil {
			return fmt.Errorf("scenario: param %q: %w", k, err)
		}
	}
	for i, r := range s.Obstacles {
		if r.X0 < 0 || r.Y0 < 0 || r.X1 <= r.X0 || r.Y1 <= r.Y0 {
			return fmt.Errorf("scenario: obstacle %d %s is empty or negative", i, r)
		}
	}
	return nil
}

// Config flattens the scenario into the key/value map sim factories accept.
// An explicit empty obstacle list becomes "none"; an absent one leaves the
// sim defaults alone.
func (s *Scenario) Config() map[string]string {
	out := make(map[string]string, len(s.Params)+2)
	for k, v := range s.Params {
		if str, err := formatScalar(v); err == nil {
			out[k] = str
		}
	}
	if s.Seed != 0 {
		out["seed"] = strconv.FormatInt(s.Seed, 10)
	}
	if s.Obstacles != nil {
		out["obstacles"] = world.FormatRects(s.Obstacles)
	}
	return out
}

// Build looks the sim up in the registry and constructs it.
func (s *Scenario) Build(logger *zap.Logger) (core.Sim, error) {
	factory, ok := core.Sims()[s.Sim]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownSim, s.Sim, core.Names())
	}
	return factory(s.Config(), logger), nil
}

func formatScalar(v any) (string, error) {
	switch tv := v.(type) {
	case string:
		return tv, nil
	case int:
		return strconv.Itoa(tv), nil
	case int64:
		return strconv.FormatInt(tv, 10), nil
	case uint64:
		return strconv.FormatUint(tv, 10), nil
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(tv), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
