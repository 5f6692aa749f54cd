package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"braitenberg/internal/core"
	"braitenberg/internal/scenario"
)

// Config represents the command-line parameters shared by the tools.
type Config struct {
	Sim       string
	Seed      int64
	Scenario  string
	Set       Overrides
	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "aggression", Seed: 42, Set: Overrides{}, LogLevel: "info", LogFormat: "console"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: "+strings.Join(core.Names(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial heading")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "YAML scenario file; its sim and seed win over -sim and -seed")
	fs.Var(c.Set, "set", "override a sim parameter as key=value (repeatable)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "console or json")
}

// Build resolves the sim name and parameter map and constructs the sim. Values
// from -set are applied on top of the scenario file.
func (c *Config) Build(logger *zap.Logger) (core.Sim, error) {
	s, err := c.Resolve()
	if err != nil {
		return nil, err
	}
	return s.Build(logger)
}

// Resolve merges the scenario file, the -sim and -seed flags and the -set
// overrides into a single scenario. c.Sim and c.Seed are updated to match.
func (c *Config) Resolve() (*scenario.Scenario, error) {
	s := &scenario.Scenario{Sim: c.Sim, Seed: c.Seed}
	if c.Scenario != "" {
		loaded, err := scenario.Load(c.Scenario)
		if err != nil {
			return nil, err
		}
		s = loaded
		if s.Seed == 0 {
			s.Seed = c.Seed
		}
	}
	if s.Params == nil {
		s.Params = map[string]any{}
	}
	for k, v := range c.Set {
		s.Params[k] = v
	}
	c.Sim = s.Sim
	c.Seed = s.Seed
	if _, ok := core.Sims()[s.Sim]; !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", scenario.ErrUnknownSim, s.Sim, core.Names())
	}
	return s, nil
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("want key=value, got %q", v)
	}
	o[key] = value
	return nil
}
