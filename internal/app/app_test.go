package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braitenberg/internal/scenario"
	_ "braitenberg/internal/sims/avoidance"
	_ "braitenberg/internal/sims/phototaxis"
)

func TestBindAndBuildFromFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-sim", "fear", "-seed", "9", "-set", "horizon=12", "-set", "speed=0.02"}))

	assert.Equal(t, "horizon=12,speed=0.02", cfg.Set.String())

	sim, err := cfg.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, "fear", sim.Name())

	summary, path := Run(sim, cfg.Seed)
	assert.Len(t, path, 13)
	assert.Equal(t, 12, summary.Ticks)
	assert.Equal(t, int64(9), summary.Seed)
	assert.Equal(t, path[0], summary.Start)
	assert.Equal(t, path[12], summary.Final)
	assert.Zero(t, summary.Rejections)
	assert.NotZero(t, summary.Fingerprint)
	assert.Len(t, summary.Fields(), 10)

	again, _ := Run(sim, cfg.Seed)
	assert.Equal(t, summary, again, "rerunning the same seed reproduces the summary")
}

func TestBuildFromScenarioWithOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walls.yml")
	doc := "sim: avoidance\nparams:\n  horizon: 30\n  grid_size: 200\nobstacles: []\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := NewConfig()
	cfg.Scenario = path
	cfg.Set["horizon"] = "7"

	sim, err := cfg.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, "avoidance", cfg.Sim)
	assert.Equal(t, int64(42), cfg.Seed, "scenario without seed keeps the flag seed")

	p, ok := sim.Parameters().Lookup("obstacles")
	require.True(t, ok)
	assert.Equal(t, "none", p.Value)

	summary, _ := Run(sim, cfg.Seed)
	assert.Equal(t, 7, summary.Ticks, "-set wins over the scenario file")
}

func TestBuildErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "curious"
	_, err := cfg.Build(nil)
	assert.ErrorIs(t, err, scenario.ErrUnknownSim)

	cfg = NewConfig()
	cfg.Scenario = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Build(nil)
	assert.Error(t, err)
}

func TestResolveLeavesConstructionToCaller(t *testing.T) {
	cfg := NewConfig()
	cfg.Set["horizon"] = "4"
	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "aggression", s.Sim)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "4", s.Config()["horizon"])

	a, err := s.Build(nil)
	require.NoError(t, err)
	b, err := s.Build(nil)
	require.NoError(t, err)
	first, _ := Run(a, 3)
	second, _ := Run(b, 3)
	assert.Equal(t, first, second)
}

func TestOverridesRejectMalformed(t *testing.T) {
	o := Overrides{}
	assert.Error(t, o.Set("horizon"))
	assert.Error(t, o.Set("=5"))
	require.NoError(t, o.Set("obstacles=0:1:2:3"))
	assert.Equal(t, "0:1:2:3", o["obstacles"])
}
