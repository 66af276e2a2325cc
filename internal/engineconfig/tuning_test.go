package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningFileMissingYieldsDefaults(t *testing.T) {
	got := LoadTuningFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, DefaultTuning(), got)
}

func TestLoadTuningFileInvalidYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::"), 0644))
	assert.Equal(t, DefaultTuning(), LoadTuningFile(path))
}

func TestLoadTuningFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	doc := `
trajectory:
  max_height: 500
exhaust:
  rate: 250
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	got := LoadTuningFile(path)
	want := DefaultTuning()
	assert.Equal(t, float32(500), got.Trajectory.MaxHeight)
	assert.Equal(t, float32(250), got.Exhaust.Rate)
	// Everything not named keeps its default.
	assert.Equal(t, want.Trajectory.AccelPhase, got.Trajectory.AccelPhase)
	assert.Equal(t, want.Exhaust.Capacity, got.Exhaust.Capacity)
	assert.Equal(t, want.Exhaust.MinLife, got.Exhaust.MinLife)
}

func TestLoadTuningFileExplicitZeroOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	doc := `
trajectory:
  curve_factor: 0
exhaust:
  spread: 0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	got := LoadTuningFile(path)
	// Zero is a valid setting: a straight ascent and a pencil exhaust.
	assert.Equal(t, float32(0), got.Trajectory.CurveFactor)
	assert.Equal(t, float32(0), got.Exhaust.Spread)
	// Unnamed fields still keep their defaults.
	want := DefaultTuning()
	assert.Equal(t, want.Trajectory.MaxHeight, got.Trajectory.MaxHeight)
	assert.Equal(t, want.Exhaust.Rate, got.Exhaust.Rate)
}

func TestTrajectoryParamsCarriesAnchor(t *testing.T) {
	anchor := mgl32.Vec3{75, 0.5, 20}
	p := DefaultTuning().TrajectoryParams(anchor)
	assert.Equal(t, anchor, p.Anchor)
	assert.Equal(t, float32(3.0), p.AccelPhase)
	assert.Equal(t, float32(300), p.MaxForward)
}

func TestParticleConfigPointsDown(t *testing.T) {
	cfg := DefaultTuning().ParticleConfig()
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, cfg.Direction)
	assert.Greater(t, cfg.Capacity, 0)
}
