package particles

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	return cfg
}

// run steps the system with a fixed frame time for the given duration and
// returns the total simulated seconds.
func run(s *System, duration, dt float32, emitting bool) {
	for elapsed := float32(0); elapsed < duration; elapsed += dt {
		s.Update(dt, mgl32.Vec3{}, emitting)
	}
}

func TestEmissionRateIsFrameRateIndependent(t *testing.T) {
	// Emitting for 2 s at 100/s must come out at ~200 spawned particles no
	// matter the frame step. Lifetimes exceed the run so nothing expires.
	for _, dt := range []float32{0.004, 1.0 / 60.0, 0.033} {
		cfg := testConfig()
		cfg.MinLife = 10
		cfg.MaxLife = 10
		s := NewSystem(cfg)
		run(s, 2.0, dt, true)
		assert.InDelta(t, 200, s.ActiveCount(), 1.5, "dt=%v", dt)
	}
}

func TestAccumulatorStaysFractional(t *testing.T) {
	cfg := testConfig()
	s := NewSystem(cfg)
	for i := 0; i < 500; i++ {
		s.Update(0.0137, mgl32.Vec3{}, true)
		acc := s.Accumulator()
		require.GreaterOrEqual(t, acc, float32(0))
		require.Less(t, acc, float32(1))
	}
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity = 50
	cfg.Rate = 10000
	cfg.MinLife = 100
	cfg.MaxLife = 100
	s := NewSystem(cfg)

	run(s, 1.0, 0.016, true)
	assert.Equal(t, 50, s.ActiveCount())
	assert.Equal(t, 50, s.Capacity())

	// Exhaustion is silent; further updates keep working.
	s.Update(0.016, mgl32.Vec3{}, true)
	assert.Equal(t, 50, s.ActiveCount())
}

func TestExpiredSlotsAreReused(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity = 10
	cfg.Rate = 5
	cfg.MinLife = 0.1
	cfg.MaxLife = 0.2
	s := NewSystem(cfg)

	// Far more than 10 particles' worth of emission; recycling keeps the
	// pool bounded without ever running dry.
	run(s, 10, 0.05, true)
	assert.LessOrEqual(t, s.ActiveCount(), 10)
	assert.Greater(t, s.ActiveCount(), 0)
}

func TestNoEmissionWhenNotEmitting(t *testing.T) {
	s := NewSystem(testConfig())
	run(s, 1.0, 0.016, false)
	assert.Equal(t, 0, s.ActiveCount())
	assert.Equal(t, float32(0), s.Accumulator())
}

func TestAlphaFadesMonotonically(t *testing.T) {
	// Spawn a single particle and watch its alpha across its whole life.
	cfg := testConfig()
	cfg.Rate = 1
	cfg.MinLife = 1
	cfg.MaxLife = 1
	cfg.MinSpeed = 0
	cfg.MaxSpeed = 0
	s := NewSystem(cfg)

	// One second of emission accumulates exactly one particle.
	s.Update(1.0, mgl32.Vec3{}, true)
	require.Equal(t, 1, s.ActiveCount())

	var spawned *Particle
	s.Each(func(p *Particle) { spawned = p })
	require.NotNil(t, spawned)
	assert.Equal(t, float32(1), spawned.Color[3], "full alpha at spawn")

	prev := spawned.Color[3]
	for spawned.Active {
		s.Update(0.05, mgl32.Vec3{}, false)
		if !spawned.Active {
			break
		}
		assert.LessOrEqual(t, spawned.Color[3], prev)
		prev = spawned.Color[3]
	}
}

func TestSpawnedParticlesStartAtOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.MinSpeed = 0
	cfg.MaxSpeed = 0
	s := NewSystem(cfg)
	origin := mgl32.Vec3{45, 120, -300}
	s.Update(0.1, origin, true)

	require.Greater(t, s.ActiveCount(), 0)
	s.Each(func(p *Particle) {
		assert.Equal(t, origin, p.Position)
	})
}

func TestSpawnSamplingWithinConfiguredRanges(t *testing.T) {
	cfg := testConfig()
	s := NewSystem(cfg)
	s.Update(0.5, mgl32.Vec3{}, true)

	require.Greater(t, s.ActiveCount(), 0)
	s.Each(func(p *Particle) {
		speed := p.Velocity.Len()
		assert.GreaterOrEqual(t, speed, cfg.MinSpeed-1e-3)
		assert.LessOrEqual(t, speed, cfg.MaxSpeed+1e-3)
		assert.GreaterOrEqual(t, p.Size, cfg.MinSize)
		assert.LessOrEqual(t, p.Size, cfg.MaxSize)
		assert.LessOrEqual(t, p.Life, cfg.MaxLife)

		// Velocity direction stays inside the emission cone.
		dir := p.Velocity.Normalize()
		angle := math32.Acos(mgl32.Clamp(dir.Dot(cfg.Direction), -1, 1))
		assert.LessOrEqual(t, angle, cfg.Spread+1e-3)
	})
}

func TestConeDirectionIsUnitLength(t *testing.T) {
	s := NewSystem(testConfig())
	for _, axis := range []mgl32.Vec3{
		{0, -1, 0},
		{0, 1, 0},
		{1, 0, 0},
		mgl32.Vec3{0.3, -0.8, 0.1}.Normalize(),
	} {
		for i := 0; i < 100; i++ {
			dir := s.coneDirection(axis, 0.3)
			assert.InDelta(t, 1, dir.Len(), 1e-4)
		}
	}
}

func TestIntegrationMovesParticles(t *testing.T) {
	cfg := testConfig()
	cfg.MinSpeed = 10
	cfg.MaxSpeed = 10
	cfg.MinLife = 5
	cfg.MaxLife = 5
	s := NewSystem(cfg)
	s.Update(0.1, mgl32.Vec3{}, true)
	require.Greater(t, s.ActiveCount(), 0)

	s.Update(1.0, mgl32.Vec3{}, false)
	s.Each(func(p *Particle) {
		assert.InDelta(t, 10, p.Position.Len(), 1e-3, "10 u/s for 1 s")
	})
}
