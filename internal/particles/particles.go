package particles

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Particle is one slot in the pool. Slots are allocated once and recycled in
// place; the Active flag is the only lifecycle state.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Color is RGBA; RGB is fixed at spawn and A fades with remaining life.
	Color  mgl32.Vec4
	Life   float32
	Size   float32
	Active bool
}

// Config describes the emitter: pool capacity, emission rate, and the random
// ranges sampled per spawned particle. Direction/Spread define the emission
// cone. Seed == 0 uses a time-based seed.
type Config struct {
	Capacity  int
	Rate      float32
	MinLife   float32
	MaxLife   float32
	MinSize   float32
	MaxSize   float32
	MinSpeed  float32
	MaxSpeed  float32
	Direction mgl32.Vec3
	Spread    float32
	Seed      int64
}

// DefaultConfig returns the engine-exhaust profile: 2000 slots, 100
// particles/s blown downward in a ~17° cone.
func DefaultConfig() Config {
	return Config{
		Capacity:  2000,
		Rate:      100,
		MinLife:   1.0,
		MaxLife:   2.0,
		MinSize:   0.5,
		MaxSize:   1.5,
		MinSpeed:  5,
		MaxSpeed:  15,
		Direction: mgl32.Vec3{0, -1, 0},
		Spread:    0.3,
	}
}

// System is a fixed-capacity particle pool. The frame loop calls Update once
// per frame; rendering iterates the live slots with Each.
type System struct {
	cfg   Config
	pool  []Particle
	accum float32
	rng   *rand.Rand
}

// NewSystem allocates the pool up front. No allocation happens after
// construction; emission reuses expired slots.
func NewSystem(cfg Config) *System {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.Direction.Len() > 0 {
		cfg.Direction = cfg.Direction.Normalize()
	} else {
		cfg.Direction = mgl32.Vec3{0, -1, 0}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &System{
		cfg:  cfg,
		pool: make([]Particle, cfg.Capacity),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Update advances all live particles by dt and, when emitting, spawns new
// ones at origin. Expired slots are freed before emission so they can be
// reused in the same frame.
func (s *System) Update(dt float32, origin mgl32.Vec3, emitting bool) {
	for i := range s.pool {
		p := &s.pool[i]
		if !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Color[3] = p.Life / s.cfg.MaxLife
	}

	if emitting {
		s.emit(dt, origin)
	}
}

// emit spawns floor(accumulator) particles and carries the fractional
// remainder to the next frame, so the long-run rate is independent of frame
// time. Pool exhaustion silently drops the remainder of this frame's batch.
func (s *System) emit(dt float32, origin mgl32.Vec3) {
	s.accum += s.cfg.Rate * dt
	count := int(s.accum)
	s.accum -= float32(count)

	for i := 0; i < count; i++ {
		idx := s.findInactive()
		if idx < 0 {
			break
		}
		p := &s.pool[idx]
		p.Active = true
		p.Position = origin
		p.Life = s.randRange(s.cfg.MinLife, s.cfg.MaxLife)
		p.Size = s.randRange(s.cfg.MinSize, s.cfg.MaxSize)

		dir := s.coneDirection(s.cfg.Direction, s.cfg.Spread)
		p.Velocity = dir.Mul(s.randRange(s.cfg.MinSpeed, s.cfg.MaxSpeed))

		// Warm fire tint, full alpha at spawn.
		p.Color = mgl32.Vec4{
			s.randRange(0.8, 1.0),
			s.randRange(0.5, 0.8),
			s.randRange(0.1, 0.3),
			1.0,
		}
	}
}

// findInactive returns the first free slot index, or -1 when the pool is full.
func (s *System) findInactive() int {
	for i := range s.pool {
		if !s.pool[i].Active {
			return i
		}
	}
	return -1
}

// coneDirection samples a unit vector within spread radians of axis: a random
// polar angle in [0,spread] and azimuth in [0,2π), combined over an
// orthonormal basis built around the axis.
func (s *System) coneDirection(axis mgl32.Vec3, spread float32) mgl32.Vec3 {
	theta := s.randRange(0, spread)
	phi := s.randRange(0, 2*math32.Pi)

	// Seed vector must not be parallel to the axis.
	seed := mgl32.Vec3{0, 1, 0}
	if math32.Abs(axis.Y()) >= 0.9 {
		seed = mgl32.Vec3{1, 0, 0}
	}
	right := seed.Cross(axis).Normalize()
	up := axis.Cross(right).Normalize()

	sinT, cosT := math32.Sincos(theta)
	sinP, cosP := math32.Sincos(phi)

	dir := axis.Mul(cosT).Add(right.Mul(cosP).Add(up.Mul(sinP)).Mul(sinT))
	return dir.Normalize()
}

func (s *System) randRange(min, max float32) float32 {
	return min + s.rng.Float32()*(max-min)
}

// Each calls fn for every live particle, in slot order.
func (s *System) Each(fn func(p *Particle)) {
	for i := range s.pool {
		if s.pool[i].Active {
			fn(&s.pool[i])
		}
	}
}

// ActiveCount returns the number of live particles.
func (s *System) ActiveCount() int {
	n := 0
	for i := range s.pool {
		if s.pool[i].Active {
			n++
		}
	}
	return n
}

// Capacity returns the fixed pool size.
func (s *System) Capacity() int {
	return len(s.pool)
}

// Accumulator exposes the fractional emission remainder; it is always in
// [0,1) after an Update.
func (s *System) Accumulator() float32 {
	return s.accum
}
