package trajectory

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Params are the fixed shape parameters of the launch trajectory. The curve is
// anchored at the pad and climbs, arcs sideways, and pushes forward (-Z) as
// the progress variable runs from 0 to 1.
type Params struct {
	// Anchor is the world-space launch point; all offsets are relative to it.
	Anchor mgl32.Vec3
	// AccelPhase is the duration in seconds of the quadratic ease-in. Beyond
	// it, progress grows linearly (constant speed).
	AccelPhase float32
	// MaxForward is the total forward (-Z) travel at progress 1.
	MaxForward float32
	// MaxHeight scales the vertical climb curve.
	MaxHeight float32
	// CurveFactor scales the lateral sine arc as a fraction of MaxForward.
	CurveFactor float32
}

// DefaultParams returns the launch profile used by the visualizer:
// 3 s acceleration phase, 300 units forward, 200 units height, 0.15 curve.
func DefaultParams(anchor mgl32.Vec3) Params {
	return Params{
		Anchor:      anchor,
		AccelPhase:  3.0,
		MaxForward:  300.0,
		MaxHeight:   200.0,
		CurveFactor: 0.15,
	}
}

// Sample is one coherent trajectory evaluation: position, normalized velocity
// direction, and the rotation aligning the vehicle's +Y axis with that same
// velocity. Velocity is the zero vector when speed is below velocityEpsilon.
type Sample struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Rotation mgl32.Mat4
}

// velocityEpsilon: below this raw speed the direction is undefined and the
// rotation falls back to identity.
const velocityEpsilon = 1e-3

// At evaluates the trajectory at elapsed seconds since launch. It is a pure
// function: the same elapsed time always yields the same sample.
//
// Progress follows a two-phase speed law. During the acceleration phase it is
// quadratic in time (constant acceleration); afterwards it grows linearly
// (constant speed). Progress is clamped to [0,1] before it enters the shape
// functions, so the position holds at the endpoint once the curve is spent
// while the clock keeps running. The velocity direction is the analytic
// derivative of the shape functions, chained through the phase law, and is
// deliberately evaluated with the unclamped phase derivative so the terminal
// orientation holds steady rather than collapsing to zero.
func (p Params) At(elapsed float32) Sample {
	if elapsed < 0 {
		elapsed = 0
	}

	// Two-phase progress and its time derivative.
	var progress, dProgress float32
	if elapsed < p.AccelPhase {
		tn := elapsed / p.AccelPhase
		progress = tn * tn
		dProgress = 2 * tn / p.AccelPhase
	} else {
		progress = elapsed / p.AccelPhase
		dProgress = 1 / p.AccelPhase
	}
	t := mgl32.Clamp(progress, 0, 1)

	// Shape functions over clamped progress.
	height := p.MaxHeight * t * (1 - 0.4*t)
	forward := p.MaxForward * t * t * t
	lateral := p.MaxForward * p.CurveFactor * math32.Sin(t*math32.Pi/2)

	pos := p.Anchor.Add(mgl32.Vec3{lateral, height, -forward})

	// Chain-rule derivatives with respect to real time.
	dHeight := p.MaxHeight * (1 - 0.8*t) * dProgress
	dForward := 3 * p.MaxForward * t * t * dProgress
	dLateral := p.MaxForward * p.CurveFactor * math32.Cos(t*math32.Pi/2) * (math32.Pi / 2) * dProgress

	raw := mgl32.Vec3{dLateral, dHeight, -dForward}

	var dir mgl32.Vec3
	rot := mgl32.Ident4()
	if raw.Len() >= velocityEpsilon {
		dir = raw.Normalize()
		rot = alignY(dir)
	}

	return Sample{Position: pos, Velocity: dir, Rotation: rot}
}

// Transform returns the vehicle's world transform for the sample:
// translation to the sampled position composed with the sampled rotation.
func (s Sample) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(s.Position.X(), s.Position.Y(), s.Position.Z()).Mul4(s.Rotation)
}
