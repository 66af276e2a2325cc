package engineconfig

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"launch-sim/internal/particles"
	"launch-sim/internal/trajectory"
)

// TuningPath is the optional launch-tuning YAML file, relative to the process
// working directory.
const TuningPath = "config/launch.yaml"

// Tuning bundles the adjustable launch numbers: trajectory shape and exhaust
// emitter ranges. A partial file only overrides the fields it names; omitted
// fields keep their defaults.
type Tuning struct {
	Trajectory TrajectoryTuning `yaml:"trajectory"`
	Exhaust    ExhaustTuning    `yaml:"exhaust"`
}

// TrajectoryTuning mirrors trajectory.Params minus the anchor, which comes
// from pad placement rather than configuration.
type TrajectoryTuning struct {
	AccelPhase  float32 `yaml:"accel_phase"`
	MaxForward  float32 `yaml:"max_forward"`
	MaxHeight   float32 `yaml:"max_height"`
	CurveFactor float32 `yaml:"curve_factor"`
}

// ExhaustTuning mirrors particles.Config minus the cone direction, which is
// always straight down out of the nozzle.
type ExhaustTuning struct {
	Capacity int     `yaml:"capacity"`
	Rate     float32 `yaml:"rate"`
	MinLife  float32 `yaml:"min_life"`
	MaxLife  float32 `yaml:"max_life"`
	MinSize  float32 `yaml:"min_size"`
	MaxSize  float32 `yaml:"max_size"`
	MinSpeed float32 `yaml:"min_speed"`
	MaxSpeed float32 `yaml:"max_speed"`
	Spread   float32 `yaml:"spread"`
}

// DefaultTuning returns the stock launch profile.
func DefaultTuning() Tuning {
	tp := trajectory.DefaultParams(mgl32.Vec3{})
	pc := particles.DefaultConfig()
	return Tuning{
		Trajectory: TrajectoryTuning{
			AccelPhase:  tp.AccelPhase,
			MaxForward:  tp.MaxForward,
			MaxHeight:   tp.MaxHeight,
			CurveFactor: tp.CurveFactor,
		},
		Exhaust: ExhaustTuning{
			Capacity: pc.Capacity,
			Rate:     pc.Rate,
			MinLife:  pc.MinLife,
			MaxLife:  pc.MaxLife,
			MinSize:  pc.MinSize,
			MaxSize:  pc.MaxSize,
			MinSpeed: pc.MinSpeed,
			MaxSpeed: pc.MaxSpeed,
			Spread:   pc.Spread,
		},
	}
}

// LoadTuning reads config/launch.yaml. Missing or invalid files yield the
// defaults.
func LoadTuning() Tuning {
	return LoadTuningFile(TuningPath)
}

// tuningFile is the on-disk shape. Pointer fields distinguish "absent" from
// an explicit zero, so values like curve_factor: 0 take effect.
type tuningFile struct {
	Trajectory struct {
		AccelPhase  *float32 `yaml:"accel_phase"`
		MaxForward  *float32 `yaml:"max_forward"`
		MaxHeight   *float32 `yaml:"max_height"`
		CurveFactor *float32 `yaml:"curve_factor"`
	} `yaml:"trajectory"`
	Exhaust struct {
		Capacity *int     `yaml:"capacity"`
		Rate     *float32 `yaml:"rate"`
		MinLife  *float32 `yaml:"min_life"`
		MaxLife  *float32 `yaml:"max_life"`
		MinSize  *float32 `yaml:"min_size"`
		MaxSize  *float32 `yaml:"max_size"`
		MinSpeed *float32 `yaml:"min_speed"`
		MaxSpeed *float32 `yaml:"max_speed"`
		Spread   *float32 `yaml:"spread"`
	} `yaml:"exhaust"`
}

// LoadTuningFile reads a tuning file from an explicit path, filling omitted
// fields from the defaults.
func LoadTuningFile(path string) Tuning {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var loaded tuningFile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return t
	}
	mergeFloat(&t.Trajectory.AccelPhase, loaded.Trajectory.AccelPhase)
	mergeFloat(&t.Trajectory.MaxForward, loaded.Trajectory.MaxForward)
	mergeFloat(&t.Trajectory.MaxHeight, loaded.Trajectory.MaxHeight)
	mergeFloat(&t.Trajectory.CurveFactor, loaded.Trajectory.CurveFactor)

	if loaded.Exhaust.Capacity != nil {
		t.Exhaust.Capacity = *loaded.Exhaust.Capacity
	}
	mergeFloat(&t.Exhaust.Rate, loaded.Exhaust.Rate)
	mergeFloat(&t.Exhaust.MinLife, loaded.Exhaust.MinLife)
	mergeFloat(&t.Exhaust.MaxLife, loaded.Exhaust.MaxLife)
	mergeFloat(&t.Exhaust.MinSize, loaded.Exhaust.MinSize)
	mergeFloat(&t.Exhaust.MaxSize, loaded.Exhaust.MaxSize)
	mergeFloat(&t.Exhaust.MinSpeed, loaded.Exhaust.MinSpeed)
	mergeFloat(&t.Exhaust.MaxSpeed, loaded.Exhaust.MaxSpeed)
	mergeFloat(&t.Exhaust.Spread, loaded.Exhaust.Spread)
	return t
}

func mergeFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

// TrajectoryParams builds the trajectory parameters for a launch anchored at
// anchor.
func (t Tuning) TrajectoryParams(anchor mgl32.Vec3) trajectory.Params {
	return trajectory.Params{
		Anchor:      anchor,
		AccelPhase:  t.Trajectory.AccelPhase,
		MaxForward:  t.Trajectory.MaxForward,
		MaxHeight:   t.Trajectory.MaxHeight,
		CurveFactor: t.Trajectory.CurveFactor,
	}
}

// ParticleConfig builds the exhaust emitter configuration.
func (t Tuning) ParticleConfig() particles.Config {
	return particles.Config{
		Capacity:  t.Exhaust.Capacity,
		Rate:      t.Exhaust.Rate,
		MinLife:   t.Exhaust.MinLife,
		MaxLife:   t.Exhaust.MaxLife,
		MinSize:   t.Exhaust.MinSize,
		MaxSize:   t.Exhaust.MaxSize,
		MinSpeed:  t.Exhaust.MinSpeed,
		MaxSpeed:  t.Exhaust.MaxSpeed,
		Direction: mgl32.Vec3{0, -1, 0},
		Spread:    t.Exhaust.Spread,
	}
}
