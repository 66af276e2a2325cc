package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-sim/internal/trajectory"
)

var padAnchor = mgl32.Vec3{75, -1, 20}

func newTestController() (*Controller, *Camera) {
	cam := New()
	cam.Position = mgl32.Vec3{0, 100, 200}
	return NewController(cam, padAnchor), cam
}

func sampleAt(elapsed float32) trajectory.Sample {
	return trajectory.DefaultParams(padAnchor).At(elapsed)
}

func TestCycleOrder(t *testing.T) {
	ctl, _ := newTestController()
	assert.Equal(t, ModeFree, ctl.Mode())
	assert.Equal(t, ModeFollow, ctl.Cycle())
	assert.Equal(t, ModeGround, ctl.Cycle())
	assert.Equal(t, ModeFree, ctl.Cycle())
	assert.Equal(t, ModeFollow, ctl.Cycle())
}

func TestFreePoseRestoredAfterFullCycle(t *testing.T) {
	ctl, cam := newTestController()

	// Fly somewhere first so the pose is non-trivial.
	ctl.Update(0.5, Input{Forward: true, Up: true}, sampleAt(0))
	ctl.Update(0.1, Input{MouseDX: 40, MouseDY: -25, Captured: true}, sampleAt(0))
	want := *cam

	ctl.Cycle() // follow
	for i := 0; i < 30; i++ {
		ctl.Update(0.016, Input{}, sampleAt(float32(i)*0.016))
	}
	ctl.Cycle() // ground
	for i := 0; i < 30; i++ {
		ctl.Update(0.016, Input{}, sampleAt(2+float32(i)*0.016))
	}
	ctl.Cycle() // back to free

	assert.Equal(t, want, *cam, "free pose must be restored exactly")
}

func TestTrackingModesIgnoreInput(t *testing.T) {
	ctl, cam := newTestController()
	ctl.Cycle()
	s := sampleAt(1.5)

	ctl.Update(0.016, Input{}, s)
	posNoInput := cam.Position
	ctl.Update(0.016, Input{Forward: true, Boost: true, MouseDX: 500, Captured: true}, s)
	assert.Equal(t, posNoInput, cam.Position, "follow pose is derived, not integrated")
}

func TestFollowPoseFormula(t *testing.T) {
	ctl, cam := newTestController()
	ctl.Cycle()
	s := sampleAt(2.0)
	ctl.Update(0.016, Input{}, s)

	fwd := s.Rotation.Col(2).Vec3().Mul(-1)
	up := s.Rotation.Col(1).Vec3()
	want := s.Position.Sub(fwd.Mul(followDistance)).Add(up.Mul(followHeight))
	assert.Equal(t, want, cam.Position)

	// Camera faces the vehicle.
	toVehicle := s.Position.Sub(cam.Position).Normalize()
	assert.InDelta(t, 1, toVehicle.Dot(cam.Forward()), eps)
}

func TestGroundObserverStaysAtPad(t *testing.T) {
	ctl, cam := newTestController()
	ctl.Cycle()
	ctl.Cycle()
	require.Equal(t, ModeGround, ctl.Mode())

	fixed := padAnchor.Add(groundOffset)
	for _, elapsed := range []float32{0, 1, 3, 10} {
		s := sampleAt(elapsed)
		ctl.Update(0.016, Input{}, s)
		assert.Equal(t, fixed, cam.Position, "elapsed=%v", elapsed)

		toVehicle := s.Position.Sub(cam.Position).Normalize()
		assert.InDelta(t, 1, toVehicle.Dot(cam.Forward()), eps, "elapsed=%v", elapsed)
	}
}

func TestSnapshotTracksFreeFlight(t *testing.T) {
	ctl, cam := newTestController()
	ctl.Update(1.0, Input{Forward: true}, sampleAt(0))
	assert.Equal(t, *cam, ctl.SavedFree(), "snapshot refreshed while free")
}
