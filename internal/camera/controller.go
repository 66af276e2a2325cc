package camera

import (
	"github.com/fiathux/genesm"
	"github.com/go-gl/mathgl/mgl32"

	"launch-sim/internal/trajectory"
)

// Mode selects how the live camera pose is derived each frame.
type Mode int

const (
	// ModeFree integrates raw input directly into the camera pose.
	ModeFree Mode = iota
	// ModeFollow chases the vehicle from behind and above.
	ModeFollow
	// ModeGround is a stationary observer at the pad tracking the vehicle.
	ModeGround

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeFollow:
		return "follow"
	case ModeGround:
		return "ground"
	}
	return "unknown"
}

const (
	followDistance = 30.0
	followHeight   = 15.0
)

// groundOffset places the ground observer a short way off the pad.
var groundOffset = mgl32.Vec3{30, 5, 30}

// freeState holds the persistent free-mode data: the saved pose restored when
// cycling back into free mode.
type freeState struct {
	saved Camera
}

type followState struct {
	distance float32
	height   float32
}

type groundState struct {
	offset mgl32.Vec3
}

// Controller drives one camera through the free/follow/ground cycle. The
// mode graph is a genesm state machine with one event per cyclic edge;
// leaving free snapshots the pose and re-entering free restores it, so the
// user's free-fly position never drifts while a tracking mode is active.
type Controller struct {
	live   *Camera
	anchor mgl32.Vec3
	mode   Mode

	free   *freeState
	follow *followState
	ground *groundState

	cycle [modeCount]genesm.Event
}

// NewController wires the mode state machine around live. anchor is the
// launch pad position the ground observer is fixed to.
func NewController(live *Camera, anchor mgl32.Vec3) *Controller {
	ctl := &Controller{
		live:   live,
		anchor: anchor,
		free:   &freeState{saved: *live},
		follow: &followState{distance: followDistance, height: followHeight},
		ground: &groundState{offset: groundOffset},
	}

	sm := genesm.NewStateMachine[*Controller](ctl)
	bFree := genesm.RegState(sm, ctl.free)
	bFollow := genesm.RegState(sm, ctl.follow)
	bGround := genesm.RegState(sm, ctl.ground)

	toFollow := genesm.RegEvent(sm, bFree, bFollow)
	toFollow.SetHook(func(c *Controller, f *freeState, _ *followState) error {
		f.saved = *c.live
		return nil
	})
	toGround := genesm.RegEvent(sm, bFollow, bGround)
	toFree := genesm.RegEvent(sm, bGround, bFree)
	toFree.SetHook(func(c *Controller, _ *groundState, f *freeState) error {
		*c.live = f.saved
		return nil
	})

	ctl.cycle[ModeFree] = toFollow
	ctl.cycle[ModeFollow] = toGround
	ctl.cycle[ModeGround] = toFree
	return ctl
}

// Mode returns the active camera mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Live returns the camera being rendered.
func (c *Controller) Live() *Camera {
	return c.live
}

// SavedFree returns the snapshotted free-fly pose.
func (c *Controller) SavedFree() Camera {
	return c.free.saved
}

// Cycle advances free -> follow -> ground -> free.
func (c *Controller) Cycle() Mode {
	if err := c.cycle[c.mode].Trigger(); err == nil {
		c.mode = (c.mode + 1) % modeCount
	}
	return c.mode
}

// Update derives this frame's camera pose. Free mode integrates input and
// refreshes the saved pose; the tracking modes ignore input entirely and
// derive the pose from the trajectory sample.
func (c *Controller) Update(dt float32, in Input, s trajectory.Sample) {
	switch c.mode {
	case ModeFree:
		c.live.ApplyInput(in, dt)
		c.free.saved = *c.live

	case ModeFollow:
		// Vehicle axes come straight from the sampled rotation columns:
		// local -Z is the chase direction, local +Y the long axis.
		fwd := s.Rotation.Col(2).Vec3().Mul(-1)
		up := s.Rotation.Col(1).Vec3()
		c.live.Position = s.Position.
			Sub(fwd.Mul(c.follow.distance)).
			Add(up.Mul(c.follow.height))
		c.live.LookAt(s.Position)

	case ModeGround:
		c.live.Position = c.anchor.Add(c.ground.offset)
		c.live.LookAt(s.Position)
	}
}
