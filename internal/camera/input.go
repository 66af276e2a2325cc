package camera

// Input carries one frame of raw free-fly input: six movement flags, the two
// speed modifiers, and mouse-drag deltas in pixels. Captured mirrors the
// right-click mouse-capture toggle; drag deltas are ignored while it is off.
type Input struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	Boost, Slow       bool

	MouseDX, MouseDY float32
	Captured         bool
}

const (
	// baseSpeed is the free-fly movement speed in units per second.
	baseSpeed = 20.0
	// boostFactor/slowFactor multiply baseSpeed while Shift/Ctrl are held.
	boostFactor = 3.0
	slowFactor  = 0.2
	// mouseSensitivity converts drag pixels to radians.
	mouseSensitivity = 0.002
)

// ApplyInput integrates one frame of free-fly input into the camera pose.
func (c *Camera) ApplyInput(in Input, dt float32) {
	speed := float32(baseSpeed)
	if in.Boost {
		speed *= boostFactor
	}
	if in.Slow {
		speed *= slowFactor
	}
	distance := speed * dt

	if in.Forward {
		c.MoveForward(distance)
	}
	if in.Backward {
		c.MoveForward(-distance)
	}
	if in.Left {
		c.MoveRight(-distance)
	}
	if in.Right {
		c.MoveRight(distance)
	}
	if in.Up {
		c.MoveUp(distance)
	}
	if in.Down {
		c.MoveUp(-distance)
	}

	if in.Captured {
		c.RotateYaw(in.MouseDX * mouseSensitivity)
		c.RotatePitch(-in.MouseDY * mouseSensitivity)
	}
}
