package anim

// Clock is the launch animation timer. Elapsed accumulates only while the
// sequence is active and not paused; the frame loop owns the clock and calls
// Advance once per frame before sampling the trajectory.
type Clock struct {
	Active  bool
	Paused  bool
	Elapsed float32
}

// NewClock returns an inactive clock at T=0.
func NewClock() *Clock {
	return &Clock{}
}

// Launch starts the sequence from T=0. If a sequence is already running,
// Launch acts as a pause/resume toggle instead of restarting.
func (c *Clock) Launch() {
	if c.Active {
		c.TogglePause()
		return
	}
	c.Active = true
	c.Paused = false
	c.Elapsed = 0
}

// TogglePause flips the paused flag. Does nothing before launch.
func (c *Clock) TogglePause() {
	if c.Active {
		c.Paused = !c.Paused
	}
}

// Reset returns the clock to its initial state unconditionally.
func (c *Clock) Reset() {
	c.Active = false
	c.Paused = false
	c.Elapsed = 0
}

// Advance adds dt seconds of frame time. Time only accumulates while the
// sequence is active and unpaused.
func (c *Clock) Advance(dt float32) {
	if c.Active && !c.Paused {
		c.Elapsed += dt
	}
}

// Running reports whether time is currently advancing (and hence whether the
// engine exhaust should be emitting).
func (c *Clock) Running() bool {
	return c.Active && !c.Paused
}
