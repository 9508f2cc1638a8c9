package playback

import "time"

// Clock tracks elapsed show time against a wall-clock anchor. While running
// the elapsed value is derived from the anchor rather than accumulated from
// ticks, so render frequency never skews it. The zero value is a stopped
// clock at zero elapsed.
//
// Clock is not safe for concurrent use; the service serializes access.
type Clock struct {
	now     func() time.Time
	anchor  time.Time
	frozen  time.Duration
	running bool
}

// NewClock creates a stopped clock at zero elapsed.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Elapsed returns the current elapsed show time.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.frozen
	}
	return c.frozen + c.now().Sub(c.anchor)
}

// Running reports whether the clock is advancing.
func (c *Clock) Running() bool {
	return c.running
}

// Start resumes advancement from the current elapsed value.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.anchor = c.now()
	c.running = true
}

// Stop freezes the clock at its current elapsed value.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.frozen = c.Elapsed()
	c.running = false
}

// SeekTo moves the clock to the given elapsed value, preserving whether it
// is running. Negative values clamp to zero.
func (c *Clock) SeekTo(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.frozen = d
	c.anchor = c.now()
}

// Reset stops the clock and returns it to zero.
func (c *Clock) Reset() {
	c.frozen = 0
	c.running = false
}
