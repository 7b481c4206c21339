package game

import "time"

// Clock measures frame time and caps the frame rate by sleeping off the rest
// of each frame's budget.
type Clock struct {
	budget time.Duration
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a clock targeting fps frames per second; fps <= 0
// disables the cap.
func NewClock(fps int) *Clock {
	c := &Clock{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		c.budget = time.Second / time.Duration(fps)
	}
	c.last = c.now()
	return c
}

// Budget returns the target frame duration, zero when uncapped.
func (c *Clock) Budget() time.Duration {
	return c.budget
}

// Tick waits until the frame budget since the previous tick has passed and
// returns the elapsed seconds.
func (c *Clock) Tick() float64 {
	if c.budget > 0 {
		if spent := c.now().Sub(c.last); spent < c.budget {
			c.sleep(c.budget - spent)
		}
	}
	now := c.now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
