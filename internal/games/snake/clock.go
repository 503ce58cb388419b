package snake

import "time"

// Clock is the adaptive tick timer. It accumulates frame time and fires a
// tick whenever a full interval has elapsed, at most once per Advance call.
type Clock struct {
	interval time.Duration
	floor    time.Duration
	elapsed  time.Duration
	paused   bool
	halted   bool
}

// NewClock creates a running clock. floor is the smallest interval SpeedUp
// may reach; it is raised to 1ns if not positive.
func NewClock(interval, floor time.Duration) *Clock {
	floor = max(floor, time.Nanosecond)
	return &Clock{
		interval: max(interval, floor),
		floor:    floor,
	}
}

// Advance adds dt to the accumulator and reports whether a tick fires.
// Leftover time is carried over but kept below one interval, so a long frame
// never produces a burst of catch-up ticks.
func (c *Clock) Advance(dt time.Duration) bool {
	if c.paused || c.halted || dt <= 0 {
		return false
	}
	c.elapsed += dt
	if c.elapsed < c.interval {
		return false
	}
	c.elapsed = (c.elapsed - c.interval) % c.interval
	return true
}

// SpeedUp multiplies the interval by factor, never going below the floor.
func (c *Clock) SpeedUp(factor float64) {
	next := time.Duration(float64(c.interval) * factor)
	c.interval = max(next, c.floor)
	if c.elapsed >= c.interval {
		c.elapsed = c.interval - 1
	}
}

// Pause toggles a user pause. It has no effect once halted.
func (c *Clock) Pause(paused bool) {
	if c.halted {
		return
	}
	c.paused = paused
}

// Halt stops the clock for good.
func (c *Clock) Halt() {
	c.halted = true
	c.paused = true
}

// Interval returns the current tick interval.
func (c *Clock) Interval() time.Duration { return c.interval }

// Paused reports whether ticks are currently suppressed.
func (c *Clock) Paused() bool { return c.paused }

// Halted reports whether the clock was stopped permanently.
func (c *Clock) Halted() bool { return c.halted }
