package game

import "time"

// Clock supplies wall-clock readings for the few cadences that are not frame based
// (weapon cooldowns and sniper drift).
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
