package animation

import "time"

// Clock is a monotonic time source measured in seconds. Values returned by
// Now must never decrease.
type Clock interface {
	Now() float64
}

type ClockFunc func() float64

func (fn ClockFunc) Now() float64 { return fn() }

type monotonicClock struct {
	epoch time.Time
}

// NewMonotonicClock returns a clock counting seconds since its creation,
// derived from the runtime's monotonic clock reading.
func NewMonotonicClock() Clock {
	return monotonicClock{epoch: time.Now()}
}

func (c monotonicClock) Now() float64 {
	return time.Since(c.epoch).Seconds()
}

// ManualClock is a clock that only moves when told to. It is meant for tests
// and for replaying recorded frame times.
type ManualClock struct {
	now float64
}

func (c *ManualClock) Now() float64 { return c.now }

// Set moves the clock to t. Moving backwards is ignored.
func (c *ManualClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.Set(c.now + dt)
}
