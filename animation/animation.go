package animation

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Progress maps elapsed time to the normalized range [0, 1]. A non-positive
// duration is always complete.
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	} else if elapsed <= 0 {
		return 0
	} else {
		return elapsed / duration
	}
}

func Lerp[T constraints.Integer | constraints.Float](start, end T, t float64) T {
	switch t {
	case 0:
		return start
	case 1:
		return end
	default:
		return T(float64(start) + (float64(end)-float64(start))*t)
	}
}

// Round rounds v to the nearest integer of type T.
func Round[T constraints.Integer](v float64) T {
	return T(math.Round(v))
}

// Narrow rounds v to the nearest integer and clamps it to [lo, hi]. It is
// how effects convert curve output, which may overshoot, into byte-sized
// color channels.
func Narrow[T constraints.Integer](v float64, lo, hi T) T {
	v = math.Round(v)
	if v <= float64(lo) || math.IsNaN(v) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return T(v)
}

// stopped is the start time of a core that is not running. Any duration
// added to it stays in the past of every clock reading.
var stopped = math.Inf(-1)

// Core is the lifecycle shared by all animations: a fixed duration and the
// clock reading at which the current run began.
type Core struct {
	clock    Clock
	duration float64
	start    float64
}

func NewCore(clock Clock, duration float64) Core {
	return Core{
		clock:    clock,
		duration: duration,
		start:    stopped,
	}
}

func (c *Core) Duration() float64 { return c.duration }

func (c *Core) Clock() Clock { return c.clock }

// IsWorking reports whether the current run has not yet expired. Cores that
// were never started, were stopped, or have a non-positive duration are
// never working.
func (c *Core) IsWorking() bool {
	return c.start+c.duration > c.clock.Now()
}

// Start begins a new run at the current clock reading, abandoning any run
// in progress.
func (c *Core) Start() {
	if c.IsWorking() {
		c.Stop()
	}
	c.start = c.clock.Now()
}

// Stop abandons the current run. IsWorking reports false afterwards.
func (c *Core) Stop() {
	c.start = stopped
}

// Elapsed returns the time since the run started, clamped to
// [0, Duration].
func (c *Core) Elapsed() float64 {
	if c.duration <= 0 {
		return 0
	}
	return min(max(c.clock.Now()-c.start, 0), c.duration)
}

type valueState uint8

const (
	// idle: never started. Value reports the initial value.
	idle valueState = iota
	// running: started and not yet frozen. last is valid once evaluated is set.
	running
	// frozen: the run is over and last is the terminal value.
	frozen
)

// Compute maps a start value and the elapsed time of a run to the current
// value of a property.
type Compute[T any] func(start T, elapsed, duration float64) T

// Animation tracks a single property value over runs of a Core. It is not
// safe for concurrent use.
type Animation[T any] struct {
	Core

	compute   Compute[T]
	start     T
	last      T
	state     valueState
	evaluated bool
}

// New returns an animation that reports initial until it is first started.
func New[T any](clock Clock, duration float64, initial T, compute Compute[T]) Animation[T] {
	return Animation[T]{
		Core:    NewCore(clock, duration),
		compute: compute,
		start:   initial,
	}
}

// Start begins a new run from v. A run that is still working is stopped
// first and its value discarded.
func (a *Animation[T]) Start(v T) {
	a.Core.Start()
	a.start = v
	a.state = running
	a.evaluated = false
}

// Reset abandons any run and makes v the value reported until the next
// Start.
func (a *Animation[T]) Reset(v T) {
	a.Core.Stop()
	a.start = v
	a.state = idle
	a.evaluated = false
}

// StartValue returns the value the current or most recent run started from.
func (a *Animation[T]) StartValue() T { return a.start }

// Value returns the current value of the property. While the run is working
// the value is recomputed on every call. Once the run expires, the value at
// the end of the run is computed once and returned until the next Start.
func (a *Animation[T]) Value() T {
	switch a.state {
	case idle:
		return a.start
	case frozen:
		return a.last
	case running:
		if a.IsWorking() {
			a.last = a.compute(a.start, a.Elapsed(), a.duration)
			a.evaluated = true
			return a.last
		}
		a.freezeAtEnd()
		return a.last
	default:
		panic("unreachable")
	}
}

func (a *Animation[T]) freezeAtEnd() {
	a.last = a.compute(a.start, a.duration, a.duration)
	a.state = frozen
}

// Stop abandons the current run and freezes the last computed value, or
// the start value if none was computed. A run that already expired
// freezes at its end value instead.
func (a *Animation[T]) Stop() {
	if a.state == running {
		if !a.IsWorking() {
			a.freezeAtEnd()
		} else {
			if !a.evaluated {
				a.last = a.start
			}
			a.state = frozen
		}
	}
	a.Core.Stop()
}

// Frozen reports whether the value no longer changes until the next Start.
func (a *Animation[T]) Frozen() bool {
	if a.state == running && !a.IsWorking() {
		a.freezeAtEnd()
	}
	return a.state != running
}
