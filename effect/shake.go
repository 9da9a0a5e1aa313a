package effect

import (
	"math"

	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/f32"
)

type ShakeMode uint8

const (
	ShakeHorizontal ShakeMode = iota
	ShakeVertical
	ShakeDiagonal

	numShakeModes
)

var shakeModeNames = []string{
	ShakeHorizontal: "ShakeHorizontal",
	ShakeVertical:   "ShakeVertical",
	ShakeDiagonal:   "ShakeDiagonal",
}

func (m ShakeMode) Valid() bool    { return m < numShakeModes }
func (m ShakeMode) String() string { return modeString(shakeModeNames, "ShakeMode", m) }

func (m ShakeMode) MarshalText() ([]byte, error) {
	return modeText(shakeModeNames, "ShakeMode", m)
}

func (m *ShakeMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[ShakeMode](shakeModeNames, "ShakeMode", b)
	return err
}

// Unit axes, so distance is always the length of the displacement.
var shakeAxes = [numShakeModes]f32.Point{
	ShakeHorizontal: {X: 1},
	ShakeVertical:   {Y: 1},
	ShakeDiagonal:   {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
}

// Shake rattles a point back and forth around its start position. A run
// consists of times full oscillations; each half oscillation ramps out to
// distance and back, alternating sides. The run ends where it started.
type Shake struct {
	animation.Animation[f32.Point]

	mode     ShakeMode
	distance float64
	times    int
}

func NewShake(clock animation.Clock, mode ShakeMode, duration, distance float64, times int) (*Shake, error) {
	if !mode.Valid() {
		return nil, invalidMode("shake", mode)
	}
	s := &Shake{mode: mode, distance: distance, times: max(times, 1)}
	s.Animation = animation.New(clock, duration, f32.Point{}, s.compute)
	return s, nil
}

func (s *Shake) Mode() ShakeMode { return s.mode }

func (s *Shake) compute(start f32.Point, t, d float64) f32.Point {
	off := float32(s.offset(t, d))
	return start.Add(shakeAxes[s.mode].Mul(off))
}

// offset is a triangle wave over 2*times half cycles.
func (s *Shake) offset(t, d float64) float64 {
	if d <= 0 || t <= 0 || t >= d {
		return 0
	}
	half := d / float64(2*s.times)
	k := math.Floor(t / half)
	p := t/half - k
	var mag float64
	if p < 0.5 {
		mag = animation.RampByDelta(p, 0, s.distance, 0.5)
	} else {
		mag = animation.InverseLinear(p-0.5, s.distance, 0.5)
	}
	if int(k)%2 == 1 {
		return -mag
	}
	return mag
}
