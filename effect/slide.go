package effect

import (
	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/f32"
)

type SlideMode uint8

const (
	SlideLeft SlideMode = iota
	SlideTop
	SlideRight
	SlideBottom

	numSlideModes
)

var slideModeNames = []string{
	SlideLeft:   "SlideLeft",
	SlideTop:    "SlideTop",
	SlideRight:  "SlideRight",
	SlideBottom: "SlideBottom",
}

func (m SlideMode) Valid() bool    { return m < numSlideModes }
func (m SlideMode) String() string { return modeString(slideModeNames, "SlideMode", m) }

func (m SlideMode) MarshalText() ([]byte, error) {
	return modeText(slideModeNames, "SlideMode", m)
}

func (m *SlideMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[SlideMode](slideModeNames, "SlideMode", b)
	return err
}

// Unit direction of each slide, in screen coordinates.
var slideDirections = [numSlideModes]f32.Point{
	SlideLeft:   {X: -1},
	SlideTop:    {Y: -1},
	SlideRight:  {X: 1},
	SlideBottom: {Y: 1},
}

// Slide moves a point in a fixed direction by up to a fixed distance.
type Slide struct {
	animation.Animation[f32.Point]

	mode     SlideMode
	distance float64
}

func NewSlide(clock animation.Clock, mode SlideMode, duration, distance float64) (*Slide, error) {
	if !mode.Valid() {
		return nil, invalidMode("slide", mode)
	}
	s := &Slide{mode: mode, distance: distance}
	s.Animation = animation.New(clock, duration, f32.Point{}, s.compute)
	return s, nil
}

func (s *Slide) Mode() SlideMode { return s.mode }

func (s *Slide) Distance() float64 { return s.distance }

func (s *Slide) compute(start f32.Point, t, d float64) f32.Point {
	off := float32(animation.RampByDelta(t, 0, s.distance, d))
	return start.Add(slideDirections[s.mode].Mul(off))
}
