package effect

import (
	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/f32"
)

// Ease moves a point along the straight segment between two positions. The
// curve only shapes the speed along the segment, never the path.
type Ease struct {
	animation.Animation[f32.Point]

	curve animation.Curve
	to    f32.Point
}

func NewEase(clock animation.Clock, curve animation.Curve, duration float64) (*Ease, error) {
	if !curve.Valid() {
		return nil, invalidMode("ease", curve)
	}
	e := &Ease{curve: curve}
	e.Animation = animation.New(clock, duration, f32.Point{}, e.compute)
	return e, nil
}

func (e *Ease) Curve() animation.Curve { return e.curve }

// Start begins moving from from to to.
func (e *Ease) Start(from, to f32.Point) {
	e.to = to
	e.Animation.Start(from)
}

// Target returns the position the current run moves toward.
func (e *Ease) Target() f32.Point { return e.to }

func (e *Ease) compute(from f32.Point, t, d float64) f32.Point {
	dist := f32.Distance(from, e.to)
	return f32.Extend(from, e.to, e.curve.Func()(t, 0, dist, d))
}
