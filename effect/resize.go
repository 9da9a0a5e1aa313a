package effect

import (
	"image"

	"honnef.co/go/menufx/animation"
)

type ResizeMode uint8

const (
	ResizeIncrease ResizeMode = iota
	ResizeDecrease
	ResizeWidthIncrease
	ResizeWidthDecrease
	ResizeHeightIncrease
	ResizeHeightDecrease
	// ResizeToTarget moves every edge toward the rectangle given to
	// StartTo.
	ResizeToTarget

	numResizeModes
)

var resizeModeNames = []string{
	ResizeIncrease:       "ResizeIncrease",
	ResizeDecrease:       "ResizeDecrease",
	ResizeWidthIncrease:  "ResizeWidthIncrease",
	ResizeWidthDecrease:  "ResizeWidthDecrease",
	ResizeHeightIncrease: "ResizeHeightIncrease",
	ResizeHeightDecrease: "ResizeHeightDecrease",
	ResizeToTarget:       "ResizeToTarget",
}

func (m ResizeMode) Valid() bool    { return m < numResizeModes }
func (m ResizeMode) String() string { return modeString(resizeModeNames, "ResizeMode", m) }

func (m ResizeMode) MarshalText() ([]byte, error) {
	return modeText(resizeModeNames, "ResizeMode", m)
}

func (m *ResizeMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[ResizeMode](resizeModeNames, "ResizeMode", b)
	return err
}

// Layouts pin the top left corner. ResizeToTarget has no layout.
var resizeLayouts = [numResizeModes]layout{
	ResizeIncrease:       {w: grow, h: grow},
	ResizeDecrease:       {w: shrink, h: shrink},
	ResizeWidthIncrease:  {w: grow, h: keep},
	ResizeWidthDecrease:  {w: shrink, h: keep},
	ResizeHeightIncrease: {w: keep, h: grow},
	ResizeHeightDecrease: {w: keep, h: shrink},
}

// Resize grows or shrinks a rectangle away from its top left corner.
type Resize struct {
	animation.Animation[image.Rectangle]

	mode   ResizeMode
	target image.Rectangle
}

func NewResize(clock animation.Clock, mode ResizeMode, duration float64) (*Resize, error) {
	if !mode.Valid() {
		return nil, invalidMode("resize", mode)
	}
	rs := &Resize{mode: mode}
	rs.Animation = animation.New(clock, duration, image.Rectangle{}, rs.compute)
	return rs, nil
}

func (rs *Resize) Mode() ResizeMode { return rs.mode }

// Start begins a run from r. For ResizeToTarget the target is r itself.
func (rs *Resize) Start(r image.Rectangle) {
	rs.StartTo(r, r)
}

// StartTo begins a run from r. Only ResizeToTarget uses target.
func (rs *Resize) StartTo(r, target image.Rectangle) {
	rs.target = target
	rs.Animation.Start(r)
}

func (rs *Resize) compute(start image.Rectangle, t, d float64) image.Rectangle {
	if rs.mode != ResizeToTarget {
		return resizeLayouts[rs.mode].apply(start, t, d)
	}
	to := rs.target
	return rect(
		animation.RampToAbsolute(t, float64(start.Min.X), float64(to.Min.X), d),
		animation.RampToAbsolute(t, float64(start.Min.Y), float64(to.Min.Y), d),
		animation.RampToAbsolute(t, float64(start.Dx()), float64(to.Dx()), d),
		animation.RampToAbsolute(t, float64(start.Dy()), float64(to.Dy()), d),
	)
}
