package effect

import (
	"image"

	"honnef.co/go/menufx/animation"
)

type ScaleMode uint8

const (
	ScaleIncrease ScaleMode = iota
	ScaleDecrease
	ScaleWidthIncrease
	ScaleWidthDecrease
	ScaleHeightIncrease
	ScaleHeightDecrease

	numScaleModes
)

var scaleModeNames = []string{
	ScaleIncrease:       "ScaleIncrease",
	ScaleDecrease:       "ScaleDecrease",
	ScaleWidthIncrease:  "ScaleWidthIncrease",
	ScaleWidthDecrease:  "ScaleWidthDecrease",
	ScaleHeightIncrease: "ScaleHeightIncrease",
	ScaleHeightDecrease: "ScaleHeightDecrease",
}

func (m ScaleMode) Valid() bool    { return m < numScaleModes }
func (m ScaleMode) String() string { return modeString(scaleModeNames, "ScaleMode", m) }

func (m ScaleMode) MarshalText() ([]byte, error) {
	return modeText(scaleModeNames, "ScaleMode", m)
}

func (m *ScaleMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[ScaleMode](scaleModeNames, "ScaleMode", b)
	return err
}

var scaleLayouts = [numScaleModes]layout{
	ScaleIncrease:       {w: grow, h: grow, ax: 0.5, ay: 0.5},
	ScaleDecrease:       {w: shrink, h: shrink, ax: 0.5, ay: 0.5},
	ScaleWidthIncrease:  {w: grow, h: keep, ax: 0.5},
	ScaleWidthDecrease:  {w: shrink, h: keep, ax: 0.5},
	ScaleHeightIncrease: {w: keep, h: grow, ay: 0.5},
	ScaleHeightDecrease: {w: keep, h: shrink, ay: 0.5},
}

// Scale grows or shrinks a rectangle around its center.
type Scale struct {
	animation.Animation[image.Rectangle]

	mode ScaleMode
}

func NewScale(clock animation.Clock, mode ScaleMode, duration float64) (*Scale, error) {
	if !mode.Valid() {
		return nil, invalidMode("scale", mode)
	}
	sc := &Scale{mode: mode}
	sc.Animation = animation.New(clock, duration, image.Rectangle{}, sc.compute)
	return sc, nil
}

func (sc *Scale) Mode() ScaleMode { return sc.mode }

func (sc *Scale) compute(start image.Rectangle, t, d float64) image.Rectangle {
	return scaleLayouts[sc.mode].apply(start, t, d)
}
