package effect

import (
	"honnef.co/go/menufx/animation"
)

type DropMode uint8

const (
	// DropDownIncrease unrolls a panel downward from its top edge while
	// fading it in.
	DropDownIncrease DropMode = iota
	// DropDownDecrease rolls a panel up into its top edge while fading it
	// out.
	DropDownDecrease
	// DropUpIncrease unrolls a panel upward from its bottom edge while
	// fading it in.
	DropUpIncrease
	// DropUpDecrease rolls a panel down into its bottom edge while fading
	// it out.
	DropUpDecrease

	numDropModes
)

var dropModeNames = []string{
	DropDownIncrease: "DropDownIncrease",
	DropDownDecrease: "DropDownDecrease",
	DropUpIncrease:   "DropUpIncrease",
	DropUpDecrease:   "DropUpDecrease",
}

func (m DropMode) Valid() bool    { return m < numDropModes }
func (m DropMode) String() string { return modeString(dropModeNames, "DropMode", m) }

func (m DropMode) MarshalText() ([]byte, error) {
	return modeText(dropModeNames, "DropMode", m)
}

func (m *DropMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[DropMode](dropModeNames, "DropMode", b)
	return err
}

var dropLayouts = [numDropModes]struct {
	layout
	alpha sizeRamp
}{
	DropDownIncrease: {layout{w: keep, h: grow}, grow},
	DropDownDecrease: {layout{w: keep, h: shrink}, shrink},
	DropUpIncrease:   {layout{w: keep, h: grow, ay: 1}, grow},
	DropUpDecrease:   {layout{w: keep, h: shrink, ay: 1}, shrink},
}

// Drop animates a menu panel opening or closing. The height and the alpha of
// the panel color ramp together.
type Drop struct {
	animation.Animation[Panel]

	mode DropMode
}

func NewDrop(clock animation.Clock, mode DropMode, duration float64) (*Drop, error) {
	if !mode.Valid() {
		return nil, invalidMode("drop", mode)
	}
	dr := &Drop{mode: mode}
	dr.Animation = animation.New(clock, duration, Panel{}, dr.compute)
	return dr, nil
}

func (dr *Drop) Mode() DropMode { return dr.mode }

func (dr *Drop) compute(start Panel, t, d float64) Panel {
	l := dropLayouts[dr.mode]
	return Panel{
		Rect:  l.apply(start.Rect, t, d),
		Color: withAlpha(start.Color, l.alpha(t, float64(start.Color.A), d)),
	}
}
