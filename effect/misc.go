package effect

import (
	"image"

	"honnef.co/go/menufx/animation"
)

// MiscMode selects one of the edge anchored rectangle transforms. The named
// edge stays in place while the rectangle grows out of it or collapses into
// it.
type MiscMode uint8

const (
	MiscRightIncrease MiscMode = iota
	MiscRightDecrease
	MiscBottomIncrease
	MiscBottomDecrease
	MiscCornerIncrease
	MiscCornerDecrease

	numMiscModes
)

var miscModeNames = []string{
	MiscRightIncrease:  "MiscRightIncrease",
	MiscRightDecrease:  "MiscRightDecrease",
	MiscBottomIncrease: "MiscBottomIncrease",
	MiscBottomDecrease: "MiscBottomDecrease",
	MiscCornerIncrease: "MiscCornerIncrease",
	MiscCornerDecrease: "MiscCornerDecrease",
}

func (m MiscMode) Valid() bool    { return m < numMiscModes }
func (m MiscMode) String() string { return modeString(miscModeNames, "MiscMode", m) }

func (m MiscMode) MarshalText() ([]byte, error) {
	return modeText(miscModeNames, "MiscMode", m)
}

func (m *MiscMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[MiscMode](miscModeNames, "MiscMode", b)
	return err
}

var miscLayouts = [numMiscModes]layout{
	MiscRightIncrease:  {w: grow, h: keep, ax: 1},
	MiscRightDecrease:  {w: shrink, h: keep, ax: 1},
	MiscBottomIncrease: {w: keep, h: grow, ay: 1},
	MiscBottomDecrease: {w: keep, h: shrink, ay: 1},
	MiscCornerIncrease: {w: grow, h: grow, ax: 1, ay: 1},
	MiscCornerDecrease: {w: shrink, h: shrink, ax: 1, ay: 1},
}

type Misc struct {
	animation.Animation[image.Rectangle]

	mode MiscMode
}

func NewMisc(clock animation.Clock, mode MiscMode, duration float64) (*Misc, error) {
	if !mode.Valid() {
		return nil, invalidMode("misc", mode)
	}
	m := &Misc{mode: mode}
	m.Animation = animation.New(clock, duration, image.Rectangle{}, m.compute)
	return m, nil
}

func (m *Misc) Mode() MiscMode { return m.mode }

func (m *Misc) compute(start image.Rectangle, t, d float64) image.Rectangle {
	return miscLayouts[m.mode].apply(start, t, d)
}
