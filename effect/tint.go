package effect

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/menufx/animation"
)

// TintMode selects the color space a tint blends in.
type TintMode uint8

const (
	TintRGB TintMode = iota
	TintLab
	TintHcl

	numTintModes
)

var tintModeNames = []string{
	TintRGB: "TintRGB",
	TintLab: "TintLab",
	TintHcl: "TintHcl",
}

func (m TintMode) Valid() bool    { return m < numTintModes }
func (m TintMode) String() string { return modeString(tintModeNames, "TintMode", m) }

func (m TintMode) MarshalText() ([]byte, error) {
	return modeText(tintModeNames, "TintMode", m)
}

func (m *TintMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[TintMode](tintModeNames, "TintMode", b)
	return err
}

var tintBlends = [numTintModes]func(a, b colorful.Color, t float64) colorful.Color{
	TintRGB: colorful.Color.BlendRgb,
	TintLab: colorful.Color.BlendLab,
	TintHcl: colorful.Color.BlendHcl,
}

// Tint blends a color into another along an easing curve. Alpha follows the
// same progress as the color channels.
type Tint struct {
	animation.Animation[color.NRGBA]

	mode  TintMode
	curve animation.Curve
	to    color.NRGBA
}

func NewTint(clock animation.Clock, mode TintMode, curve animation.Curve, duration float64) (*Tint, error) {
	if !mode.Valid() {
		return nil, invalidMode("tint", mode)
	}
	if !curve.Valid() {
		return nil, invalidMode("tint curve", curve)
	}
	tn := &Tint{mode: mode, curve: curve}
	tn.Animation = animation.New(clock, duration, color.NRGBA{}, tn.compute)
	return tn, nil
}

func (tn *Tint) Mode() TintMode { return tn.mode }

// Start begins blending from from to to.
func (tn *Tint) Start(from, to color.NRGBA) {
	tn.to = to
	tn.Animation.Start(from)
}

func (tn *Tint) Target() color.NRGBA { return tn.to }

func (tn *Tint) compute(from color.NRGBA, t, d float64) color.NRGBA {
	p := tn.curve.Func()(t, 0, 1, d)
	if p <= 0 {
		return from
	}
	if p >= 1 || t >= d {
		return tn.to
	}
	c := tintBlends[tn.mode](toColorful(from), toColorful(tn.to), p).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{
		R: r,
		G: g,
		B: b,
		A: animation.Narrow[uint8](animation.Lerp(float64(from.A), float64(tn.to.A), p), 0, 255),
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
