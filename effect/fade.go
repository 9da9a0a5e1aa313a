package effect

import (
	"image/color"
	"math"

	"honnef.co/go/menufx/animation"
)

type FadeMode uint8

const (
	// FadeIn ramps alpha from its start value up to 255.
	FadeIn FadeMode = iota
	// FadeOut ramps alpha from its start value down to 0.
	FadeOut
	// Pulsate blinks alpha between its start value and 0, once per pulse.
	Pulsate

	numFadeModes
)

var fadeModeNames = []string{
	FadeIn:  "FadeIn",
	FadeOut: "FadeOut",
	Pulsate: "Pulsate",
}

func (m FadeMode) Valid() bool    { return m < numFadeModes }
func (m FadeMode) String() string { return modeString(fadeModeNames, "FadeMode", m) }

func (m FadeMode) MarshalText() ([]byte, error) {
	return modeText(fadeModeNames, "FadeMode", m)
}

func (m *FadeMode) UnmarshalText(b []byte) (err error) {
	*m, err = parseMode[FadeMode](fadeModeNames, "FadeMode", b)
	return err
}

var fadeAlpha = [numFadeModes]func(f *Fade, a0, t, d float64) float64{
	FadeIn: func(_ *Fade, a0, t, d float64) float64 {
		return animation.RampByDelta(t, a0, 255-a0, d)
	},
	FadeOut: func(_ *Fade, a0, t, d float64) float64 {
		return animation.InverseLinear(t, a0, d)
	},
	Pulsate: (*Fade).pulse,
}

// Fade animates the alpha channel of a color. The color channels are left
// untouched.
type Fade struct {
	animation.Animation[color.NRGBA]

	mode   FadeMode
	pulses int
}

// NewFade returns a fade. pulses is only used by Pulsate and is at least 1.
func NewFade(clock animation.Clock, mode FadeMode, duration float64, pulses int) (*Fade, error) {
	if !mode.Valid() {
		return nil, invalidMode("fade", mode)
	}
	f := &Fade{mode: mode, pulses: max(pulses, 1)}
	f.Animation = animation.New(clock, duration, color.NRGBA{}, f.compute)
	return f, nil
}

func (f *Fade) Mode() FadeMode { return f.mode }

func (f *Fade) compute(start color.NRGBA, t, d float64) color.NRGBA {
	return withAlpha(start, fadeAlpha[f.mode](f, float64(start.A), t, d))
}

// pulse shows the start alpha during the first half of every cycle and hides
// it during the second. The run ends visible.
func (f *Fade) pulse(a0, t, d float64) float64 {
	if d <= 0 || t >= d {
		return a0
	}
	k := t * float64(f.pulses) / d
	if k-math.Floor(k) < 0.5 {
		return a0
	}
	return 0
}
