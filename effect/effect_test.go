package effect

import (
	"encoding"
	"errors"
	"fmt"
	"testing"

	"honnef.co/go/menufx/animation"
)

type mode interface {
	fmt.Stringer
	encoding.TextMarshaler
	Valid() bool
}

func allModes() map[string][]mode {
	out := map[string][]mode{}
	for m := FadeMode(0); m < numFadeModes; m++ {
		out["fade"] = append(out["fade"], m)
	}
	for m := DropMode(0); m < numDropModes; m++ {
		out["drop"] = append(out["drop"], m)
	}
	for m := ResizeMode(0); m < numResizeModes; m++ {
		out["resize"] = append(out["resize"], m)
	}
	for m := ScaleMode(0); m < numScaleModes; m++ {
		out["scale"] = append(out["scale"], m)
	}
	for m := MiscMode(0); m < numMiscModes; m++ {
		out["misc"] = append(out["misc"], m)
	}
	for m := SlideMode(0); m < numSlideModes; m++ {
		out["slide"] = append(out["slide"], m)
	}
	for m := ShakeMode(0); m < numShakeModes; m++ {
		out["shake"] = append(out["shake"], m)
	}
	for m := TintMode(0); m < numTintModes; m++ {
		out["tint"] = append(out["tint"], m)
	}
	return out
}

func TestModeNames(t *testing.T) {
	for family, modes := range allModes() {
		seen := map[string]bool{}
		for _, m := range modes {
			if !m.Valid() {
				t.Errorf("%s: %v is not valid", family, m)
			}
			b, err := m.MarshalText()
			if err != nil {
				t.Errorf("%s: %v", family, err)
				continue
			}
			if string(b) != m.String() || string(b) == "" {
				t.Errorf("%s: text %q, String %q", family, b, m.String())
			}
			if seen[string(b)] {
				t.Errorf("%s: duplicate name %q", family, b)
			}
			seen[string(b)] = true
		}
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	var fm FadeMode
	if err := fm.UnmarshalText([]byte("Pulsate")); err != nil || fm != Pulsate {
		t.Fatalf("got %v, %v", fm, err)
	}
	var sm ShakeMode
	if err := sm.UnmarshalText([]byte("ShakeDiagonal")); err != nil || sm != ShakeDiagonal {
		t.Fatalf("got %v, %v", sm, err)
	}
	var rm ResizeMode
	err := rm.UnmarshalText([]byte("ResizeSideways"))
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("got %v, want ErrInvalidMode", err)
	}
	if _, err := ScaleMode(99).MarshalText(); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("got %v, want ErrInvalidMode", err)
	}
	if s := DropMode(42).String(); s != "DropMode(42)" {
		t.Fatalf("got %q", s)
	}
}

func TestConstructorsRejectInvalidModes(t *testing.T) {
	var clock animation.ManualClock
	errs := map[string]error{}
	_, errs["ease"] = NewEase(&clock, animation.Curve(200), 1)
	_, errs["fade"] = NewFade(&clock, numFadeModes, 1, 1)
	_, errs["drop"] = NewDrop(&clock, numDropModes, 1)
	_, errs["resize"] = NewResize(&clock, numResizeModes, 1)
	_, errs["scale"] = NewScale(&clock, numScaleModes, 1)
	_, errs["misc"] = NewMisc(&clock, numMiscModes, 1)
	_, errs["slide"] = NewSlide(&clock, numSlideModes, 1, 10)
	_, errs["shake"] = NewShake(&clock, numShakeModes, 1, 10, 2)
	_, errs["tint"] = NewTint(&clock, numTintModes, animation.CurveLinear, 1)
	_, errs["tint curve"] = NewTint(&clock, TintRGB, animation.Curve(200), 1)
	for name, err := range errs {
		if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("%s: got %v, want ErrInvalidMode", name, err)
		}
	}
}

func TestEffectInterface(t *testing.T) {
	var clock animation.ManualClock
	mustEffect := func(e Effect, err error) Effect {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return e
	}
	effects := []Effect{
		mustEffect(NewEase(&clock, animation.CurveLinear, 1)),
		mustEffect(NewFade(&clock, FadeIn, 1, 1)),
		mustEffect(NewDrop(&clock, DropDownIncrease, 1)),
		mustEffect(NewResize(&clock, ResizeIncrease, 1)),
		mustEffect(NewScale(&clock, ScaleIncrease, 1)),
		mustEffect(NewMisc(&clock, MiscRightIncrease, 1)),
		mustEffect(NewSlide(&clock, SlideLeft, 1, 5)),
		mustEffect(NewShake(&clock, ShakeHorizontal, 1, 5, 1)),
		mustEffect(NewTint(&clock, TintLab, animation.CurveLinear, 1)),
	}
	for _, e := range effects {
		if e.IsWorking() {
			t.Errorf("%T is working before Start", e)
		}
		if e.Duration() != 1 {
			t.Errorf("%T has duration %v", e, e.Duration())
		}
	}
}
