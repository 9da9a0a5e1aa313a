package effect

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/f32"
)

func TestEaseStaysOnSegment(t *testing.T) {
	from, to := f32.Pt(10, 20), f32.Pt(110, 70)
	for _, curve := range animation.Curves() {
		var clock animation.ManualClock
		e, err := NewEase(&clock, curve, 1)
		if err != nil {
			t.Fatal(err)
		}
		e.Start(from, to)
		for i := 1; i < 10; i++ {
			clock.Set(float64(i) / 10)
			p := e.Value()
			// Cross product of (to-from) and (p-from) is zero on the line.
			dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
			px, py := float64(p.X-from.X), float64(p.Y-from.Y)
			if cross := dx*py - dy*px; math.Abs(cross) > 1e-2*math.Hypot(dx, dy) {
				t.Errorf("%v at %v: %v is off the segment", curve, clock.Now(), p)
			}
		}
		clock.Set(2)
		if diff := cmp.Diff(to, e.Value(), cmpopts.EquateApprox(0, 1e-3)); diff != "" {
			t.Errorf("%v end position mismatch (-want +got):\n%s", curve, diff)
		}
	}
}

func TestEaseSpeedProfile(t *testing.T) {
	var clock animation.ManualClock
	e, _ := NewEase(&clock, animation.CurveQuadraticEaseIn, 1)
	e.Start(f32.Pt(0, 0), f32.Pt(0, 100))
	clock.Set(0.5)
	if diff := cmp.Diff(f32.Pt(0, 25), e.Value(), cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if e.Target() != f32.Pt(0, 100) {
		t.Errorf("Target = %v", e.Target())
	}
}

func TestEaseRestartReplacesTarget(t *testing.T) {
	var clock animation.ManualClock
	e, _ := NewEase(&clock, animation.CurveLinear, 1)
	e.Start(f32.Pt(0, 0), f32.Pt(100, 0))
	clock.Set(0.5)
	mid := e.Value()
	e.Start(mid, f32.Pt(50, 100))
	clock.Set(2)
	if diff := cmp.Diff(f32.Pt(50, 100), e.Value(), cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEaseUnstartedReportsInitial(t *testing.T) {
	var clock animation.ManualClock
	e, _ := NewEase(&clock, animation.CurveBounceEaseOut, 1)
	e.Reset(f32.Pt(3, 4))
	clock.Set(10)
	if got := e.Value(); got != f32.Pt(3, 4) {
		t.Errorf("Value = %v, want (3,4)", got)
	}
}
