package animation

import (
	"math"
	"strings"
	"testing"
)

const tolerance = 1e-6

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCurveCount(t *testing.T) {
	if n := len(Curves()); n != 41 {
		t.Fatalf("got %d curves, want 41", n)
	}
	seen := map[string]bool{}
	for _, c := range Curves() {
		if c.Func() == nil {
			t.Errorf("%v has no function", c)
		}
		if seen[c.String()] {
			t.Errorf("duplicate curve name %q", c)
		}
		seen[c.String()] = true
	}
}

func TestCurveBoundaries(t *testing.T) {
	params := []struct{ b, c, d float64 }{
		{0, 100, 1},
		{0, 1, 1},
		{50, -30, 0.25},
		{-10, 250, 3},
	}
	for _, curve := range Curves() {
		fn := curve.Func()
		for _, p := range params {
			if got := fn(0, p.b, p.c, p.d); !near(got, p.b, tolerance*math.Max(1, math.Abs(p.c))) {
				t.Errorf("%v(0, %v, %v, %v) = %v, want %v", curve, p.b, p.c, p.d, got, p.b)
			}
			want := p.b + p.c
			if got := fn(p.d, p.b, p.c, p.d); !near(got, want, tolerance*math.Max(1, math.Abs(p.c))) {
				t.Errorf("%v(%v, %v, %v, %v) = %v, want %v", curve, p.d, p.b, p.c, p.d, got, want)
			}
		}
	}
}

func TestCurveMidpointContinuity(t *testing.T) {
	const b, c, d = 10.0, 80.0, 2.0
	for _, curve := range Curves() {
		name := curve.String()
		if !strings.HasSuffix(name, "InOut") && !strings.HasSuffix(name, "OutIn") {
			continue
		}
		fn := curve.Func()
		mid := fn(d/2, b, c, d)
		if !near(mid, b+c/2, tolerance*c) {
			t.Errorf("%v at midpoint = %v, want %v", curve, mid, b+c/2)
		}
		left := fn(d/2-1e-9, b, c, d)
		if !near(left, mid, 1e-4*c) {
			t.Errorf("%v jumps at midpoint: %v -> %v", curve, left, mid)
		}
	}
}

func TestZeroDurationSnapsToEnd(t *testing.T) {
	for _, curve := range Curves() {
		for _, d := range []float64{0, -1} {
			got := curve.Func()(0.5, 3, 7, d)
			if got != 10 {
				t.Errorf("%v with duration %v = %v, want 10", curve, d, got)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("%v with duration %v is not finite", curve, d)
			}
		}
	}
}

func TestBackEaseOutOvershoots(t *testing.T) {
	const d = 1.5
	if got := BackEaseOut(d, 0, 100, d); got != 100 {
		t.Fatalf("BackEaseOut at end = %v, want exactly 100", got)
	}
	if got := BackEaseOut(0.9*d, 0, 100, d); got <= 100 {
		t.Fatalf("BackEaseOut at 0.9 = %v, want overshoot past 100", got)
	}
	if got := BackEaseIn(0.2*d, 0, 100, d); got >= 0 {
		t.Fatalf("BackEaseIn at 0.2 = %v, want undershoot below 0", got)
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Easing
		t    float64
		want float64
	}{
		{"Linear", Linear, 0.25, 25},
		{"QuadraticEaseIn", QuadraticEaseIn, 0.5, 25},
		{"QuadraticEaseOut", QuadraticEaseOut, 0.5, 75},
		{"QuadraticEaseInOut", QuadraticEaseInOut, 0.25, 12.5},
		{"QuadraticEaseOutIn", QuadraticEaseOutIn, 0.25, 37.5},
		{"CubicEaseIn", CubicEaseIn, 0.5, 12.5},
		{"CubicEaseOut", CubicEaseOut, 0.5, 87.5},
		{"QuarticEaseIn", QuarticEaseIn, 0.5, 6.25},
		{"QuarticEaseOut", QuarticEaseOut, 0.5, 93.75},
		{"QuinticEaseIn", QuinticEaseIn, 0.5, 3.125},
		{"QuinticEaseOut", QuinticEaseOut, 0.5, 96.875},
		{"SinusoidalEaseInOut", SinusoidalEaseInOut, 0.5, 50},
		{"SinusoidalEaseOut", SinusoidalEaseOut, 1.0 / 3, 50},
		{"CircularEaseOut", CircularEaseOut, 0.5, 100 * math.Sqrt(0.75)},
		{"ExponentialEaseIn", ExponentialEaseIn, 0.5, 100 * math.Pow(2, -5)},
		{"ExponentialEaseOut", ExponentialEaseOut, 0.5, 100 * (1 - math.Pow(2, -5))},
		{"BounceEaseOut", BounceEaseOut, 0.5 / 2.75, 25},
		{"BounceEaseIn", BounceEaseIn, 1 - 0.5/2.75, 75},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.t, 0, 100, 1); !near(got, tt.want, 1e-9) {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.t, got, tt.want)
		}
	}
}

func TestInOutMatchesCanonicalPenner(t *testing.T) {
	// Penner's closed forms for the families whose InOut is composed.
	canonical := map[string]Easing{
		"QuadraticEaseInOut": func(t, b, c, d float64) float64 {
			t /= d / 2
			if t < 1 {
				return c/2*t*t + b
			}
			t--
			return -c/2*(t*(t-2)-1) + b
		},
		"CubicEaseInOut": func(t, b, c, d float64) float64 {
			t /= d / 2
			if t < 1 {
				return c/2*t*t*t + b
			}
			t -= 2
			return c/2*(t*t*t+2) + b
		},
		"SinusoidalEaseInOut": func(t, b, c, d float64) float64 {
			return -c/2*(math.Cos(math.Pi*t/d)-1) + b
		},
		"CircularEaseInOut": func(t, b, c, d float64) float64 {
			t /= d / 2
			if t < 1 {
				return -c/2*(math.Sqrt(1-t*t)-1) + b
			}
			t -= 2
			return c/2*(math.Sqrt(1-t*t)+1) + b
		},
		"ExponentialEaseInOut": func(t, b, c, d float64) float64 {
			if t == 0 {
				return b
			}
			if t == d {
				return b + c
			}
			t /= d / 2
			if t < 1 {
				return c/2*math.Pow(2, 10*(t-1)) + b
			}
			t--
			return c/2*(-math.Pow(2, -10*t)+2) + b
		},
	}
	for _, curve := range Curves() {
		want, ok := canonical[curve.String()]
		if !ok {
			continue
		}
		for i := 0; i <= 20; i++ {
			x := float64(i) / 20 * 1.2
			if got, w := curve.Func()(x, 5, 40, 1.2), want(x, 5, 40, 1.2); !near(got, w, 1e-9) {
				t.Errorf("%v(%v) = %v, canonical %v", curve, x, got, w)
			}
		}
	}
}

func TestRamps(t *testing.T) {
	if got := RampByDelta(0.5, 10, 20, 1); got != 20 {
		t.Errorf("RampByDelta = %v, want 20", got)
	}
	if got := RampToAbsolute(0.5, 10, 20, 1); got != 15 {
		t.Errorf("RampToAbsolute = %v, want 15", got)
	}
	if got := InverseLinear(0.25, 200, 1); got != 150 {
		t.Errorf("InverseLinear = %v, want 150", got)
	}
	if got := RampByDelta(0, 10, 20, 0); got != 30 {
		t.Errorf("RampByDelta zero duration = %v, want 30", got)
	}
	if got := RampToAbsolute(0, 10, 20, 0); got != 20 {
		t.Errorf("RampToAbsolute zero duration = %v, want 20", got)
	}
	if got := InverseLinear(0, 10, 0); got != 0 {
		t.Errorf("InverseLinear zero duration = %v, want 0", got)
	}
}

func TestCurveText(t *testing.T) {
	for _, c := range Curves() {
		b, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Curve
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}
	var c Curve
	if err := c.UnmarshalText([]byte("Wobbly")); err == nil {
		t.Error("expected error for unknown curve name")
	}
	if _, err := Curve(200).MarshalText(); err == nil {
		t.Error("expected error for out of range curve")
	}
}
