package animation

import (
	"errors"
	"fmt"
)

// Curve names one of the easing functions of this package.
type Curve uint8

const (
	CurveLinear Curve = iota
	CurveBackEaseIn
	CurveBackEaseOut
	CurveBackEaseInOut
	CurveBackEaseOutIn
	CurveBounceEaseIn
	CurveBounceEaseOut
	CurveBounceEaseInOut
	CurveBounceEaseOutIn
	CurveCircularEaseIn
	CurveCircularEaseOut
	CurveCircularEaseInOut
	CurveCircularEaseOutIn
	CurveCubicEaseIn
	CurveCubicEaseOut
	CurveCubicEaseInOut
	CurveCubicEaseOutIn
	CurveElasticEaseIn
	CurveElasticEaseOut
	CurveElasticEaseInOut
	CurveElasticEaseOutIn
	CurveExponentialEaseIn
	CurveExponentialEaseOut
	CurveExponentialEaseInOut
	CurveExponentialEaseOutIn
	CurveQuadraticEaseIn
	CurveQuadraticEaseOut
	CurveQuadraticEaseInOut
	CurveQuadraticEaseOutIn
	CurveQuarticEaseIn
	CurveQuarticEaseOut
	CurveQuarticEaseInOut
	CurveQuarticEaseOutIn
	CurveQuinticEaseIn
	CurveQuinticEaseOut
	CurveQuinticEaseInOut
	CurveQuinticEaseOutIn
	CurveSinusoidalEaseIn
	CurveSinusoidalEaseOut
	CurveSinusoidalEaseInOut
	CurveSinusoidalEaseOutIn

	numCurves
)

var ErrUnknownCurve = errors.New("unknown easing curve")

var curves = [numCurves]struct {
	name string
	fn   Easing
}{
	CurveLinear:               {"Linear", Linear},
	CurveBackEaseIn:           {"BackEaseIn", BackEaseIn},
	CurveBackEaseOut:          {"BackEaseOut", BackEaseOut},
	CurveBackEaseInOut:        {"BackEaseInOut", BackEaseInOut},
	CurveBackEaseOutIn:        {"BackEaseOutIn", BackEaseOutIn},
	CurveBounceEaseIn:         {"BounceEaseIn", BounceEaseIn},
	CurveBounceEaseOut:        {"BounceEaseOut", BounceEaseOut},
	CurveBounceEaseInOut:      {"BounceEaseInOut", BounceEaseInOut},
	CurveBounceEaseOutIn:      {"BounceEaseOutIn", BounceEaseOutIn},
	CurveCircularEaseIn:       {"CircularEaseIn", CircularEaseIn},
	CurveCircularEaseOut:      {"CircularEaseOut", CircularEaseOut},
	CurveCircularEaseInOut:    {"CircularEaseInOut", CircularEaseInOut},
	CurveCircularEaseOutIn:    {"CircularEaseOutIn", CircularEaseOutIn},
	CurveCubicEaseIn:          {"CubicEaseIn", CubicEaseIn},
	CurveCubicEaseOut:         {"CubicEaseOut", CubicEaseOut},
	CurveCubicEaseInOut:       {"CubicEaseInOut", CubicEaseInOut},
	CurveCubicEaseOutIn:       {"CubicEaseOutIn", CubicEaseOutIn},
	CurveElasticEaseIn:        {"ElasticEaseIn", ElasticEaseIn},
	CurveElasticEaseOut:       {"ElasticEaseOut", ElasticEaseOut},
	CurveElasticEaseInOut:     {"ElasticEaseInOut", ElasticEaseInOut},
	CurveElasticEaseOutIn:     {"ElasticEaseOutIn", ElasticEaseOutIn},
	CurveExponentialEaseIn:    {"ExponentialEaseIn", ExponentialEaseIn},
	CurveExponentialEaseOut:   {"ExponentialEaseOut", ExponentialEaseOut},
	CurveExponentialEaseInOut: {"ExponentialEaseInOut", ExponentialEaseInOut},
	CurveExponentialEaseOutIn: {"ExponentialEaseOutIn", ExponentialEaseOutIn},
	CurveQuadraticEaseIn:      {"QuadraticEaseIn", QuadraticEaseIn},
	CurveQuadraticEaseOut:     {"QuadraticEaseOut", QuadraticEaseOut},
	CurveQuadraticEaseInOut:   {"QuadraticEaseInOut", QuadraticEaseInOut},
	CurveQuadraticEaseOutIn:   {"QuadraticEaseOutIn", QuadraticEaseOutIn},
	CurveQuarticEaseIn:        {"QuarticEaseIn", QuarticEaseIn},
	CurveQuarticEaseOut:       {"QuarticEaseOut", QuarticEaseOut},
	CurveQuarticEaseInOut:     {"QuarticEaseInOut", QuarticEaseInOut},
	CurveQuarticEaseOutIn:     {"QuarticEaseOutIn", QuarticEaseOutIn},
	CurveQuinticEaseIn:        {"QuinticEaseIn", QuinticEaseIn},
	CurveQuinticEaseOut:       {"QuinticEaseOut", QuinticEaseOut},
	CurveQuinticEaseInOut:     {"QuinticEaseInOut", QuinticEaseInOut},
	CurveQuinticEaseOutIn:     {"QuinticEaseOutIn", QuinticEaseOutIn},
	CurveSinusoidalEaseIn:     {"SinusoidalEaseIn", SinusoidalEaseIn},
	CurveSinusoidalEaseOut:    {"SinusoidalEaseOut", SinusoidalEaseOut},
	CurveSinusoidalEaseInOut:  {"SinusoidalEaseInOut", SinusoidalEaseInOut},
	CurveSinusoidalEaseOutIn:  {"SinusoidalEaseOutIn", SinusoidalEaseOutIn},
}

// Curves returns every curve in declaration order.
func Curves() []Curve {
	out := make([]Curve, numCurves)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}

func (c Curve) Valid() bool { return c < numCurves }

// Func returns the easing function named by c. It panics if c is not valid.
func (c Curve) Func() Easing {
	if !c.Valid() {
		panic(fmt.Sprintf("invalid curve %d", uint8(c)))
	}
	return curves[c].fn
}

func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
	return curves[c].name
}

func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, uint8(c))
	}
	return []byte(curves[c].name), nil
}

func (c *Curve) UnmarshalText(b []byte) error {
	for i, e := range curves {
		if e.name == string(b) {
			*c = Curve(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCurve, b)
}
