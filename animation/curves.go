package animation

import "math"

// Easing maps the elapsed time t of a run of duration d to a value that
// starts at b and travels a total of c. Every Easing returns b+c when d is
// not positive.
type Easing func(t, b, c, d float64) float64

// RampByDelta moves linearly from start by a total of delta.
func RampByDelta(t, start, delta, d float64) float64 {
	if d <= 0 {
		return start + delta
	}
	return start + delta*t/d
}

// RampToAbsolute moves linearly from start to end.
func RampToAbsolute(t, start, end, d float64) float64 {
	if d <= 0 {
		return end
	}
	return start + (end-start)*t/d
}

// InverseLinear moves linearly from start down to zero.
func InverseLinear(t, start, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return start - (t/d)*start
}

// inOut runs in over the first half of the run and out over the second,
// each covering half the distance.
func inOut(in, out Easing, t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	if t < d/2 {
		return in(t*2, b, c/2, d)
	}
	return out(t*2-d, b+c/2, c/2, d)
}

// outIn runs out over the first half of the run and in over the second.
func outIn(out, in Easing, t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	if t < d/2 {
		return out(t*2, b, c/2, d)
	}
	return in(t*2-d, b+c/2, c/2, d)
}

func Linear(t, b, c, d float64) float64 {
	return RampByDelta(t, b, c, d)
}

const backOvershoot = 1.70158

func BackEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	const s = backOvershoot
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

func BackEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	const s = backOvershoot
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

func BackEaseInOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	const s = backOvershoot * 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

func BackEaseOutIn(t, b, c, d float64) float64 {
	return outIn(BackEaseOut, BackEaseIn, t, b, c, d)
}

func BounceEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	return c - BounceEaseOut(d-t, 0, c, d) + b
}

func BounceEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	const n1 = 7.5625
	const d1 = 2.75

	t /= d
	if t < 1/d1 {
		return c*(n1*t*t) + b
	} else if t < 2/d1 {
		t -= 1.5 / d1
		return c*(n1*t*t+0.75) + b
	} else if t < 2.5/d1 {
		t -= 2.25 / d1
		return c*(n1*t*t+0.9375) + b
	} else {
		t -= 2.625 / d1
		return c*(n1*t*t+0.984375) + b
	}
}

func BounceEaseInOut(t, b, c, d float64) float64 {
	return inOut(BounceEaseIn, BounceEaseOut, t, b, c, d)
}

func BounceEaseOutIn(t, b, c, d float64) float64 {
	return outIn(BounceEaseOut, BounceEaseIn, t, b, c, d)
}

func CircularEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func CircularEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func CircularEaseInOut(t, b, c, d float64) float64 {
	return inOut(CircularEaseIn, CircularEaseOut, t, b, c, d)
}

func CircularEaseOutIn(t, b, c, d float64) float64 {
	return outIn(CircularEaseOut, CircularEaseIn, t, b, c, d)
}

func CubicEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t /= d
	return c*t*t*t + b
}

func CubicEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func CubicEaseInOut(t, b, c, d float64) float64 {
	return inOut(CubicEaseIn, CubicEaseOut, t, b, c, d)
}

func CubicEaseOutIn(t, b, c, d float64) float64 {
	return outIn(CubicEaseOut, CubicEaseIn, t, b, c, d)
}

// Elastic curves oscillate with a period of 0.3 of the run (0.45 for
// InOut) and an amplitude equal to the travelled distance.

func ElasticEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t -= 1
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

func ElasticEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

func ElasticEaseInOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (0.3 * 1.5)
	s := p / 4
	t -= 1
	if t < 0 {
		return -0.5*(c*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
}

func ElasticEaseOutIn(t, b, c, d float64) float64 {
	return outIn(ElasticEaseOut, ElasticEaseIn, t, b, c, d)
}

func ExponentialEaseIn(t, b, c, d float64) float64 {
	if d <= 0 || t == d {
		return b + c
	}
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func ExponentialEaseOut(t, b, c, d float64) float64 {
	if d <= 0 || t == d {
		return b + c
	}
	if t == 0 {
		return b
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func ExponentialEaseInOut(t, b, c, d float64) float64 {
	if d <= 0 || t == d {
		return b + c
	}
	if t == 0 {
		return b
	}
	return inOut(ExponentialEaseIn, ExponentialEaseOut, t, b, c, d)
}

func ExponentialEaseOutIn(t, b, c, d float64) float64 {
	if d <= 0 || t == d {
		return b + c
	}
	if t == 0 {
		return b
	}
	return outIn(ExponentialEaseOut, ExponentialEaseIn, t, b, c, d)
}

func QuadraticEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t /= d
	return c*t*t + b
}

func QuadraticEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t /= d
	return -c*t*(t-2) + b
}

func QuadraticEaseInOut(t, b, c, d float64) float64 {
	return inOut(QuadraticEaseIn, QuadraticEaseOut, t, b, c, d)
}

func QuadraticEaseOutIn(t, b, c, d float64) float64 {
	return outIn(QuadraticEaseOut, QuadraticEaseIn, t, b, c, d)
}

func QuarticEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t /= d
	return c*t*t*t*t + b
}

func QuarticEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

func QuarticEaseInOut(t, b, c, d float64) float64 {
	return inOut(QuarticEaseIn, QuarticEaseOut, t, b, c, d)
}

func QuarticEaseOutIn(t, b, c, d float64) float64 {
	return outIn(QuarticEaseOut, QuarticEaseIn, t, b, c, d)
}

func QuinticEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t /= d
	return c*t*t*t*t*t + b
}

func QuinticEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func QuinticEaseInOut(t, b, c, d float64) float64 {
	return inOut(QuinticEaseIn, QuinticEaseOut, t, b, c, d)
}

func QuinticEaseOutIn(t, b, c, d float64) float64 {
	return outIn(QuinticEaseOut, QuinticEaseIn, t, b, c, d)
}

func SinusoidalEaseIn(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func SinusoidalEaseOut(t, b, c, d float64) float64 {
	if d <= 0 {
		return b + c
	}
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func SinusoidalEaseInOut(t, b, c, d float64) float64 {
	return inOut(SinusoidalEaseIn, SinusoidalEaseOut, t, b, c, d)
}

func SinusoidalEaseOutIn(t, b, c, d float64) float64 {
	return outIn(SinusoidalEaseOut, SinusoidalEaseIn, t, b, c, d)
}
