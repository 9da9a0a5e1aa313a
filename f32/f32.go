// Package f32 provides the float vector operations used by position effects.
package f32

import (
	"image"
	"math"

	"gioui.org/f32"
)

type Point = f32.Point

var Pt = f32.Pt

func FPt(pt image.Point) Point {
	return Point{
		X: float32(pt.X),
		Y: float32(pt.Y),
	}
}

// Distance returns the euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// Extend returns the point reached by moving from p toward q by dist.
// A negative dist moves away from q. If p and q coincide, p is returned.
func Extend(p, q Point, dist float64) Point {
	l := Distance(p, q)
	if l == 0 {
		return p
	}
	k := dist / l
	return Point{
		X: float32(float64(p.X) + float64(q.X-p.X)*k),
		Y: float32(float64(p.Y) + float64(q.Y-p.Y)*k),
	}
}

// Round converts p to integer coordinates, rounding to nearest.
func Round(p Point) image.Point {
	return image.Point{
		X: int(math.Round(float64(p.X))),
		Y: int(math.Round(float64(p.Y))),
	}
}
