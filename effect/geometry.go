package effect

import (
	"image"
	"image/color"

	"honnef.co/go/menufx/animation"
)

// Panel is a rectangle painted in a single color.
type Panel struct {
	Rect  image.Rectangle
	Color color.NRGBA
}

// sizeRamp maps the full extent of a dimension to its extent at time t.
type sizeRamp func(t, full, d float64) float64

func keep(_, full, _ float64) float64 { return full }

func grow(t, full, d float64) float64 {
	return animation.RampByDelta(t, 0, full, d)
}

func shrink(t, full, d float64) float64 {
	return animation.InverseLinear(t, full, d)
}

// layout describes how a rectangle changes: how its width and height ramp,
// and which point of the original rectangle stays in place. An anchor of 0
// pins the near edge, 0.5 the center and 1 the far edge.
type layout struct {
	w, h   sizeRamp
	ax, ay float64
}

func (l layout) apply(r image.Rectangle, t, d float64) image.Rectangle {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	fw, fh := float64(r.Dx()), float64(r.Dy())
	w := l.w(t, fw, d)
	h := l.h(t, fh, d)
	x := x0 + (fw-w)*l.ax
	y := y0 + (fh-h)*l.ay
	return rect(x, y, w, h)
}

// rect rounds the edges, not the size, so an edge held in place by a layout
// stays on the same pixel.
func rect(x, y, w, h float64) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(animation.Round[int](x), animation.Round[int](y)),
		Max: image.Pt(animation.Round[int](x+w), animation.Round[int](y+h)),
	}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = animation.Narrow[uint8](a, 0, 255)
	return c
}
