// Package render paints effect values with Gio.
package render

import (
	"image"
	"image/color"

	"gioui.org/op"
	"gioui.org/op/paint"

	"honnef.co/go/menufx/f32"
	"honnef.co/go/menufx/preset"
)

// Panel fills r with c. Empty rectangles and transparent colors paint
// nothing.
func Panel(ops *op.Ops, r image.Rectangle, c color.NRGBA) {
	fill(ops, FromRect(r), c)
}

// Marker fills a square of side size centered on pt.
func Marker(ops *op.Ops, pt f32.Point, size float32, c color.NRGBA) {
	fill(ops, Square(pt, size), c)
}

func fill(ops *op.Ops, r FRect, c color.NRGBA) {
	if r.Empty() || c.A == 0 {
		return
	}
	paint.FillShape(ops, c, r.Op(ops))
}

// WithOpacity runs fn with its paint scaled by opacity.
func WithOpacity(ops *op.Ops, opacity float32, fn func(ops *op.Ops)) {
	switch {
	case opacity <= 0:
		return
	case opacity >= 1:
		fn(ops)
	default:
		defer paint.PushOpacity(ops, opacity).Pop()
		fn(ops)
	}
}

// Style is how Scene draws the point of a scene.
type Style struct {
	MarkerSize  float32
	MarkerColor color.NRGBA
	// Outline, if not transparent, is drawn around the panel's resize
	// target.
	Outline color.NRGBA
}

// Scene paints the panel and the point of s.
func Scene(ops *op.Ops, s preset.Scene, st Style) {
	if st.Outline.A != 0 && !s.Target.Empty() {
		outline(ops, s.Target, st.Outline)
	}
	Panel(ops, s.Panel.Rect, s.Panel.Color)
	Marker(ops, s.Point, st.MarkerSize, st.MarkerColor)
}

func outline(ops *op.Ops, r image.Rectangle, c color.NRGBA) {
	edges := [...]image.Rectangle{
		{Min: r.Min, Max: image.Pt(r.Max.X, r.Min.Y+1)},
		{Min: image.Pt(r.Min.X, r.Max.Y-1), Max: r.Max},
		{Min: r.Min, Max: image.Pt(r.Min.X+1, r.Max.Y)},
		{Min: image.Pt(r.Max.X-1, r.Min.Y), Max: r.Max},
	}
	for _, e := range edges {
		Panel(ops, e, c)
	}
}
