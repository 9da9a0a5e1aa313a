package render

import (
	"image"

	"gioui.org/op"
	"gioui.org/op/clip"

	"honnef.co/go/menufx/f32"
)

// FRect is a rectangle with fractional coordinates.
type FRect struct {
	Min f32.Point
	Max f32.Point
}

// FromRect converts r to fractional coordinates.
func FromRect(r image.Rectangle) FRect {
	return FRect{Min: f32.FPt(r.Min), Max: f32.FPt(r.Max)}
}

// Square returns the square of side size centered on c.
func Square(c f32.Point, size float32) FRect {
	h := size / 2
	return FRect{
		Min: f32.Pt(c.X-h, c.Y-h),
		Max: f32.Pt(c.X+h, c.Y+h),
	}
}

func (r FRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.IntoPath(&p)
	return p.End()
}

func (r FRect) IntoPath(p *clip.Path) {
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.LineTo(r.Min)
}

func (r FRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

func (r FRect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}
