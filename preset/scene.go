package preset

import (
	"fmt"
	"image"
	"image/color"

	"honnef.co/go/menufx/effect"
	"honnef.co/go/menufx/f32"
)

// Scene is the state a preset animates: one panel and one point. Start
// reads the fields an effect starts from, and Apply writes the effect's
// current value back into the field it animates.
type Scene struct {
	Panel effect.Panel
	Point f32.Point

	// Goal is where an ease moves Point to.
	Goal f32.Point
	// Target is the rectangle ResizeToTarget moves the panel to.
	Target image.Rectangle
	// Tint is the color a tint blends the panel color into.
	Tint color.NRGBA
}

// Start begins a run of e from the state in s.
func Start(e effect.Effect, s Scene) error {
	switch e := e.(type) {
	case *effect.Ease:
		e.Start(s.Point, s.Goal)
	case *effect.Slide:
		e.Start(s.Point)
	case *effect.Shake:
		e.Start(s.Point)
	case *effect.Fade:
		e.Start(s.Panel.Color)
	case *effect.Tint:
		e.Start(s.Panel.Color, s.Tint)
	case *effect.Drop:
		e.Start(s.Panel)
	case *effect.Resize:
		e.StartTo(s.Panel.Rect, s.Target)
	case *effect.Scale:
		e.Start(s.Panel.Rect)
	case *effect.Misc:
		e.Start(s.Panel.Rect)
	default:
		return fmt.Errorf("cannot start %T", e)
	}
	return nil
}

// Apply returns s with the current value of e in place.
func Apply(e effect.Effect, s Scene) Scene {
	switch e := e.(type) {
	case *effect.Ease:
		s.Point = e.Value()
	case *effect.Slide:
		s.Point = e.Value()
	case *effect.Shake:
		s.Point = e.Value()
	case *effect.Fade:
		s.Panel.Color = e.Value()
	case *effect.Tint:
		s.Panel.Color = e.Value()
	case *effect.Drop:
		s.Panel = e.Value()
	case *effect.Resize:
		s.Panel.Rect = e.Value()
	case *effect.Scale:
		s.Panel.Rect = e.Value()
	case *effect.Misc:
		s.Panel.Rect = e.Value()
	}
	return s
}
