// Command menufx-demo plays menu effect presets in a Gio window.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/op/paint"

	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/effect"
	"honnef.co/go/menufx/f32"
	"honnef.co/go/menufx/preset"
	"honnef.co/go/menufx/render"
)

var (
	background = color.NRGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	panelColor = color.NRGBA{R: 0x3c, G: 0x9d, B: 0x9b, A: 0xff}
	tintColor  = color.NRGBA{R: 0xf2, G: 0x8c, B: 0x28, A: 0xff}
	style      = render.Style{
		MarkerSize:  24,
		MarkerColor: color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Outline:     color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
)

func main() {
	name := flag.String("preset", "", "play only the named `preset` instead of cycling through all of them")
	file := flag.String("presets", "", "read presets from the JSON `file` instead of the built-in set")
	pause := flag.Float64("pause", 0.6, "seconds to wait between presets")
	flag.Parse()

	set := preset.Default()
	if *file != "" {
		var err error
		if set, err = preset.Load(*file); err != nil {
			log.Fatal(err)
		}
	}
	names := set.Names()
	if *name != "" {
		names = []string{*name}
	}
	player, err := preset.NewPlayer(set, names, animation.NewMonotonicClock(), *pause)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		w := app.NewWindow(app.Title("menufx"))
		if err := run(w, player); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// baseScene lays out the scene for a window of the given size.
func baseScene(size image.Point) preset.Scene {
	w, h := size.X, size.Y
	panel := image.Rect(w*3/10, h*3/10, w*7/10, h*6/10)
	return preset.Scene{
		Panel:  effect.Panel{Rect: panel, Color: panelColor},
		Point:  f32.Pt(float32(w)/5, float32(h)*4/5),
		Goal:   f32.Pt(float32(w)*4/5, float32(h)*4/5),
		Target: image.Rect(w/10, h/10, w*4/10, h*3/10),
		Tint:   tintColor,
	}
}

func run(w *app.Window, player *preset.Player) error {
	var ops op.Ops
	var wake *time.Timer
	playing := ""
	for {
		switch e := w.NextEvent().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			ops.Reset()
			paint.Fill(&ops, background)

			base := baseScene(e.Size)
			scene, err := player.Frame(base)
			if err != nil {
				return err
			}
			if cur := player.Current(); cur != playing {
				playing = cur
				log.Printf("playing %s", cur)
			}
			// Ghost of the starting state.
			render.WithOpacity(&ops, 0.2, func(ops *op.Ops) {
				render.Panel(ops, base.Panel.Rect, base.Panel.Color)
			})
			render.Scene(&ops, scene, style)
			e.Frame(&ops)

			// Redraw continuously while the effect runs, then sleep
			// through the pause until the next preset is due.
			if wake != nil {
				wake.Stop()
			}
			if player.Working() {
				w.Invalidate()
			} else {
				wait := time.Duration(player.Wait() * float64(time.Second))
				wake = time.AfterFunc(wait, w.Invalidate)
			}
		}
	}
}
