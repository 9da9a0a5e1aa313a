// Command menufx-term plays menu effect presets in the terminal.
//
// Space restarts the current preset. Esc or Ctrl-C quits.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/effect"
	"honnef.co/go/menufx/f32"
	"honnef.co/go/menufx/preset"
)

var (
	background = color.NRGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	panelColor = color.NRGBA{R: 0x3c, G: 0x9d, B: 0x9b, A: 0xff}
	tintColor  = color.NRGBA{R: 0xf2, G: 0x8c, B: 0x28, A: 0xff}
)

func main() {
	name := flag.String("preset", "", "play only the named `preset` instead of cycling through all of them")
	file := flag.String("presets", "", "read presets from the JSON `file` instead of the built-in set")
	pause := flag.Float64("pause", 0.6, "seconds to wait between presets")
	fps := flag.Int("fps", 60, "frames per second")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	err = run(screen, player, max(*fps, 1))
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, player *preset.Player, fps int) error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					if err := player.Restart(baseScene(screen.Size())); err != nil {
						return err
					}
				}
			}
		case <-ticker.C:
			scene, err := player.Frame(baseScene(screen.Size()))
			if err != nil {
				return err
			}
			draw(screen, scene, player.Current())
		}
	}
}

// baseScene lays out the scene in cells for a w by h terminal.
func baseScene(w, h int) preset.Scene {
	return preset.Scene{
		Panel:  effect.Panel{Rect: image.Rect(w*3/10, h*3/10, w*7/10, h*6/10), Color: panelColor},
		Point:  f32.Pt(float32(w)/5, float32(h)*4/5),
		Goal:   f32.Pt(float32(w)*4/5, float32(h)*4/5),
		Target: image.Rect(w/10, h/10, w*4/10, h*3/10),
		Tint:   tintColor,
	}
}

func draw(screen tcell.Screen, s preset.Scene, title string) {
	bg := tcell.StyleDefault.Background(cellColor(background))
	screen.Fill(' ', bg)

	w, h := screen.Size()
	bounds := image.Rect(0, 0, w, h)
	outline := bg.Foreground(tcell.ColorGray)
	t := s.Target.Intersect(bounds)
	for x := t.Min.X; x < t.Max.X; x++ {
		screen.SetContent(x, t.Min.Y, '·', nil, outline)
		screen.SetContent(x, t.Max.Y-1, '·', nil, outline)
	}
	for y := t.Min.Y; y < t.Max.Y; y++ {
		screen.SetContent(t.Min.X, y, '·', nil, outline)
		screen.SetContent(t.Max.X-1, y, '·', nil, outline)
	}

	if s.Panel.Color.A != 0 {
		st := tcell.StyleDefault.Background(cellColor(over(background, s.Panel.Color)))
		r := s.Panel.Rect.Intersect(bounds)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				screen.SetContent(x, y, ' ', nil, st)
			}
		}
	}

	if p := f32.Round(s.Point); p.In(bounds) {
		screen.SetContent(p.X, p.Y, '●', nil, bg.Foreground(tcell.ColorWhite))
	}

	for i, r := range title {
		screen.SetContent(1+i, 0, r, nil, bg.Foreground(tcell.ColorSilver))
	}
	screen.Show()
}

// over composites fg onto an opaque bg, since cells have no alpha.
func over(bg, fg color.NRGBA) color.NRGBA {
	c := toColorful(bg).BlendRgb(toColorful(fg), float64(fg.A)/255)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func cellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
