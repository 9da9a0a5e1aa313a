package preset

import (
	"errors"
	"fmt"

	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/effect"
)

// Player plays a list of presets one after another, pausing between them,
// and loops back to the first when the list is done.
type Player struct {
	set   Set
	names []string
	clock animation.Clock
	pause float64

	idx  int
	fx   effect.Effect
	next float64
}

func NewPlayer(set Set, names []string, clock animation.Clock, pause float64) (*Player, error) {
	if len(names) == 0 {
		return nil, errors.New("no presets to play")
	}
	for _, name := range names {
		if _, ok := set[name]; !ok {
			return nil, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
		}
	}
	return &Player{
		set:   set,
		names: names,
		clock: clock,
		pause: pause,
	}, nil
}

// Current returns the name of the preset being played.
func (p *Player) Current() string { return p.names[p.idx] }

// Effect returns the running effect, or nil before the first frame.
func (p *Player) Effect() effect.Effect { return p.fx }

// Frame returns base with the current value of the playing effect applied.
// Once an effect and the pause after it are over, Frame starts the next
// preset from base.
func (p *Player) Frame(base Scene) (Scene, error) {
	if p.fx == nil {
		if err := p.start(base); err != nil {
			return base, err
		}
	} else if p.clock.Now() >= p.next {
		p.idx = (p.idx + 1) % len(p.names)
		if err := p.start(base); err != nil {
			return base, err
		}
	}
	return Apply(p.fx, base), nil
}

// Working reports whether the playing effect is still running.
func (p *Player) Working() bool { return p.fx != nil && p.fx.IsWorking() }

// Wait returns the seconds left until Frame moves on to the next preset.
func (p *Player) Wait() float64 {
	if p.fx == nil {
		return 0
	}
	return max(p.next-p.clock.Now(), 0)
}

// Restart plays the current preset again from base.
func (p *Player) Restart(base Scene) error {
	return p.start(base)
}

func (p *Player) start(base Scene) error {
	fx, err := p.set.Build(p.names[p.idx], p.clock)
	if err != nil {
		return err
	}
	if err := Start(fx, base); err != nil {
		return err
	}
	p.fx = fx
	p.next = p.clock.Now() + max(fx.Duration(), 0) + p.pause
	return nil
}
