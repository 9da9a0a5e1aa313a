// Package preset describes named effects in JSON and builds them.
//
// A preset document is an object mapping names to entries:
//
//	{
//		"menu-open": {"family": "drop", "mode": "DropDownIncrease", "duration": 0.25},
//		"blink":     {"family": "fade", "mode": "Pulsate", "duration": 1, "pulses": 3}
//	}
//
// The mode is named after the family's mode constants. For the ease family
// the mode is a curve name such as "BounceEaseOut".
package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/go-json-experiment/json"

	"honnef.co/go/menufx/animation"
	"honnef.co/go/menufx/effect"
)

var (
	ErrUnknownFamily = errors.New("unknown effect family")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Entry is the description of a single effect.
type Entry struct {
	Family   string  `json:"family"`
	Mode     string  `json:"mode"`
	Duration float64 `json:"duration"`

	// Pulsate only.
	Pulses int `json:"pulses"`
	// Slide and shake.
	Distance float64 `json:"distance"`
	// Shake only.
	Times int `json:"times"`
	// Tint only. Empty means Linear.
	Curve string `json:"curve"`
}

// Set is a collection of named entries.
type Set map[string]Entry

//go:embed default.json
var defaultJSON []byte

// Default returns the presets shipped with the package.
func Default() Set {
	s, err := Decode(defaultJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded presets are invalid: %s", err))
	}
	return s
}

// Decode parses a preset document. Unknown fields are rejected, and every
// entry is checked by building it once.
func Decode(data []byte) (Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s, json.RejectUnknownMembers(true)); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}
	var clock animation.ManualClock
	for _, name := range s.Names() {
		if _, err := s[name].Build(&clock); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return s, nil
}

// Load reads and decodes the preset document at path.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Names returns the preset names in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Build instantiates the named preset.
func (s Set) Build(name string, clock animation.Clock) (effect.Effect, error) {
	e, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}
	fx, err := e.Build(clock)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return fx, nil
}

// Build instantiates the entry.
func (e Entry) Build(clock animation.Clock) (effect.Effect, error) {
	fn, ok := builders[e.Family]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFamily, e.Family)
	}
	return fn(e, clock)
}

type textMode interface {
	UnmarshalText([]byte) error
}

func parse[M any, PM interface {
	*M
	textMode
}](s string) (M, error) {
	var m M
	err := PM(&m).UnmarshalText([]byte(s))
	return m, err
}

var builders = map[string]func(e Entry, clock animation.Clock) (effect.Effect, error){
	"ease": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		c, err := parse[animation.Curve](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewEase(clock, c, e.Duration)
	},
	"fade": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.FadeMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewFade(clock, m, e.Duration, e.Pulses)
	},
	"drop": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.DropMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewDrop(clock, m, e.Duration)
	},
	"resize": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.ResizeMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewResize(clock, m, e.Duration)
	},
	"scale": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.ScaleMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewScale(clock, m, e.Duration)
	},
	"misc": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.MiscMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewMisc(clock, m, e.Duration)
	},
	"slide": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.SlideMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewSlide(clock, m, e.Duration, e.Distance)
	},
	"shake": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.ShakeMode](e.Mode)
		if err != nil {
			return nil, err
		}
		return effect.NewShake(clock, m, e.Duration, e.Distance, e.Times)
	},
	"tint": func(e Entry, clock animation.Clock) (effect.Effect, error) {
		m, err := parse[effect.TintMode](e.Mode)
		if err != nil {
			return nil, err
		}
		c := animation.CurveLinear
		if e.Curve != "" {
			if c, err = parse[animation.Curve](e.Curve); err != nil {
				return nil, err
			}
		}
		return effect.NewTint(clock, m, c, e.Duration)
	},
}
