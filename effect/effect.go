// Package effect implements the transient visual effects used by menus:
// eased movement, fades and pulses, panel drops, resizing, scaling, slides,
// shakes and color tints.
//
// Every effect is pull based. The host calls Start with the current value of
// a property and then reads Value once per frame. No effect owns a goroutine
// or a timer; time only advances through the Clock passed at construction.
// Effects are not safe for concurrent use.
package effect

import (
	"errors"
	"fmt"
)

// Effect is the part of the effect API that does not depend on the
// property type.
type Effect interface {
	IsWorking() bool
	Stop()
	Frozen() bool
	Duration() float64
}

var ErrInvalidMode = errors.New("invalid effect mode")

func invalidMode[M ~uint8](family string, m M) error {
	return fmt.Errorf("%s: %w %d", family, ErrInvalidMode, uint8(m))
}

func modeString[M ~uint8](names []string, kind string, m M) string {
	if int(m) >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, uint8(m))
	}
	return names[m]
}

func modeText[M ~uint8](names []string, kind string, m M) ([]byte, error) {
	if int(m) >= len(names) {
		return nil, invalidMode(kind, m)
	}
	return []byte(names[m]), nil
}

func parseMode[M ~uint8](names []string, kind string, b []byte) (M, error) {
	for i, name := range names {
		if name == string(b) {
			return M(i), nil
		}
	}
	return 0, fmt.Errorf("%s: %w %q", kind, ErrInvalidMode, b)
}
