// Package controls maps logical controls to physical keys and resolves
// simultaneous opposite presses by recency.
package controls

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownControl is returned for control names that have no mapping.
var ErrUnknownControl = errors.New("unknown control")

// Control is a logical input action.
type Control int

const (
	Left Control = iota
	Right
	Up
	Down
	Jump
	Run
	controlCount
)

var controlNames = [controlCount]string{
	Left:  "Left",
	Right: "Right",
	Up:    "Up",
	Down:  "Down",
	Jump:  "Jump",
	Run:   "Run",
}

func (c Control) String() string {
	if c < 0 || c >= controlCount {
		return fmt.Sprintf("Control(%d)", int(c))
	}
	return controlNames[c]
}

// All returns every control in declaration order.
func All() []Control {
	all := make([]Control, controlCount)
	for i := range all {
		all[i] = Control(i)
	}
	return all
}

// ParseControl resolves a control by name, case-insensitively.
func ParseControl(name string) (Control, error) {
	for c, n := range controlNames {
		if strings.EqualFold(n, name) {
			return Control(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownControl, name)
}

// Scheme maps each control to the keys that trigger it.
type Scheme[K comparable] struct {
	keys [controlCount][]K
}

// NewScheme builds a scheme from control names. Unknown names fail.
func NewScheme[K comparable](bindings map[string][]K) (*Scheme[K], error) {
	s := &Scheme[K]{}
	for name, keys := range bindings {
		c, err := ParseControl(name)
		if err != nil {
			return nil, err
		}
		s.keys[c] = append([]K(nil), keys...)
	}
	return s, nil
}

// Keys returns the keys bound to c.
func (s *Scheme[K]) Keys(c Control) []K {
	return s.keys[c]
}

// Owns reports whether k is bound to c.
func (s *Scheme[K]) Owns(c Control, k K) bool {
	for _, bound := range s.keys[c] {
		if bound == k {
			return true
		}
	}
	return false
}
