package kinematics

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownPolicy is returned when a policy name or value is not recognised.
var ErrUnknownPolicy = errors.New("unknown deceleration policy")

// Policy selects when stop deceleration replaces the input acceleration.
// The two policies give different velocity curves around direction changes
// and are never combined.
type Policy int

const (
	// PolicyTurnaround brakes when no direction is held, when over the speed
	// cap, and when the held direction opposes the current motion.
	PolicyTurnaround Policy = iota
	// PolicyCoast brakes only when no direction is held or when over the speed
	// cap. Reversing direction uses the plain input acceleration.
	PolicyCoast
)

var policyNames = map[Policy]string{
	PolicyTurnaround: "turnaround",
	PolicyCoast:      "coast",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy resolves a policy by name, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Next cycles to the other policy.
func (p Policy) Next() Policy {
	if p == PolicyTurnaround {
		return PolicyCoast
	}
	return PolicyTurnaround
}

func (p Policy) brakes(v, acc float64, driven bool, limit float64) bool {
	if v == 0 {
		return false
	}
	over := math.Abs(v) > limit
	if p == PolicyCoast {
		return !driven || over
	}
	opposed := driven && sign(acc) == -sign(v)
	return !driven || over || opposed
}
