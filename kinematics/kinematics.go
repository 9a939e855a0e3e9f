// Package kinematics drives a top-down actor's acceleration and velocity from
// held directional controls.
//
// A frame runs in four phases that the host calls in order: Reset, ApplyInput,
// Decelerate and Integrate. Step runs all four. Position integration is left to
// the host so it can resolve collisions against the finished velocity.
package kinematics

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid movement config")

// Axis identifies one of the two independent movement axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

var axes = [...]Axis{AxisX, AxisY}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// FacingLabel is the last non-neutral direction on an axis.
type FacingLabel string

const (
	FacingNone  FacingLabel = ""
	FacingLeft  FacingLabel = "left"
	FacingRight FacingLabel = "right"
	FacingUp    FacingLabel = "up"
	FacingDown  FacingLabel = "down"
)

// Facing holds the independent x and y facing labels.
type Facing struct {
	X FacingLabel
	Y FacingLabel
}

// State is the per-entity movement state mutated every frame.
type State struct {
	Velocity     dmath.Vec2
	Acceleration dmath.Vec2
	Facing       Facing

	driven [len(axes)]bool // input acceleration applied this frame, per axis
}

// Input is a read-only snapshot of the controls for one frame.
// X is -1 (left), 0 or +1 (right); Y is -1 (up), 0 or +1 (down).
type Input struct {
	X   int
	Y   int
	Run bool
}

// Moving reports whether a direction is held on either axis.
func (in Input) Moving() bool {
	return in.X != 0 || in.Y != 0
}

func (in Input) held(a Axis) int {
	if a == AxisX {
		return in.X
	}
	return in.Y
}

// Permit decides whether the actor may accelerate along axis in direction dir.
// A nil Permit allows all movement.
type Permit func(axis Axis, dir int) bool

// Config holds the movement magnitudes of one entity.
type Config struct {
	Acceleration     float64 // px/s² applied while a direction is held
	StopDeceleration float64 // px/s² applied when stopping, turning or over the cap
	WalkMaxVelocity  float64
	RunMaxVelocity   float64
	StopEpsilon      float64 // speeds below this snap to zero while decelerating
	Policy           Policy
}

// DefaultConfig returns the tuning used by the movement sandbox.
func DefaultConfig() Config {
	return Config{
		Acceleration:     300,
		StopDeceleration: 600,
		WalkMaxVelocity:  200,
		RunMaxVelocity:   400,
		StopEpsilon:      1,
		Policy:           PolicyTurnaround,
	}
}

// Validate checks that every magnitude is usable.
func (c Config) Validate() error {
	switch {
	case c.Acceleration <= 0:
		return fmt.Errorf("%w: acceleration must be positive, got %v", ErrInvalidConfig, c.Acceleration)
	case c.StopDeceleration <= 0:
		return fmt.Errorf("%w: stop deceleration must be positive, got %v", ErrInvalidConfig, c.StopDeceleration)
	case c.WalkMaxVelocity <= 0:
		return fmt.Errorf("%w: walk max velocity must be positive, got %v", ErrInvalidConfig, c.WalkMaxVelocity)
	case c.RunMaxVelocity < c.WalkMaxVelocity:
		return fmt.Errorf("%w: run max velocity %v is below walk max velocity %v", ErrInvalidConfig, c.RunMaxVelocity, c.WalkMaxVelocity)
	case c.StopEpsilon < 0:
		return fmt.Errorf("%w: stop epsilon must not be negative, got %v", ErrInvalidConfig, c.StopEpsilon)
	}
	if _, ok := policyNames[c.Policy]; !ok {
		return fmt.Errorf("%w: %w %d", ErrInvalidConfig, ErrUnknownPolicy, int(c.Policy))
	}
	return nil
}

// Step runs a full frame: reset, input, deceleration and velocity integration.
func Step(s *State, in Input, cfg Config, permit Permit, dt float64) {
	Reset(s)
	ApplyInput(s, in, cfg, permit)
	Decelerate(s, in, cfg)
	Integrate(s, in, cfg, dt)
}

// Reset clears the acceleration. Acceleration never carries over between frames.
func Reset(s *State) {
	s.Acceleration = dmath.Vec2{}
	s.driven = [len(axes)]bool{}
}

// ApplyInput sets the input-driven acceleration and facing for each held axis.
func ApplyInput(s *State, in Input, cfg Config, permit Permit) {
	for _, a := range axes {
		dir := in.held(a)
		if dir == 0 {
			continue
		}
		if permit != nil && !permit(a, dir) {
			continue
		}
		_, acc := s.axis(a)
		*acc = cfg.Acceleration * float64(dir)
		s.driven[a] = true
		s.setFacing(a, dir)
	}
}

// MaxVelocity is the run cap when Run is held while moving, otherwise the walk cap.
func MaxVelocity(in Input, cfg Config) float64 {
	if in.Run && in.Moving() {
		return cfg.RunMaxVelocity
	}
	return cfg.WalkMaxVelocity
}

// Decelerate applies the configured policy and then snaps near-zero speeds to
// exactly zero on each axis.
func Decelerate(s *State, in Input, cfg Config) {
	limit := MaxVelocity(in, cfg)
	for _, a := range axes {
		v, acc := s.axis(a)
		if cfg.Policy.brakes(*v, *acc, s.driven[a], limit) {
			*acc = -cfg.StopDeceleration * sign(*v)
		}

		if isDecelerating(*v, *acc) && math.Abs(*v) < cfg.StopEpsilon {
			*v = 0
			*acc = 0
		}
	}
}

// Integrate advances velocity by acceleration*dt.
//
// On an axis without applied input (nothing held, or the move was refused),
// braking never carries the velocity past zero. On a driven axis the velocity
// settles on the cap: accelerating never overshoots it and braking from above
// it never undershoots it.
func Integrate(s *State, in Input, cfg Config, dt float64) {
	limit := MaxVelocity(in, cfg)
	for _, a := range axes {
		v, acc := s.axis(a)
		held := float64(in.held(a))
		driven := s.driven[a]
		before := *v
		*v += *acc * dt

		switch {
		case !driven && before != 0 && sign(*v) != sign(before):
			*v = 0
			*acc = 0
		case driven && sign(before) == held && math.Abs(before) > limit && math.Abs(*v) < limit:
			*v = limit * held
		case driven && sign(*acc) == held && math.Abs(before) <= limit && math.Abs(*v) > limit:
			*v = limit * held
		}
	}
}

// StopFrames bounds the number of frames needed to brake from speed to zero.
func StopFrames(speed float64, cfg Config, dt float64) int {
	speed = math.Abs(speed)
	if speed == 0 {
		return 0
	}
	return int(math.Ceil(speed / (cfg.StopDeceleration * dt)))
}

func (s *State) axis(a Axis) (v, acc *float64) {
	if a == AxisX {
		return &s.Velocity.X, &s.Acceleration.X
	}
	return &s.Velocity.Y, &s.Acceleration.Y
}

func (s *State) setFacing(a Axis, dir int) {
	switch {
	case a == AxisX && dir < 0:
		s.Facing.X = FacingLeft
	case a == AxisX:
		s.Facing.X = FacingRight
	case dir < 0:
		s.Facing.Y = FacingUp
	default:
		s.Facing.Y = FacingDown
	}
}

func isDecelerating(v, acc float64) bool {
	return sign(v) != 0 && sign(v) != sign(acc)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
