// Package replay drives the kinematics controller from scripted input without
// a window, for tuning and regression traces.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/topdown/controls"
	"github.com/automoto/topdown/kinematics"
	dmath "github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that cannot be run.
var ErrInvalidScript = errors.New("invalid replay script")

// DefaultDT is one frame at 60 ticks per second.
const DefaultDT = 1.0 / 60

// Script is a sequence of held-control segments.
type Script struct {
	DT            float64    `yaml:"dt"`
	StartVelocity [2]float64 `yaml:"start_velocity"`
	Steps         []Step     `yaml:"steps"`
}

// Step holds the listed controls for Frames frames. Controls listed later count
// as pressed more recently; controls carried over from the previous step keep
// their original press order.
type Step struct {
	Frames int      `yaml:"frames"`
	Hold   []string `yaml:"hold"`
}

// Frame is the finished state of one simulated frame.
type Frame struct {
	Index int
	Input kinematics.Input
	State kinematics.State
}

// LoadScript reads and validates a YAML script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{DT: DefaultDT}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks frame counts, the time step and every control name.
func (s *Script) Validate() error {
	if s.DT <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidScript, s.DT)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	for i, st := range s.Steps {
		if st.Frames <= 0 {
			return fmt.Errorf("%w: step %d: frames must be positive, got %d", ErrInvalidScript, i, st.Frames)
		}
		for _, name := range st.Hold {
			if _, err := controls.ParseControl(name); err != nil {
				return fmt.Errorf("%w: step %d: %w", ErrInvalidScript, i, err)
			}
		}
	}
	return nil
}

// TotalFrames is the length of the script in frames.
func (s *Script) TotalFrames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

// Run simulates the script with cfg, calling visit after every frame, and
// returns the final state.
func Run(s *Script, cfg kinematics.Config, visit func(Frame)) (kinematics.State, error) {
	if err := s.Validate(); err != nil {
		return kinematics.State{}, err
	}

	// Each control is its own key so press order in the script is the recency order.
	bindings := make(map[string][]controls.Control)
	for _, c := range controls.All() {
		bindings[c.String()] = []controls.Control{c}
	}
	scheme, err := controls.NewScheme(bindings)
	if err != nil {
		return kinematics.State{}, err
	}
	input := controls.NewState(scheme)

	state := kinematics.State{
		Velocity: dmath.Vec2{X: s.StartVelocity[0], Y: s.StartVelocity[1]},
	}

	frame := 0
	for _, st := range s.Steps {
		held := make([]controls.Control, 0, len(st.Hold))
		for _, name := range st.Hold {
			c, _ := controls.ParseControl(name)
			held = append(held, c)
		}

		for i := 0; i < st.Frames; i++ {
			frame++
			input.Update(held)
			in := input.Snapshot()
			kinematics.Step(&state, in, cfg, nil, s.DT)
			if visit != nil {
				visit(Frame{Index: frame, Input: in, State: state})
			}
		}
	}
	return state, nil
}
