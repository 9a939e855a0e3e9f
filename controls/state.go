package controls

import "github.com/automoto/topdown/kinematics"

// State tracks the held keys and per-control pressed flags across frames.
// Pressed/released edges are derived by comparing the current and previous frame.
type State[K comparable] struct {
	scheme   *Scheme[K]
	history  History[K]
	current  [controlCount]bool
	previous [controlCount]bool
}

// NewState creates a tracker for the given scheme.
func NewState[K comparable](scheme *Scheme[K]) *State[K] {
	return &State[K]{scheme: scheme}
}

// Update advances one frame with the keys currently held.
func (s *State[K]) Update(held []K) {
	s.previous = s.current
	s.current = [controlCount]bool{}
	s.history.Sync(held)

	for _, k := range s.history.keys {
		for c := Control(0); c < controlCount; c++ {
			if s.scheme.Owns(c, k) {
				s.current[c] = true
			}
		}
	}
}

// Scheme returns the key mapping in use.
func (s *State[K]) Scheme() *Scheme[K] {
	return s.scheme
}

// History returns the held keys, oldest press first.
func (s *State[K]) History() []K {
	return s.history.Keys()
}

func (s *State[K]) IsHeld(c Control) bool {
	return s.current[c]
}

func (s *State[K]) WasPressed(c Control) bool {
	return s.current[c] && !s.previous[c]
}

func (s *State[K]) WasReleased(c Control) bool {
	return !s.current[c] && s.previous[c]
}

// HeldX returns Left or Right, whichever was pressed most recently.
func (s *State[K]) HeldX() (Control, bool) {
	return s.history.Latest(s.scheme, Left, Right)
}

// HeldY returns Up or Down, whichever was pressed most recently.
func (s *State[K]) HeldY() (Control, bool) {
	return s.history.Latest(s.scheme, Up, Down)
}

// Snapshot resolves the frame into a kinematics input.
func (s *State[K]) Snapshot() kinematics.Input {
	var in kinematics.Input
	if c, ok := s.HeldX(); ok {
		in.X = direction(c)
	}
	if c, ok := s.HeldY(); ok {
		in.Y = direction(c)
	}
	in.Run = s.IsHeld(Run)
	return in
}

func direction(c Control) int {
	if c == Left || c == Up {
		return -1
	}
	return 1
}
