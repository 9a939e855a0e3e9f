package controls

import "slices"

// History lists the currently held keys, oldest press first.
type History[K comparable] struct {
	keys []K
}

// Press records k as the most recent press. A key already held moves to the end.
func (h *History[K]) Press(k K) {
	h.Release(k)
	h.keys = append(h.keys, k)
}

// Release forgets k.
func (h *History[K]) Release(k K) {
	if i := slices.Index(h.keys, k); i >= 0 {
		h.keys = slices.Delete(h.keys, i, i+1)
	}
}

// Sync reconciles the history with the keys held this frame. Keys no longer
// held are dropped; newly held keys are appended in the order given.
func (h *History[K]) Sync(held []K) {
	h.keys = slices.DeleteFunc(h.keys, func(k K) bool {
		return !slices.Contains(held, k)
	})
	for _, k := range held {
		if !slices.Contains(h.keys, k) {
			h.keys = append(h.keys, k)
		}
	}
}

// Keys returns a copy of the held keys, oldest first.
func (h *History[K]) Keys() []K {
	return slices.Clone(h.keys)
}

// Len is the number of held keys.
func (h *History[K]) Len() int {
	return len(h.keys)
}

// Reset forgets every key.
func (h *History[K]) Reset() {
	h.keys = h.keys[:0]
}

// Latest scans from the most recent press and returns the first control among
// candidates that owns a held key.
func (h *History[K]) Latest(s *Scheme[K], candidates ...Control) (Control, bool) {
	for i := len(h.keys) - 1; i >= 0; i-- {
		for _, c := range candidates {
			if s.Owns(c, h.keys[i]) {
				return c, true
			}
		}
	}
	return 0, false
}
