// Package handlerset provides the ordered, deduplicating handler collection
// stored under each event identifier.
package handlerset

// Set is an ordered collection of handler references compared with ==.
// A handler appears at most once; insertion order is preserved.
// The zero value is an empty set ready to use.
type Set[H comparable] struct {
	items []H
}

// New creates a set holding the given handlers, dropping duplicates
func New[H comparable](handlers ...H) *Set[H] {
	s := &Set[H]{items: make([]H, 0, len(handlers))}
	for _, h := range handlers {
		s.Add(h)
	}
	return s
}

// Add appends h unless it is already present.
// It reports whether the set changed.
func (s *Set[H]) Add(h H) bool {
	if s.Contains(h) {
		return false
	}
	s.items = append(s.items, h)
	return true
}

// Remove deletes the first occurrence of h.
// It reports whether anything was removed.
func (s *Set[H]) Remove(h H) bool {
	for i, item := range s.items {
		if item == h {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether h is in the set
func (s *Set[H]) Contains(h H) bool {
	return s.indexOf(h) >= 0
}

// Len returns the number of handlers
func (s *Set[H]) Len() int { return len(s.items) }

// IsEmpty reports whether the set holds no handlers
func (s *Set[H]) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a copy of the handlers in insertion order
func (s *Set[H]) Items() []H {
	out := make([]H, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set[H]) indexOf(h H) int {
	for i, item := range s.items {
		if item == h {
			return i
		}
	}
	return -1
}
