package registry

import (
	"sync"

	"github.com/arthur-debert/evreg/pkg/signature"
)

// Synchronized guards a Registry with one RWMutex over the whole table.
// Each call observes the complete effect of every call that returned
// before it started.
type Synchronized[K comparable, H comparable] struct {
	mu  sync.RWMutex
	reg *Registry[K, H]
}

// NewSynchronized creates an empty registry that is safe for concurrent use
func NewSynchronized[K comparable, H comparable]() *Synchronized[K, H] {
	return &Synchronized[K, H]{reg: New[K, H]()}
}

// AddHandler subscribes handler to eventID
func (s *Synchronized[K, H]) AddHandler(eventID K, handler H, sig signature.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AddHandler(eventID, handler, sig)
}

// RemoveHandler unsubscribes handler from eventID
func (s *Synchronized[K, H]) RemoveHandler(eventID K, handler H, sig signature.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RemoveHandler(eventID, handler, sig)
}

// Entry returns a snapshot of the entry for eventID
func (s *Synchronized[K, H]) Entry(eventID K) (Entry[H], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Entry(eventID)
}

// Handlers returns the handlers for eventID
func (s *Synchronized[K, H]) Handlers(eventID K) []H {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Handlers(eventID)
}

// Signature returns the signature on record for eventID
func (s *Synchronized[K, H]) Signature(eventID K) (signature.Signature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Signature(eventID)
}

// Has checks if eventID is registered
func (s *Synchronized[K, H]) Has(eventID K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Has(eventID)
}

// Events returns registered identifiers in first-registration order
func (s *Synchronized[K, H]) Events() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Events()
}

// Len returns the number of registered identifiers
func (s *Synchronized[K, H]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Len()
}

var (
	_ Table[string, *int] = (*Registry[string, *int])(nil)
	_ Table[string, *int] = (*Synchronized[string, *int])(nil)
)
