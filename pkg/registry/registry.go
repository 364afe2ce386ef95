package registry

import (
	"github.com/arthur-debert/evreg/pkg/handlerset"
	"github.com/arthur-debert/evreg/pkg/logging"
	"github.com/arthur-debert/evreg/pkg/signature"
	"github.com/rs/zerolog"
)

// Table is the call surface shared by Registry and Synchronized
type Table[K comparable, H comparable] interface {
	// AddHandler subscribes handler to eventID under sig
	AddHandler(eventID K, handler H, sig signature.Signature) error

	// RemoveHandler unsubscribes handler from eventID under sig
	RemoveHandler(eventID K, handler H, sig signature.Signature) error

	// Entry returns a snapshot of the entry for eventID
	Entry(eventID K) (Entry[H], bool)

	// Handlers returns the handlers for eventID in subscription order
	Handlers(eventID K) []H

	// Signature returns the signature on record for eventID
	Signature(eventID K) (signature.Signature, bool)

	// Has checks if eventID has at least one handler
	Has(eventID K) bool

	// Events returns the registered identifiers in first-registration order
	Events() []K

	// Len returns the number of registered identifiers
	Len() int
}

// Entry is a read-only snapshot of one identifier's handlers and signature
type Entry[H comparable] struct {
	Handlers  []H
	Signature signature.Signature
}

// entry is the live record; handlers is never empty while stored
type entry[H comparable] struct {
	handlers  *handlerset.Set[H]
	signature signature.Signature
}

// Registry maps event identifiers to their handler entries
type Registry[K comparable, H comparable] struct {
	entries map[K]*entry[H]
	order   []K
	logger  zerolog.Logger
}

// New creates an empty Registry. Its logger is taken from the global
// logger at this point, so call it after logging.SetupLogger.
func New[K comparable, H comparable]() *Registry[K, H] {
	return &Registry[K, H]{
		entries: make(map[K]*entry[H]),
		logger:  logging.GetLogger("registry"),
	}
}

// AddHandler subscribes handler to eventID.
//
// The first handler for an identifier records sig. Later calls must pass an
// equal signature; otherwise a SIGNATURE_MISMATCH error is returned and
// nothing changes. Adding a handler that is already present is a no-op.
func (r *Registry[K, H]) AddHandler(eventID K, handler H, sig signature.Signature) error {
	logger := &r.logger

	e, ok := r.entries[eventID]
	if !ok {
		r.entries[eventID] = &entry[H]{
			handlers:  handlerset.New(handler),
			signature: sig,
		}
		r.order = append(r.order, eventID)
		logger.Debug().
			Interface("event", eventID).
			Str("signature", sig.String()).
			Msg("Registered first handler for event")
		return nil
	}

	if err := signature.Validate(eventID, e.signature, sig); err != nil {
		logger.Debug().Err(err).Interface("event", eventID).Msg("Rejected handler")
		return err
	}

	if !e.handlers.Add(handler) {
		logger.Trace().Interface("event", eventID).Msg("Handler already registered")
		return nil
	}

	logger.Debug().
		Interface("event", eventID).
		Int("handlers", e.handlers.Len()).
		Msg("Added handler")
	return nil
}

// RemoveHandler unsubscribes handler from eventID.
//
// An unknown identifier or an absent handler is a no-op. A signature that
// disagrees with the one on record returns SIGNATURE_MISMATCH and nothing
// changes. Removing the last handler drops the identifier.
func (r *Registry[K, H]) RemoveHandler(eventID K, handler H, sig signature.Signature) error {
	logger := &r.logger

	e, ok := r.entries[eventID]
	if !ok {
		logger.Trace().Interface("event", eventID).Msg("Remove on unregistered event")
		return nil
	}

	if err := signature.Validate(eventID, e.signature, sig); err != nil {
		logger.Debug().Err(err).Interface("event", eventID).Msg("Rejected handler removal")
		return err
	}

	if !e.handlers.Remove(handler) {
		logger.Trace().Interface("event", eventID).Msg("Handler not registered")
		return nil
	}

	if e.handlers.IsEmpty() {
		r.drop(eventID)
		logger.Debug().Interface("event", eventID).Msg("Removed last handler, event dropped")
		return nil
	}

	logger.Debug().
		Interface("event", eventID).
		Int("handlers", e.handlers.Len()).
		Msg("Removed handler")
	return nil
}

// Entry returns a snapshot of the entry for eventID
func (r *Registry[K, H]) Entry(eventID K) (Entry[H], bool) {
	e, ok := r.entries[eventID]
	if !ok {
		return Entry[H]{}, false
	}
	return Entry[H]{
		Handlers:  e.handlers.Items(),
		Signature: e.signature,
	}, true
}

// Handlers returns the handlers for eventID, nil when it is not registered
func (r *Registry[K, H]) Handlers(eventID K) []H {
	e, ok := r.entries[eventID]
	if !ok {
		return nil
	}
	return e.handlers.Items()
}

// Signature returns the signature on record for eventID
func (r *Registry[K, H]) Signature(eventID K) (signature.Signature, bool) {
	e, ok := r.entries[eventID]
	if !ok {
		return signature.None(), false
	}
	return e.signature, true
}

// Has checks if eventID is registered
func (r *Registry[K, H]) Has(eventID K) bool {
	_, ok := r.entries[eventID]
	return ok
}

// Events returns registered identifiers in first-registration order
func (r *Registry[K, H]) Events() []K {
	out := make([]K, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered identifiers
func (r *Registry[K, H]) Len() int {
	return len(r.entries)
}

func (r *Registry[K, H]) drop(eventID K) {
	delete(r.entries, eventID)
	for i, k := range r.order {
		if k == eventID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
