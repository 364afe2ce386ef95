package types

import (
	"github.com/google/uuid"
)

// Handler is an opaque reference to one callable.
// Two handlers are the same handler only if they are the same pointer;
// Name is for display and may repeat.
type Handler struct {
	ID   uuid.UUID
	Name string
	Fn   interface{}
}

// NewHandler creates a handler reference with a fresh ID
func NewHandler(name string, fn interface{}) *Handler {
	return &Handler{
		ID:   uuid.New(),
		Name: name,
		Fn:   fn,
	}
}

// String returns the handler name, or its ID when unnamed
func (h *Handler) String() string {
	if h == nil {
		return "<nil>"
	}
	if h.Name != "" {
		return h.Name
	}
	return h.ID.String()
}

// HandlerPool interns handlers by name so that every mention of a name
// resolves to the same reference
type HandlerPool struct {
	byName map[string]*Handler
	names  []string
}

// NewHandlerPool creates an empty pool
func NewHandlerPool() *HandlerPool {
	return &HandlerPool{byName: make(map[string]*Handler)}
}

// Get returns the handler for name, creating it on first use
func (p *HandlerPool) Get(name string) *Handler {
	if h, ok := p.byName[name]; ok {
		return h
	}
	h := NewHandler(name, nil)
	p.byName[name] = h
	p.names = append(p.names, name)
	return h
}

// Lookup returns the handler for name without creating it
func (p *HandlerPool) Lookup(name string) (*Handler, bool) {
	h, ok := p.byName[name]
	return h, ok
}

// Names returns interned names in first-use order
func (p *HandlerPool) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of interned handlers
func (p *HandlerPool) Len() int { return len(p.names) }
