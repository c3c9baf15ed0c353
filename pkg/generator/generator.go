// Package generator produces synthetic property events for development and
// testing. Generators emit through the same sink path as real signals, so a
// consumer cannot tell synthetic traffic apart except by property and
// content.
package generator

import (
	"sync"

	"github.com/openvhal/vhal-go/pkg/pool"
)

// EmitFunc delivers one produced value. Ownership of the handle transfers to
// the callee.
type EmitFunc func(v *pool.Ref)

// Generator is a stoppable synthetic event producer.
type Generator interface {
	// Start begins producing events. Must be called at most once.
	Start()

	// Stop halts production and joins the producer goroutine. Safe to call
	// more than once.
	Stop()
}

// Hub tracks running generators by an int64 cookie (a property ID for linear
// generators, a script handle for replays). Registering under a live cookie
// replaces the previous generator; unregistering an unknown cookie is a
// no-op, consistent with idempotent teardown.
type Hub struct {
	mu         sync.Mutex
	generators map[int64]Generator
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{generators: make(map[int64]Generator)}
}

// Register stops any generator already running under cookie, then stores and
// starts g.
func (h *Hub) Register(cookie int64, g Generator) {
	h.mu.Lock()
	old := h.generators[cookie]
	h.generators[cookie] = g
	h.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	g.Start()
}

// Unregister stops the generator under cookie. Returns false if none was
// running; that is not an error.
func (h *Hub) Unregister(cookie int64) bool {
	h.mu.Lock()
	g, ok := h.generators[cookie]
	if ok {
		delete(h.generators, cookie)
	}
	h.mu.Unlock()

	if !ok {
		return false
	}
	g.Stop()
	return true
}

// StopAll stops every running generator.
func (h *Hub) StopAll() {
	h.mu.Lock()
	generators := h.generators
	h.generators = make(map[int64]Generator)
	h.mu.Unlock()

	for _, g := range generators {
		g.Stop()
	}
}

// Len returns the number of running generators.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.generators)
}
