// Package event carries produced property values from producers (the store,
// the sampling scheduler, fake-data generators) to consumers. Producers push
// into a Sink; the concrete sink for a subscriber channel is Queue.
package event

import "github.com/openvhal/vhal-go/pkg/pool"

// Sink receives produced property values. Push must be safe for concurrent
// use and must not block on I/O; ownership of the handle transfers to the
// sink.
type Sink interface {
	Push(v *pool.Ref)
}

// Func adapts a function to the Sink interface.
type Func func(v *pool.Ref)

// Push calls f with the value.
func (f Func) Push(v *pool.Ref) { f(v) }

// Discard releases every pushed value immediately. Use when produced events
// are not observed.
type Discard struct{}

// Push releases the value.
func (Discard) Push(v *pool.Ref) { v.Release() }

// Compile-time interface satisfaction checks.
var (
	_ Sink = Func(nil)
	_ Sink = Discard{}
	_ Sink = (*Queue[*pool.Ref])(nil)
)
