package log

import "time"

// Event is one trace record of property-server activity.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// InstanceID identifies the HAL instance that produced the event (UUID).
	InstanceID string `cbor:"2,keyasint"`

	// Source is the component that produced the event.
	Source Source `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Prop is the property ID the event concerns, if any.
	Prop int32 `cbor:"5,keyasint,omitempty"`

	// AreaID narrows the event to one area.
	AreaID int32 `cbor:"6,keyasint,omitempty"`

	// SampleRate is the subscription rate in Hz, for subscription events.
	SampleRate float32 `cbor:"7,keyasint,omitempty"`

	// Message is a human-readable description.
	Message string `cbor:"8,keyasint,omitempty"`

	// Err is the error text for error events.
	Err string `cbor:"9,keyasint,omitempty"`
}

// Source is the component that produced a trace event.
type Source uint8

const (
	// SourceStore indicates the property store (external writes).
	SourceStore Source = 0
	// SourceScheduler indicates the sampling scheduler.
	SourceScheduler Source = 1
	// SourceGenerator indicates a fake-data generator.
	SourceGenerator Source = 2
	// SourceDebug indicates the debug command surface.
	SourceDebug Source = 3
	// SourceHeartbeat indicates the liveness heartbeat.
	SourceHeartbeat Source = 4
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceStore:
		return "STORE"
	case SourceScheduler:
		return "SCHEDULER"
	case SourceGenerator:
		return "GENERATOR"
	case SourceDebug:
		return "DEBUG"
	case SourceHeartbeat:
		return "HEARTBEAT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryEvent indicates a produced property value.
	CategoryEvent Category = 0
	// CategoryState indicates a state change (subscription, generator).
	CategoryState Category = 1
	// CategoryError indicates a rejected operation or internal error.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryEvent:
		return "EVENT"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
