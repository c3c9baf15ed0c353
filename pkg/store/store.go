// Package store is the authoritative registry of property configurations and
// their last-known values. Writes are validated against the declared schema
// before anything is applied.
package store

import (
	"sync"
	"time"

	"github.com/openvhal/vhal-go/pkg/model"
)

// ListenerFunc observes accepted writes. The listener receives a private copy
// and may retain it.
type ListenerFunc func(v *model.PropertyValue)

// recordID keys a stored value: one value per property/area pair.
type recordID struct {
	prop int32
	area int32
}

// Store maps property IDs to their declared config and last-known per-area
// values. Safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	configs   map[int32]*model.PropertyConfig
	order     []int32
	values    map[recordID]*model.PropertyValue
	listeners []ListenerFunc

	// now stamps write timestamps; replaceable in tests.
	now func() int64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		configs: make(map[int32]*model.PropertyConfig),
		values:  make(map[recordID]*model.PropertyValue),
		now:     func() int64 { return time.Now().UnixNano() },
	}
}

// RegisterProperty declares a property and its initial per-area values.
// Registering an already-known property replaces its config and defaults.
func (s *Store) RegisterProperty(cfg *model.PropertyConfig, initialValues ...*model.PropertyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, known := s.configs[cfg.Prop]; !known {
		s.order = append(s.order, cfg.Prop)
	}
	s.configs[cfg.Prop] = cfg.Clone()

	for _, v := range initialValues {
		c := v.Clone()
		c.Prop = cfg.Prop
		s.values[recordID{prop: cfg.Prop, area: c.AreaID}] = c
	}
}

// Configs returns every registered config in registration order.
func (s *Store) Configs() []*model.PropertyConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.PropertyConfig, 0, len(s.order))
	for _, prop := range s.order {
		out = append(out, s.configs[prop].Clone())
	}
	return out
}

// Config returns the config for prop, or nil if unknown.
func (s *Store) Config(prop int32) *model.PropertyConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[prop]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// Get returns a copy of the last-known value for the property and area.
// StatusInvalidArg if the property is unknown; StatusNotAvailable if the
// property is known but holds no value for the area.
func (s *Store) Get(prop, areaID int32) (*model.PropertyValue, model.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[prop]; !ok {
		return nil, model.StatusInvalidArg
	}
	v, ok := s.values[recordID{prop: prop, area: areaID}]
	if !ok {
		return nil, model.StatusNotAvailable
	}
	return v.Clone(), model.StatusOK
}

// Set validates the value against its property's schema and, on success,
// atomically replaces the stored value with a fresh timestamp and hands a
// copy of the written value to every listener. Validation failures return
// StatusInvalidArg and change nothing.
func (s *Store) Set(v *model.PropertyValue) model.Status {
	s.mu.Lock()
	cfg, ok := s.configs[v.Prop]
	if !ok {
		s.mu.Unlock()
		return model.StatusInvalidArg
	}
	if st := model.CheckValue(cfg, v); !st.IsOK() {
		s.mu.Unlock()
		return st
	}
	if st := model.CheckRange(cfg, v); !st.IsOK() {
		s.mu.Unlock()
		return st
	}

	stored := v.Clone()
	stored.Timestamp = s.now()
	s.values[recordID{prop: v.Prop, area: v.AreaID}] = stored

	listeners := append([]ListenerFunc(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(stored.Clone())
	}
	return model.StatusOK
}

// OnChange registers a listener invoked after every accepted write.
func (s *Store) OnChange(fn ListenerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// ValuesFor returns a copy of every stored per-area value of one property.
// Empty if the property is unknown or holds no values.
func (s *Store) ValuesFor(prop int32) []*model.PropertyValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.PropertyValue
	for id, v := range s.values {
		if id.prop == prop {
			out = append(out, v.Clone())
		}
	}
	return out
}

// Values returns a copy of every stored value, grouped in config
// registration order, for diagnostics.
func (s *Store) Values() []*model.PropertyValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.PropertyValue
	for _, prop := range s.order {
		for id, v := range s.values {
			if id.prop == prop {
				out = append(out, v.Clone())
			}
		}
	}
	return out
}
