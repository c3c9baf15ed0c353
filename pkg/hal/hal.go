// Package hal assembles the property store, event queue, sampling scheduler
// and fake-data generators into the single server object clients talk to.
package hal

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/openvhal/vhal-go/pkg/event"
	"github.com/openvhal/vhal-go/pkg/generator"
	"github.com/openvhal/vhal-go/pkg/log"
	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/pool"
	"github.com/openvhal/vhal-go/pkg/scheduler"
	"github.com/openvhal/vhal-go/pkg/store"
)

// defaultHeartbeatInterval is how often the liveness counter is published.
const defaultHeartbeatInterval = 3 * time.Second

// Option customizes a VehicleHal at construction time.
type Option func(*VehicleHal)

// WithLogger installs a trace logger. The default discards all events.
func WithLogger(l log.Logger) Option {
	return func(h *VehicleHal) {
		h.logger = l
	}
}

// WithHeartbeatInterval overrides the heartbeat publication period.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(h *VehicleHal) {
		h.heartbeatInterval = d
	}
}

// VehicleHal is the property-server facade. Reads and writes go through the
// store, continuous subscriptions are sampled by the scheduler, and every
// produced event is pushed into the sink as a pooled, reference-counted
// value owned by the consumer.
type VehicleHal struct {
	store  *store.Store
	pool   *pool.Pool
	sink   event.Sink
	logger log.Logger

	// instanceID tags trace events from this server instance.
	instanceID string

	heartbeatInterval time.Duration
	heartbeatCount    atomic.Int64

	// sampler drives continuous subscriptions and the heartbeat. Keys are
	// property IDs; the heartbeat key never collides because its property
	// is ON_CHANGE and therefore not subscribable.
	sampler scheduler.Scheduler
	hub     *generator.Hub

	mu     sync.Mutex
	subs   map[int32]float32
	closed bool
}

// New builds a server over st, drawing event values from p and delivering
// them to sink. The heartbeat starts immediately.
func New(st *store.Store, p *pool.Pool, sink event.Sink, opts ...Option) *VehicleHal {
	h := &VehicleHal{
		store:             st,
		pool:              p,
		sink:              sink,
		logger:            log.NoopLogger{},
		instanceID:        uuid.NewString(),
		heartbeatInterval: defaultHeartbeatInterval,
		hub:               generator.NewHub(),
		subs:              make(map[int32]float32),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.store.OnChange(h.onStoreWrite)

	h.emitHeartbeat()
	h.sampler.Start(int64(model.VhalHeartbeat), h.heartbeatInterval, h.emitHeartbeat)
	return h
}

// InstanceID returns the UUID identifying this server instance.
func (h *VehicleHal) InstanceID() string {
	return h.instanceID
}

// ListProperties returns the configs of all supported properties, in
// registration order.
func (h *VehicleHal) ListProperties() []*model.PropertyConfig {
	return h.store.Configs()
}

// Get returns the last-known value for the property and area named by req.
// The returned handle is owned by the caller; it is nil unless the status
// is OK.
func (h *VehicleHal) Get(req *model.PropertyValue) (*pool.Ref, model.Status) {
	v, st := h.store.Get(req.Prop, req.AreaID)
	if !st.IsOK() {
		h.logger.Log(log.Event{
			Timestamp:  time.Now(),
			InstanceID: h.instanceID,
			Source:     log.SourceStore,
			Category:   log.CategoryError,
			Prop:       req.Prop,
			AreaID:     req.AreaID,
			Message:    "get rejected",
			Err:        st.String(),
		})
		return nil, st
	}
	return h.pool.ObtainValue(v), model.StatusOK
}

// Set validates and stores v. ON_CHANGE properties additionally publish the
// accepted value to the sink.
func (h *VehicleHal) Set(v *model.PropertyValue) model.Status {
	st := h.store.Set(v)
	if !st.IsOK() {
		h.logger.Log(log.Event{
			Timestamp:  time.Now(),
			InstanceID: h.instanceID,
			Source:     log.SourceStore,
			Category:   log.CategoryError,
			Prop:       v.Prop,
			AreaID:     v.AreaID,
			Message:    "set rejected",
			Err:        st.String(),
		})
	}
	return st
}

// onStoreWrite forwards accepted writes of ON_CHANGE properties to the sink.
func (h *VehicleHal) onStoreWrite(v *model.PropertyValue) {
	cfg := h.store.Config(v.Prop)
	if cfg == nil || cfg.ChangeMode != model.ChangeModeOnChange {
		return
	}
	h.sink.Push(h.pool.ObtainValue(v))
	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceStore,
		Category:   log.CategoryEvent,
		Prop:       v.Prop,
		AreaID:     v.AreaID,
	})
}

// Subscribe starts periodic sampling of a CONTINUOUS property at
// sampleRateHz. The current value is published immediately, then once per
// period. Subscribing to an already-subscribed property replaces the rate.
func (h *VehicleHal) Subscribe(prop int32, sampleRateHz float32) model.Status {
	cfg := h.store.Config(prop)
	if cfg == nil || cfg.ChangeMode != model.ChangeModeContinuous ||
		sampleRateHz <= 0 ||
		sampleRateHz < cfg.MinSampleRate || sampleRateHz > cfg.MaxSampleRate {
		h.logger.Log(log.Event{
			Timestamp:  time.Now(),
			InstanceID: h.instanceID,
			Source:     log.SourceScheduler,
			Category:   log.CategoryError,
			Prop:       prop,
			SampleRate: sampleRateHz,
			Message:    "subscribe rejected",
			Err:        model.StatusInvalidArg.String(),
		})
		return model.StatusInvalidArg
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return model.StatusInternalError
	}
	h.subs[prop] = sampleRateHz
	h.mu.Unlock()

	h.emitCurrent(prop)
	period := time.Duration(float64(time.Second) / float64(sampleRateHz))
	h.sampler.Start(int64(prop), period, func() { h.emitCurrent(prop) })

	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceScheduler,
		Category:   log.CategoryState,
		Prop:       prop,
		SampleRate: sampleRateHz,
		Message:    "subscribed",
	})
	return model.StatusOK
}

// Unsubscribe stops sampling of prop and joins its producer. InvalidArg if
// the property has no live subscription.
func (h *VehicleHal) Unsubscribe(prop int32) model.Status {
	h.mu.Lock()
	_, live := h.subs[prop]
	delete(h.subs, prop)
	h.mu.Unlock()

	if !live {
		return model.StatusInvalidArg
	}
	h.sampler.Stop(int64(prop))
	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceScheduler,
		Category:   log.CategoryState,
		Prop:       prop,
		Message:    "unsubscribed",
	})
	return model.StatusOK
}

// emitCurrent publishes the stored value of every area of prop, stamped
// with the sampling time.
func (h *VehicleHal) emitCurrent(prop int32) {
	now := time.Now().UnixNano()
	for _, v := range h.store.ValuesFor(prop) {
		r := h.pool.ObtainValue(v)
		r.Value().Timestamp = now
		h.sink.Push(r)
	}
}

// emitHeartbeat publishes a strictly increasing liveness counter.
func (h *VehicleHal) emitHeartbeat() {
	n := h.heartbeatCount.Add(1)
	r := h.pool.Obtain()
	v := r.Value()
	v.Prop = model.VhalHeartbeat
	v.Timestamp = time.Now().UnixNano()
	v.Status = model.StatusAvailable
	v.Value.Int64Values = append(v.Value.Int64Values, n)
	h.sink.Push(r)

	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceHeartbeat,
		Category:   log.CategoryEvent,
		Prop:       model.VhalHeartbeat,
	})
}

// onGeneratedValue delivers one fake-generator event to the sink.
func (h *VehicleHal) onGeneratedValue(r *pool.Ref) {
	prop := r.Value().Prop
	h.sink.Push(r)
	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceGenerator,
		Category:   log.CategoryEvent,
		Prop:       prop,
	})
}

// Dump writes diagnostics to w. With no options it prints every config and
// value and returns true; "--debughal" hands the remaining options to the
// debug command dispatcher and returns false.
func (h *VehicleHal) Dump(w io.Writer, options []string) bool {
	if len(options) > 0 && options[0] == "--debughal" {
		h.handleDebug(w, options[1:])
		return false
	}

	fmt.Fprintf(w, "Instance: %s\n", h.instanceID)
	fmt.Fprintf(w, "Heartbeat count: %d\n", h.heartbeatCount.Load())
	ps := h.pool.Stats()
	fmt.Fprintf(w, "Pool: obtained=%d recycled=%d idle=%d\n", ps.Obtained, ps.Recycled, h.pool.IdleCount())

	configs := h.ListProperties()
	fmt.Fprintf(w, "Properties: %d\n", len(configs))
	for _, cfg := range configs {
		fmt.Fprintf(w, "Config: 0x%x, access: %s, changeMode: %s, areas: %d\n",
			cfg.Prop, cfg.Access, cfg.ChangeMode, len(cfg.AreaConfigs))
	}
	for _, v := range h.store.Values() {
		fmt.Fprintln(w, v.String())
	}
	return true
}

// Close stops the heartbeat, all subscriptions and all generators, joining
// every producer goroutine. Idempotent.
func (h *VehicleHal) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.subs = make(map[int32]float32)
	h.mu.Unlock()

	h.hub.StopAll()
	h.sampler.StopAll()

	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceStore,
		Category:   log.CategoryState,
		Message:    "closed",
	})
}
