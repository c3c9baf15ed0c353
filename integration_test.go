package vhal_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/openvhal/vhal-go/pkg/config"
	"github.com/openvhal/vhal-go/pkg/event"
	"github.com/openvhal/vhal-go/pkg/hal"
	vlog "github.com/openvhal/vhal-go/pkg/log"
	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/pool"
	"github.com/openvhal/vhal-go/pkg/store"
)

// flushMatching drains the queue and returns copies of events for prop.
func flushMatching(q *event.Queue[*pool.Ref], prop int32) []*model.PropertyValue {
	var out []*model.PropertyValue
	for _, r := range q.Flush() {
		if r.Value().Prop == prop {
			out = append(out, r.Value().Clone())
		}
		r.Release()
	}
	return out
}

// TestE2E_WriteSubscribeTrace drives the full stack the way a process does:
// defaults loaded into a store, a HAL over a consumer queue with a CBOR
// trace file, an external write that round-trips through the store and down
// the event path, a continuous subscription, and teardown in the documented
// order (queue deactivation before HAL close).
func TestE2E_WriteSubscribeTrace(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tracePath := t.TempDir() + "/run.vtrace"
	trace, err := vlog.NewFileLogger(tracePath)
	if err != nil {
		t.Fatalf("Failed to create trace logger: %v", err)
	}

	st := store.New()
	config.Apply(st, config.Defaults())

	q := event.NewQueueDrop((*pool.Ref).Release)
	h := hal.New(st, &pool.Pool{}, q,
		hal.WithLogger(trace),
		hal.WithHeartbeatInterval(50*time.Millisecond),
	)

	// External write of an ON_CHANGE property flows to the consumer.
	status := h.Set(&model.PropertyValue{
		Prop:   model.HvacTemperatureSet,
		AreaID: model.HVACLeft,
		Value:  model.RawValue{FloatValues: []float32{22}},
	})
	if status != model.StatusOK {
		t.Fatalf("Set returned %s", status)
	}

	deadline := time.Now().Add(time.Second)
	var writes []*model.PropertyValue
	for len(writes) == 0 && time.Now().Before(deadline) {
		writes = append(writes, flushMatching(q, model.HvacTemperatureSet)...)
		time.Sleep(5 * time.Millisecond)
	}
	if len(writes) == 0 {
		t.Fatal("No event delivered for ON_CHANGE write")
	}
	if got := writes[0].Value.FloatValues; len(got) != 1 || got[0] != 22 {
		t.Fatalf("Delivered payload = %v, want [22]", got)
	}

	// Continuous subscription samples the store.
	if status := h.Subscribe(model.PerfVehicleSpeed, 10); status != model.StatusOK {
		t.Fatalf("Subscribe returned %s", status)
	}
	deadline = time.Now().Add(2 * time.Second)
	samples := 0
	for samples < 3 && time.Now().Before(deadline) {
		samples += len(flushMatching(q, model.PerfVehicleSpeed))
		time.Sleep(10 * time.Millisecond)
	}
	if samples < 3 {
		t.Fatalf("Got %d speed samples, want at least 3", samples)
	}
	if status := h.Unsubscribe(model.PerfVehicleSpeed); status != model.StatusOK {
		t.Fatalf("Unsubscribe returned %s", status)
	}

	// Debug surface injects synthetic key presses through the same path.
	var buf bytes.Buffer
	if h.Dump(&buf, []string{"--debughal", "--genfakedata", "--keypress", "7", "0"}) {
		t.Fatal("Dump did not consume the debug command")
	}
	deadline = time.Now().Add(time.Second)
	var keys []*model.PropertyValue
	for len(keys) < 2 && time.Now().Before(deadline) {
		keys = append(keys, flushMatching(q, model.HwKeyInput)...)
		time.Sleep(5 * time.Millisecond)
	}
	if len(keys) != 2 {
		t.Fatalf("Got %d key events, want 2", len(keys))
	}

	// Teardown: deactivate the consumer side first, then join producers.
	q.Deactivate()
	h.Close()
	for _, r := range q.Flush() {
		r.Release()
	}
	if err := trace.Close(); err != nil {
		t.Fatalf("Failed to close trace: %v", err)
	}

	// The trace file replays the session: the accepted write and at least
	// one heartbeat must be present.
	rd, err := vlog.NewFilteredReader(tracePath, vlog.Filter{Source: ptr(vlog.SourceStore)})
	if err != nil {
		t.Fatalf("Failed to open trace: %v", err)
	}
	defer rd.Close()

	foundWrite := false
	for {
		ev, err := rd.Next()
		if err != nil {
			break
		}
		if ev.Category == vlog.CategoryEvent && ev.Prop == model.HvacTemperatureSet {
			foundWrite = true
		}
	}
	if !foundWrite {
		t.Error("Trace file missing the ON_CHANGE write event")
	}
}

// TestE2E_DefaultsDump checks that the human-readable dump of a freshly
// booted server names every default property.
func TestE2E_DefaultsDump(t *testing.T) {
	st := store.New()
	config.Apply(st, config.Defaults())

	q := event.NewQueueDrop((*pool.Ref).Release)
	h := hal.New(st, &pool.Pool{}, q)
	defer func() {
		q.Deactivate()
		h.Close()
		for _, r := range q.Flush() {
			r.Release()
		}
	}()

	var buf bytes.Buffer
	if !h.Dump(&buf, nil) {
		t.Fatal("Default dump should report true")
	}
	out := buf.String()
	for _, d := range config.Defaults() {
		hexID := strconv.FormatInt(int64(d.Config.Prop), 16)
		if !bytes.Contains([]byte(out), []byte(hexID)) {
			t.Errorf("Dump missing property 0x%s", hexID)
		}
	}
}

func ptr[T any](v T) *T { return &v }
