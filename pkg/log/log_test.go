package log

import (
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.cbor")

	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	events := []Event{
		{Timestamp: time.Now(), InstanceID: "abc", Source: SourceStore, Category: CategoryEvent, Prop: 0x1234},
		{Timestamp: time.Now(), InstanceID: "abc", Source: SourceScheduler, Category: CategoryState, Message: "subscribed", SampleRate: 10},
		{Timestamp: time.Now(), InstanceID: "abc", Source: SourceDebug, Category: CategoryError, Err: "bad argument"},
	}
	for _, e := range events {
		l.Log(e)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v, want nil", err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	for i, want := range events {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next[%d]: %v", i, err)
		}
		if got.Source != want.Source || got.Category != want.Category ||
			got.Prop != want.Prop || got.Message != want.Message || got.Err != want.Err {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next after last event = %v, want io.EOF", err)
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.cbor")

	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	l.Log(Event{Timestamp: time.Now(), Source: SourceStore, Prop: 1})
	l.Log(Event{Timestamp: time.Now(), Source: SourceGenerator, Prop: 2})
	l.Log(Event{Timestamp: time.Now(), Source: SourceGenerator, Prop: 3})
	l.Close()

	src := SourceGenerator
	r, err := NewFilteredReader(path, Filter{Source: &src})
	if err != nil {
		t.Fatalf("NewFilteredReader: %v", err)
	}
	defer r.Close()

	var props []int32
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		props = append(props, e.Prop)
	}
	if len(props) != 2 || props[0] != 2 || props[1] != 3 {
		t.Errorf("filtered props = %v, want [2 3]", props)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.cbor")

	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Log(Event{Timestamp: time.Now(), Source: SourceScheduler})
			}
		}()
	}
	wg.Wait()
	l.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	count := 0
	for {
		if _, err := r.Next(); err != nil {
			break
		}
		count++
	}
	if count != 200 {
		t.Errorf("read %d events, want 200 (no interleaved/corrupt records)", count)
	}
}

func TestMultiLogger(t *testing.T) {
	var a, b recordingLogger
	m := NewMultiLogger(&a, &b)

	m.Log(Event{Message: "x"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("MultiLogger delivered to %d/%d loggers, want 1/1", len(a.events), len(b.events))
	}
}

type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (l *recordingLogger) Log(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}
