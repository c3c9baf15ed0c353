package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestStartTicksPeriodically(t *testing.T) {
	var s Scheduler
	defer s.StopAll()

	var ticks atomic.Int64
	s.Start(1, 10*time.Millisecond, func() { ticks.Add(1) })

	time.Sleep(120 * time.Millisecond)

	if n := ticks.Load(); n < 5 {
		t.Errorf("got %d ticks in 120ms at 10ms period, want >= 5", n)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStopJoinsBeforeReturning(t *testing.T) {
	var s Scheduler

	var ticks atomic.Int64
	s.Start(1, 5*time.Millisecond, func() { ticks.Add(1) })
	time.Sleep(30 * time.Millisecond)

	if !s.Stop(1) {
		t.Fatal("Stop returned false for a live task")
	}
	after := ticks.Load()

	// No tick may start after Stop returned.
	time.Sleep(50 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("ticks advanced from %d to %d after Stop returned", after, got)
	}
}

func TestStartRejectsNonPositivePeriod(t *testing.T) {
	var s Scheduler
	defer s.StopAll()

	var ticks atomic.Int64
	s.Start(1, 0, func() { ticks.Add(1) })
	s.Start(1, -time.Second, func() { ticks.Add(1) })

	if s.Len() != 0 {
		t.Errorf("Len = %d after non-positive periods, want 0", s.Len())
	}

	// A live task must survive a bad replacement attempt.
	s.Start(2, 5*time.Millisecond, func() { ticks.Add(1) })
	s.Start(2, 0, func() { ticks.Add(100) })
	time.Sleep(30 * time.Millisecond)

	if ticks.Load() == 0 {
		t.Error("live task stopped ticking after rejected replacement")
	}
	if ticks.Load() >= 100 {
		t.Error("rejected replacement task ran")
	}
}

func TestStopUnknownKey(t *testing.T) {
	var s Scheduler
	if s.Stop(42) {
		t.Error("Stop(unknown key) = true, want false")
	}
}

func TestStartReplacesExistingTask(t *testing.T) {
	var s Scheduler
	defer s.StopAll()

	var first, second atomic.Int64
	s.Start(1, 5*time.Millisecond, func() { first.Add(1) })
	time.Sleep(30 * time.Millisecond)

	s.Start(1, 5*time.Millisecond, func() { second.Add(1) })
	firstAtReplace := first.Load()

	time.Sleep(50 * time.Millisecond)

	if got := first.Load(); got != firstAtReplace {
		t.Errorf("replaced task still ticking: %d -> %d", firstAtReplace, got)
	}
	if second.Load() == 0 {
		t.Error("replacement task never ticked")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d after replace, want 1", s.Len())
	}
}

func TestStopAll(t *testing.T) {
	var s Scheduler

	var ticks atomic.Int64
	for key := int64(1); key <= 3; key++ {
		s.Start(key, 5*time.Millisecond, func() { ticks.Add(1) })
	}
	time.Sleep(20 * time.Millisecond)

	s.StopAll()
	after := ticks.Load()

	time.Sleep(40 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("ticks advanced from %d to %d after StopAll", after, got)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after StopAll, want 0", s.Len())
	}
}
