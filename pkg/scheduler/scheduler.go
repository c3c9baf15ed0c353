// Package scheduler runs keyed recurrent tasks, one goroutine per task.
// The sampling side of the property server uses one task per subscribed
// continuous property.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler owns a set of recurrent tasks keyed by an int64 cookie
// (typically a property ID). The zero value is ready to use.
type Scheduler struct {
	mu    sync.Mutex
	tasks map[int64]*task
}

type task struct {
	stop chan struct{}
	done sync.WaitGroup
}

// Start begins invoking fn every period until the task is stopped. If a task
// is already live under this key it is stopped and joined first, so at most
// one task per key ever runs; the new period and fn take effect immediately.
// A non-positive period is rejected without touching any live task.
func (s *Scheduler) Start(key int64, period time.Duration, fn func()) {
	if period <= 0 {
		return
	}
	s.mu.Lock()
	old := s.tasks[key]
	if s.tasks == nil {
		s.tasks = make(map[int64]*task)
	}
	t := &task{stop: make(chan struct{})}
	s.tasks[key] = t
	s.mu.Unlock()

	if old != nil {
		old.halt()
	}

	t.done.Add(1)
	go t.run(period, fn)
}

// Stop halts the task under key and joins its goroutine before returning, so
// no tick for this key is started after Stop returns. A tick already in
// flight is allowed to finish. Returns false if no task is live for the key.
func (s *Scheduler) Stop(key int64) bool {
	s.mu.Lock()
	t, ok := s.tasks[key]
	if ok {
		delete(s.tasks, key)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	t.halt()
	return true
}

// StopAll halts every live task and joins them all.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()

	for _, t := range tasks {
		t.halt()
	}
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (t *task) run(period time.Duration, fn func()) {
	defer t.done.Done()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			fn()
		}
	}
}

func (t *task) halt() {
	close(t.stop)
	t.done.Wait()
}
