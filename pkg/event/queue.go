package event

import "sync"

// Queue is an unbounded multi-producer queue for one logical subscriber
// channel. Producers Push without blocking; the consumer drains with Flush,
// optionally parking in Wait between drains.
//
// For a single producer, delivery order equals push order; across producers
// the order is the order in which pushes completed.
type Queue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T
	drop  func(T)

	// active is one-way: once false, Push is a no-op and waiters are released.
	active bool
}

// NewQueue creates an active, empty queue. Items pushed after Deactivate are
// discarded silently; use NewQueueDrop when discarded items need a disposal
// step.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{active: true}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// NewQueueDrop creates an active, empty queue that calls drop for every item
// pushed after Deactivate. Queues carrying pooled handles pass the release
// func here so producers racing teardown do not leak instances.
func NewQueueDrop[T any](drop func(T)) *Queue[T] {
	q := NewQueue[T]()
	q.drop = drop
	return q
}

// Push appends an item. Safe from any number of producer goroutines; never
// blocks beyond the internal lock. After Deactivate the item is handed to the
// drop callback if one is set and discarded otherwise.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	if !q.active {
		drop := q.drop
		q.mu.Unlock()
		if drop != nil {
			drop(item)
		}
		return
	}
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.cond.Signal()
}

// Flush atomically drains the queue and returns everything queued so far, in
// delivery order. A subsequent Flush sees only items pushed after this one
// returned.
func (q *Queue[T]) Flush() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Wait blocks until the queue is non-empty or deactivated. Returns true if
// items are available, false if the queue was deactivated.
func (q *Queue[T]) Wait() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.active && len(q.items) == 0 {
		q.cond.Wait()
	}
	return len(q.items) > 0
}

// Deactivate terminally stops the queue: subsequent pushes are dropped and
// all blocked consumers are released. Safe to call multiple times and from
// any goroutine during teardown. Items already queued remain flushable.
func (q *Queue[T]) Deactivate() {
	q.mu.Lock()
	q.active = false
	q.mu.Unlock()
	q.cond.Broadcast()
}

// Active reports whether the queue still accepts pushes.
func (q *Queue[T]) Active() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
