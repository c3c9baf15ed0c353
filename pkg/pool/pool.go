// Package pool recycles property-value objects so that event production
// under sustained load does not churn the heap. Instances are handed out
// through reference-counted handles; when the last reference is released
// the instance is cleared and parked on an idle list instead of freed.
package pool

import (
	"sync"
	"sync/atomic"

	"github.com/openvhal/vhal-go/pkg/model"
)

// Pool is a grow-only free list of property values. The zero value is ready
// to use. Safe for concurrent use from any number of producers.
type Pool struct {
	mu   sync.Mutex
	idle []*model.PropertyValue

	obtained atomic.Uint64
	recycled atomic.Uint64
}

// Stats reports pool activity, for diagnostics.
type Stats struct {
	// Obtained is the total number of Obtain calls.
	Obtained uint64

	// Recycled is how many of those were served from the idle list.
	Recycled uint64
}

// Obtain returns a handle to a zero-initialized, exclusively owned property
// value, recycled from the idle list when one is available. Never blocks on
// anything but the internal lock.
func (p *Pool) Obtain() *Ref {
	p.obtained.Add(1)

	p.mu.Lock()
	var v *model.PropertyValue
	if n := len(p.idle); n > 0 {
		v = p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		p.recycled.Add(1)
	}
	p.mu.Unlock()

	if v == nil {
		v = &model.PropertyValue{}
	}
	r := &Ref{v: v, pool: p}
	r.refs.Store(1)
	return r
}

// ObtainValue returns a handle whose value is a deep copy of src.
func (p *Pool) ObtainValue(src *model.PropertyValue) *Ref {
	r := p.Obtain()
	v := r.Value()
	v.Prop = src.Prop
	v.AreaID = src.AreaID
	v.Timestamp = src.Timestamp
	v.Status = src.Status
	v.Value.Int32Values = append(v.Value.Int32Values, src.Value.Int32Values...)
	v.Value.Int64Values = append(v.Value.Int64Values, src.Value.Int64Values...)
	v.Value.FloatValues = append(v.Value.FloatValues, src.Value.FloatValues...)
	v.Value.Bytes = append(v.Value.Bytes, src.Value.Bytes...)
	v.Value.StringValue = src.Value.StringValue
	return r
}

// Stats returns a snapshot of pool activity counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Obtained: p.obtained.Load(),
		Recycled: p.recycled.Load(),
	}
}

// IdleCount returns the current size of the idle list.
func (p *Pool) IdleCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}

func (p *Pool) release(v *model.PropertyValue) {
	v.Clear()
	p.mu.Lock()
	p.idle = append(p.idle, v)
	p.mu.Unlock()
}

// Ref is a reference-counted handle to a pooled property value. Ownership
// transfers with the handle; the final Release returns the value to the pool.
type Ref struct {
	v    *model.PropertyValue
	pool *Pool
	refs atomic.Int32
}

// Value returns the underlying property value. The value must not be used
// after the handle's last reference is released.
func (r *Ref) Value() *model.PropertyValue {
	return r.v
}

// Retain adds a reference and returns the same handle, for handing the value
// to an additional holder.
func (r *Ref) Retain() *Ref {
	r.refs.Add(1)
	return r
}

// Release drops one reference. When the last reference is dropped the value
// is cleared and returned to the pool's idle list. Releasing more times than
// retained panics, as it signals a double free.
func (r *Ref) Release() {
	n := r.refs.Add(-1)
	if n < 0 {
		panic("pool: release of already-released value")
	}
	if n == 0 {
		v := r.v
		r.v = nil
		r.pool.release(v)
	}
}
