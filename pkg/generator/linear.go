package generator

import (
	"sync"
	"time"

	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/pool"
)

// LinearConfig parameterizes a linear oscillating generator.
type LinearConfig struct {
	// Prop is the property the generated events carry. The payload slot is
	// chosen from the property ID's value type.
	Prop int32

	// MiddleValue is the center of the oscillation band.
	MiddleValue float32

	// CurrentValue is the first emitted value.
	CurrentValue float32

	// Dispersion is the half-width of the band; emitted values stay within
	// [MiddleValue-Dispersion, MiddleValue+Dispersion) and wrap instead of
	// growing unbounded.
	Dispersion float32

	// Increment is added after every emission.
	Increment float32

	// Interval is the emission period.
	Interval time.Duration
}

// Linear emits a linearly advancing value that wraps within its dispersion
// band, one event per interval.
type Linear struct {
	cfg  LinearConfig
	pool *pool.Pool
	emit EmitFunc

	current float32

	stopOnce sync.Once
	stop     chan struct{}
	done     sync.WaitGroup
}

// NewLinear creates a linear generator. Events are drawn from p and handed
// to emit.
func NewLinear(cfg LinearConfig, p *pool.Pool, emit EmitFunc) *Linear {
	return &Linear{
		cfg:     cfg,
		pool:    p,
		emit:    emit,
		current: cfg.CurrentValue,
		stop:    make(chan struct{}),
	}
}

// Start begins periodic emission.
func (g *Linear) Start() {
	g.done.Add(1)
	go g.run()
}

// Stop halts emission and joins the producer goroutine.
func (g *Linear) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
	g.done.Wait()
}

func (g *Linear) run() {
	defer g.done.Done()

	ticker := time.NewTicker(g.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.emitValue()
		}
	}
}

func (g *Linear) emitValue() {
	r := g.pool.Obtain()
	v := r.Value()
	v.Prop = g.cfg.Prop
	v.Timestamp = time.Now().UnixNano()
	switch model.TypeOf(g.cfg.Prop) {
	case model.TypeInt32, model.TypeInt32Vec:
		v.Value.Int32Values = append(v.Value.Int32Values, int32(g.current))
	case model.TypeInt64, model.TypeInt64Vec:
		v.Value.Int64Values = append(v.Value.Int64Values, int64(g.current))
	default:
		v.Value.FloatValues = append(v.Value.FloatValues, g.current)
	}
	g.advance()
	g.emit(r)
}

// advance steps the value by the increment, wrapping inside the band
// [middle-dispersion, middle+dispersion).
func (g *Linear) advance() {
	next := g.current + g.cfg.Increment
	if span := 2 * g.cfg.Dispersion; span > 0 {
		low := g.cfg.MiddleValue - g.cfg.Dispersion
		for next >= low+span {
			next -= span
		}
		for next < low {
			next += span
		}
	}
	g.current = next
}
