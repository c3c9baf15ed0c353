package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/openvhal/vhal-go/pkg/pool"
)

// Scenario script errors.
var (
	ErrEmptyScript = errors.New("generator: scenario script has no events")
)

// ScriptEvent is one scripted emission: a delay relative to the previous
// event, then a property value.
type ScriptEvent struct {
	// Delay is the wait before this event, in fractional seconds.
	Delay float64 `json:"delay"`

	// Prop is the property ID.
	Prop int32 `json:"prop"`

	// AreaID is the target area.
	AreaID int32 `json:"areaId"`

	// Value is the payload.
	Value scriptValue `json:"value"`
}

// scriptValue mirrors model.RawValue with JSON field names.
type scriptValue struct {
	Int32Values []int32   `json:"int32Values,omitempty"`
	Int64Values []int64   `json:"int64Values,omitempty"`
	FloatValues []float32 `json:"floatValues,omitempty"`
	Bytes       []byte    `json:"bytes,omitempty"`
	StringValue string    `json:"stringValue,omitempty"`
}

// ParseScript decodes a JSON scenario: an ordered list of delay/value
// entries. Malformed or empty content is an error here, at start time, never
// at replay time.
func ParseScript(data []byte) ([]ScriptEvent, error) {
	var events []ScriptEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("generator: malformed scenario script: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrEmptyScript
	}
	for i, ev := range events {
		if ev.Delay < 0 {
			return nil, fmt.Errorf("generator: scenario event %d has negative delay", i)
		}
	}
	return events, nil
}

// propertyValue builds the model value for one script entry.
func (e *ScriptEvent) propertyValue(r *pool.Ref) {
	v := r.Value()
	v.Prop = e.Prop
	v.AreaID = e.AreaID
	v.Timestamp = time.Now().UnixNano()
	v.Value.Int32Values = append(v.Value.Int32Values, e.Value.Int32Values...)
	v.Value.Int64Values = append(v.Value.Int64Values, e.Value.Int64Values...)
	v.Value.FloatValues = append(v.Value.FloatValues, e.Value.FloatValues...)
	v.Value.Bytes = append(v.Value.Bytes, e.Value.Bytes...)
	v.Value.StringValue = e.Value.StringValue
}

// JSONReplay replays a parsed scenario a fixed number of times, preserving
// the scripted inter-event delays on every repetition.
type JSONReplay struct {
	script      []ScriptEvent
	repetitions int
	pool        *pool.Pool
	emit        EmitFunc

	stopOnce sync.Once
	stop     chan struct{}
	done     sync.WaitGroup
}

// NewJSONReplay creates a replay generator over an already-parsed script.
func NewJSONReplay(script []ScriptEvent, repetitions int, p *pool.Pool, emit EmitFunc) *JSONReplay {
	return &JSONReplay{
		script:      script,
		repetitions: repetitions,
		pool:        p,
		emit:        emit,
		stop:        make(chan struct{}),
	}
}

// Start begins the replay. The generator finishes on its own after the last
// repetition; Stop only needs to be called to cut a replay short.
func (g *JSONReplay) Start() {
	g.done.Add(1)
	go g.run()
}

// Stop halts the replay and joins the producer goroutine.
func (g *JSONReplay) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
	g.done.Wait()
}

func (g *JSONReplay) run() {
	defer g.done.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for rep := 0; rep < g.repetitions; rep++ {
		for i := range g.script {
			ev := &g.script[i]
			if delay := time.Duration(ev.Delay * float64(time.Second)); delay > 0 {
				timer.Reset(delay)
				select {
				case <-g.stop:
					return
				case <-timer.C:
				}
			} else {
				select {
				case <-g.stop:
					return
				default:
				}
			}
			r := g.pool.Obtain()
			ev.propertyValue(r)
			g.emit(r)
		}
	}
}
