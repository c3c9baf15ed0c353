package pool

import (
	"sync"
	"testing"

	"github.com/openvhal/vhal-go/pkg/model"
)

func TestObtainReturnsZeroedValue(t *testing.T) {
	var p Pool

	r := p.Obtain()
	v := r.Value()
	if v.Prop != 0 || v.Status != model.StatusAvailable || len(v.Value.Int32Values) != 0 {
		t.Errorf("Obtain returned non-zero value: %+v", v)
	}
	r.Release()
}

func TestReleaseRecycles(t *testing.T) {
	var p Pool

	r := p.Obtain()
	r.Value().Prop = model.PerfVehicleSpeed
	r.Value().Value.FloatValues = append(r.Value().Value.FloatValues, 1.5)
	r.Release()

	if p.IdleCount() != 1 {
		t.Fatalf("IdleCount = %d after release, want 1", p.IdleCount())
	}

	r2 := p.Obtain()
	defer r2.Release()
	v := r2.Value()
	if v.Prop != 0 || len(v.Value.FloatValues) != 0 {
		t.Errorf("recycled value not cleared: %+v", v)
	}

	stats := p.Stats()
	if stats.Obtained != 2 || stats.Recycled != 1 {
		t.Errorf("Stats = %+v, want Obtained=2 Recycled=1", stats)
	}
}

func TestRetainDefersRecycle(t *testing.T) {
	var p Pool

	r := p.Obtain()
	r.Retain()

	r.Release()
	if p.IdleCount() != 0 {
		t.Fatal("value recycled while a reference was still held")
	}

	r.Release()
	if p.IdleCount() != 1 {
		t.Fatal("value not recycled after last release")
	}
}

func TestObtainValueCopies(t *testing.T) {
	var p Pool
	src := &model.PropertyValue{
		Prop:      model.HvacFanSpeed,
		AreaID:    model.HVACLeft,
		Timestamp: 7,
		Value:     model.RawValue{Int32Values: []int32{3}},
	}

	r := p.ObtainValue(src)
	defer r.Release()

	got := r.Value()
	if got.Prop != src.Prop || got.AreaID != src.AreaID || got.Timestamp != 7 {
		t.Errorf("ObtainValue copy = %+v, want %+v", got, src)
	}
	got.Value.Int32Values[0] = 99
	if src.Value.Int32Values[0] != 3 {
		t.Error("ObtainValue shares payload storage with source")
	}
}

func TestConcurrentObtainRelease(t *testing.T) {
	var p Pool
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r := p.Obtain()
				r.Value().Prop = model.PerfVehicleSpeed
				r.Release()
			}
		}()
	}
	wg.Wait()

	stats := p.Stats()
	if stats.Obtained != 8*200 {
		t.Errorf("Obtained = %d, want %d", stats.Obtained, 8*200)
	}
	// The pool never shrinks, so everything released is idle now.
	if p.IdleCount() == 0 {
		t.Error("IdleCount = 0 after all releases, want > 0")
	}
}

func TestDoubleReleasePanics(t *testing.T) {
	var p Pool
	r := p.Obtain()
	r.Release()

	defer func() {
		if recover() == nil {
			t.Error("second Release did not panic")
		}
	}()
	r.Release()
}
