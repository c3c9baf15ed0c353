package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvhal/vhal-go/pkg/model"
)

func newSpeedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.RegisterProperty(
		&model.PropertyConfig{
			Prop:          model.PerfVehicleSpeed,
			Access:        model.AccessRead,
			ChangeMode:    model.ChangeModeContinuous,
			MinSampleRate: 1,
			MaxSampleRate: 10,
		},
		&model.PropertyValue{Value: model.RawValue{FloatValues: []float32{0}}},
	)
	return s
}

func TestGetDefaultValue(t *testing.T) {
	s := newSpeedStore(t)

	v, status := s.Get(model.PerfVehicleSpeed, 0)
	require.Equal(t, model.StatusOK, status)
	require.Len(t, v.Value.FloatValues, 1)
	assert.Equal(t, float32(0), v.Value.FloatValues[0])
}

func TestGetUnknownProperty(t *testing.T) {
	s := New()

	v, status := s.Get(0, 0)
	assert.Equal(t, model.StatusInvalidArg, status)
	assert.Nil(t, v)
}

func TestSetRoundTripRefreshesTimestamp(t *testing.T) {
	s := newSpeedStore(t)
	var stamp int64
	s.now = func() int64 { stamp++; return stamp }

	status := s.Set(&model.PropertyValue{
		Prop:  model.PerfVehicleSpeed,
		Value: model.RawValue{FloatValues: []float32{1.5}},
	})
	require.Equal(t, model.StatusOK, status)

	v, status := s.Get(model.PerfVehicleSpeed, 0)
	require.Equal(t, model.StatusOK, status)
	assert.Equal(t, float32(1.5), v.Value.FloatValues[0])
	assert.Equal(t, int64(1), v.Timestamp, "write should stamp a fresh timestamp")
}

func TestSetUnknownProperty(t *testing.T) {
	s := New()
	status := s.Set(&model.PropertyValue{Prop: 0})
	assert.Equal(t, model.StatusInvalidArg, status)
}

func TestSetRejectsSchemaMismatchWithoutSideEffects(t *testing.T) {
	s := newSpeedStore(t)

	status := s.Set(&model.PropertyValue{
		Prop:  model.PerfVehicleSpeed,
		Value: model.RawValue{FloatValues: []float32{1, 2}},
	})
	require.Equal(t, model.StatusInvalidArg, status)

	v, _ := s.Get(model.PerfVehicleSpeed, 0)
	assert.Equal(t, float32(0), v.Value.FloatValues[0], "rejected write must not be applied")
}

func TestSetRejectsNonAvailableStatus(t *testing.T) {
	s := newSpeedStore(t)

	status := s.Set(&model.PropertyValue{
		Prop:   model.PerfVehicleSpeed,
		Status: model.StatusUnavailable,
		Value:  model.RawValue{FloatValues: []float32{1}},
	})
	assert.Equal(t, model.StatusInvalidArg, status)
}

func TestSetRangeValidationPerArea(t *testing.T) {
	s := New()
	s.RegisterProperty(
		&model.PropertyConfig{
			Prop:       model.HvacFanSpeed,
			Access:     model.AccessReadWrite,
			ChangeMode: model.ChangeModeOnChange,
			AreaConfigs: []model.AreaConfig{
				{AreaID: model.HVACLeft, MinInt32Value: 1, MaxInt32Value: 7},
				{AreaID: model.HVACRight, MinInt32Value: 1, MaxInt32Value: 7},
			},
		},
		&model.PropertyValue{AreaID: model.HVACLeft, Value: model.RawValue{Int32Values: []int32{3}}},
		&model.PropertyValue{AreaID: model.HVACRight, Value: model.RawValue{Int32Values: []int32{3}}},
	)

	ok := s.Set(&model.PropertyValue{
		Prop: model.HvacFanSpeed, AreaID: model.HVACLeft,
		Value: model.RawValue{Int32Values: []int32{7}},
	})
	assert.Equal(t, model.StatusOK, ok)

	bad := s.Set(&model.PropertyValue{
		Prop: model.HvacFanSpeed, AreaID: model.HVACLeft,
		Value: model.RawValue{Int32Values: []int32{8}},
	})
	assert.Equal(t, model.StatusInvalidArg, bad)

	// Each area keeps its own value.
	left, _ := s.Get(model.HvacFanSpeed, model.HVACLeft)
	right, _ := s.Get(model.HvacFanSpeed, model.HVACRight)
	assert.Equal(t, int32(7), left.Value.Int32Values[0])
	assert.Equal(t, int32(3), right.Value.Int32Values[0])
}

func TestConfigsStableOrder(t *testing.T) {
	s := New()
	props := []int32{model.InfoMake, model.PerfVehicleSpeed, model.HvacFanSpeed}
	for _, p := range props {
		s.RegisterProperty(&model.PropertyConfig{Prop: p})
	}

	for i := 0; i < 3; i++ {
		configs := s.Configs()
		require.Len(t, configs, len(props))
		for j, cfg := range configs {
			assert.Equal(t, props[j], cfg.Prop)
		}
	}
}

func TestOnChangeListenerReceivesCopy(t *testing.T) {
	s := newSpeedStore(t)

	var seen []*model.PropertyValue
	s.OnChange(func(v *model.PropertyValue) { seen = append(seen, v) })

	require.Equal(t, model.StatusOK, s.Set(&model.PropertyValue{
		Prop:  model.PerfVehicleSpeed,
		Value: model.RawValue{FloatValues: []float32{2.5}},
	}))

	require.Len(t, seen, 1)
	assert.Equal(t, float32(2.5), seen[0].Value.FloatValues[0])

	// Mutating the listener's copy must not affect the store.
	seen[0].Value.FloatValues[0] = 99
	v, _ := s.Get(model.PerfVehicleSpeed, 0)
	assert.Equal(t, float32(2.5), v.Value.FloatValues[0])
}

func TestListenerNotCalledOnRejectedWrite(t *testing.T) {
	s := newSpeedStore(t)

	calls := 0
	s.OnChange(func(*model.PropertyValue) { calls++ })

	s.Set(&model.PropertyValue{Prop: model.PerfVehicleSpeed})
	assert.Zero(t, calls)
}
