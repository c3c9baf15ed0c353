package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/store"
)

func TestDefaultsTableIsWellFormed(t *testing.T) {
	decls := Defaults()
	require.NotEmpty(t, decls)

	seen := make(map[int32]bool)
	for _, d := range decls {
		assert.False(t, seen[d.Config.Prop], "duplicate property 0x%x", d.Config.Prop)
		seen[d.Config.Prop] = true

		if d.Config.ChangeMode == model.ChangeModeContinuous {
			assert.Greater(t, d.Config.MaxSampleRate, float32(0),
				"continuous property 0x%x needs sample rate bounds", d.Config.Prop)
			assert.LessOrEqual(t, d.Config.MinSampleRate, d.Config.MaxSampleRate,
				"property 0x%x min rate above max", d.Config.Prop)
		}
		if model.TypeOf(d.Config.Prop) == model.TypeMixed {
			assert.Len(t, d.Config.ConfigArray, model.ConfigArrayLen,
				"mixed property 0x%x needs a full configArray", d.Config.Prop)
		}
	}
}

func TestDefaultInitialValuesPassValidation(t *testing.T) {
	for _, d := range Defaults() {
		cfg := d.Config
		check := func(area int32, raw model.RawValue) {
			v := &model.PropertyValue{Prop: cfg.Prop, AreaID: area, Value: raw}
			assert.Equal(t, model.StatusOK, model.CheckValue(&cfg, v),
				"initial value for 0x%x fails schema validation", cfg.Prop)
			assert.Equal(t, model.StatusOK, model.CheckRange(&cfg, v),
				"initial value for 0x%x fails range validation", cfg.Prop)
		}
		if len(d.InitialAreaValues) > 0 {
			for area, raw := range d.InitialAreaValues {
				check(area, raw)
			}
		} else if len(cfg.AreaConfigs) > 0 && !model.IsGlobal(cfg.Prop) {
			for _, ac := range cfg.AreaConfigs {
				check(ac.AreaID, d.InitialValue)
			}
		} else {
			check(0, d.InitialValue)
		}
	}
}

func TestApplyRegistersPerAreaValues(t *testing.T) {
	s := store.New()
	Apply(s, Defaults())

	left, status := s.Get(model.HvacTemperatureSet, model.HVACLeft)
	require.Equal(t, model.StatusOK, status)
	assert.Equal(t, float32(16), left.Value.FloatValues[0])

	right, status := s.Get(model.HvacTemperatureSet, model.HVACRight)
	require.Equal(t, model.StatusOK, status)
	assert.Equal(t, float32(20), right.Value.FloatValues[0])

	make_, status := s.Get(model.InfoMake, 0)
	require.Equal(t, model.StatusOK, status)
	assert.Equal(t, "Toy Vehicle", make_.Value.StringValue)

	assert.Len(t, s.Configs(), len(Defaults()))
}

func TestParseYAMLDeclarations(t *testing.T) {
	decls, err := Parse([]byte(`
properties:
  - prop: 0x21401234
    access: READ_WRITE
    changeMode: CONTINUOUS
    minSampleRate: 1
    maxSampleRate: 20
    initial:
      int32Values: [5]
  - prop: 0x25501235
    changeMode: ON_CHANGE
    areas:
      - areaId: 0x31
        minInt64: 0
        maxInt64: 100
    initialAreas:
      0x31: {int64Values: [50]}
`))
	require.NoError(t, err)
	require.Len(t, decls, 2)

	assert.Equal(t, int32(0x21401234), decls[0].Config.Prop)
	assert.Equal(t, model.ChangeModeContinuous, decls[0].Config.ChangeMode)
	assert.Equal(t, float32(20), decls[0].Config.MaxSampleRate)
	assert.Equal(t, []int32{5}, decls[0].InitialValue.Int32Values)

	require.Len(t, decls[1].Config.AreaConfigs, 1)
	assert.Equal(t, int64(100), decls[1].Config.AreaConfigs[0].MaxInt64Value)
	assert.Equal(t, []int64{50}, decls[1].InitialAreaValues[0x31].Int64Values)
}

func TestParseYAMLErrors(t *testing.T) {
	cases := map[string]string{
		"not_yaml":           `{{{`,
		"no_properties":      `properties: []`,
		"missing_prop_id":    "properties:\n  - access: READ",
		"bad_access":         "properties:\n  - prop: 1\n    access: SOMETIMES",
		"bad_change_mode":    "properties:\n  - prop: 1\n    changeMode: OCCASIONAL",
		"short_config_array": "properties:\n  - prop: 1\n    configArray: [1, 2]",
		"continuous_no_sample_rates": "properties:\n" +
			"  - prop: 1\n    changeMode: CONTINUOUS",
		"continuous_zero_min_rate": "properties:\n" +
			"  - prop: 1\n    changeMode: CONTINUOUS\n    maxSampleRate: 10",
		"continuous_min_above_max": "properties:\n" +
			"  - prop: 1\n    changeMode: CONTINUOUS\n" +
			"    minSampleRate: 10\n    maxSampleRate: 1",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}
