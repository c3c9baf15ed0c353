package config

import "github.com/openvhal/vhal-go/pkg/model"

// Default sampling bounds for continuous properties, in Hz.
const (
	defaultMinSampleRate = 1.0
	defaultMaxSampleRate = 10.0
)

// Defaults returns the stock vehicle property table. The table is rebuilt on
// every call so callers may mutate their copy freely.
func Defaults() []Declaration {
	return []Declaration{
		{
			Config: model.PropertyConfig{
				Prop:       model.InfoVin,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeStatic,
			},
			InitialValue: model.RawValue{StringValue: "1GCARVIN123456789"},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.InfoMake,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeStatic,
			},
			InitialValue: model.RawValue{StringValue: "Toy Vehicle"},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.InfoModel,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeStatic,
			},
			InitialValue: model.RawValue{StringValue: "Speedy Model"},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.InfoModelYear,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeStatic,
			},
			InitialValue: model.RawValue{Int32Values: []int32{2020}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.InfoFuelCapacity,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeStatic,
			},
			InitialValue: model.RawValue{FloatValues: []float32{15000}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.InfoFuelType,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeStatic,
			},
			InitialValue: model.RawValue{Int32Values: []int32{model.FuelTypeUnleaded}},
		},
		{
			Config: model.PropertyConfig{
				Prop:          model.PerfVehicleSpeed,
				Access:        model.AccessRead,
				ChangeMode:    model.ChangeModeContinuous,
				MinSampleRate: defaultMinSampleRate,
				MaxSampleRate: defaultMaxSampleRate,
			},
			InitialValue: model.RawValue{FloatValues: []float32{0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.PerfOdometer,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{FloatValues: []float32{0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:          model.EngineRpm,
				Access:        model.AccessRead,
				ChangeMode:    model.ChangeModeContinuous,
				MinSampleRate: defaultMinSampleRate,
				MaxSampleRate: defaultMaxSampleRate,
			},
			InitialValue: model.RawValue{FloatValues: []float32{0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.EngineOilTemp,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{FloatValues: []float32{101}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.FuelLevel,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{FloatValues: []float32{15000}},
		},
		{
			Config: model.PropertyConfig{
				Prop:          model.WheelTick,
				Access:        model.AccessRead,
				ChangeMode:    model.ChangeModeContinuous,
				MinSampleRate: defaultMinSampleRate,
				MaxSampleRate: defaultMaxSampleRate,
			},
			InitialValue: model.RawValue{Int64Values: []int64{0, 0, 0, 0, 0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.EpochTime,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int64Values: []int64{0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.GearSelection,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int32Values: []int32{model.GearPark}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.ParkingBrakeOn,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int32Values: []int32{1}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.NightMode,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int32Values: []int32{0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.FuelConsumptionUnitsDistanceOverVolume,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int32Values: []int32{1}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.HvacFanSpeed,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
				AreaConfigs: []model.AreaConfig{
					{AreaID: model.HVACLeft, MinInt32Value: 1, MaxInt32Value: 7},
					{AreaID: model.HVACRight, MinInt32Value: 1, MaxInt32Value: 7},
				},
			},
			InitialValue: model.RawValue{Int32Values: []int32{3}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.HvacTemperatureSet,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
				AreaConfigs: []model.AreaConfig{
					{AreaID: model.HVACLeft, MinFloatValue: 16, MaxFloatValue: 32},
					{AreaID: model.HVACRight, MinFloatValue: 16, MaxFloatValue: 32},
				},
			},
			InitialAreaValues: map[int32]model.RawValue{
				model.HVACLeft:  {FloatValues: []float32{16}},
				model.HVACRight: {FloatValues: []float32{20}},
			},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.HvacPowerOn,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
				AreaConfigs: []model.AreaConfig{
					{AreaID: model.HVACAll},
				},
			},
			InitialValue: model.RawValue{Int32Values: []int32{1}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.HvacTemperatureValueSuggestion,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{FloatValues: []float32{16, 22, 16, 22}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.DoorLock,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
				AreaConfigs: []model.AreaConfig{
					{AreaID: model.DoorRow1Left},
					{AreaID: model.DoorRow1Right},
					{AreaID: model.DoorRow2Left},
					{AreaID: model.DoorRow2Right},
				},
			},
			InitialValue: model.RawValue{Int32Values: []int32{1}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.HwKeyInput,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int32Values: []int32{0, 0, 0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.VhalHeartbeat,
				Access:     model.AccessRead,
				ChangeMode: model.ChangeModeOnChange,
			},
			InitialValue: model.RawValue{Int64Values: []int64{0}},
		},
		{
			Config: model.PropertyConfig{
				Prop:       model.MixedTypePropertyForTest,
				Access:     model.AccessReadWrite,
				ChangeMode: model.ChangeModeOnChange,
				// 1 string, 1 int32, 0 bool, 2 int32 vec, 0 int64,
				// 0 int64 vec, 1 float, 0 float vec, 0 bytes.
				ConfigArray: []int32{1, 1, 0, 2, 0, 0, 1, 0, 0},
			},
			InitialValue: model.RawValue{
				StringValue: "MIXED property",
				Int32Values: []int32{1, 2, 3},
				FloatValues: []float32{4.5},
			},
		},
	}
}
