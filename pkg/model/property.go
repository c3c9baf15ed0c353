package model

// Property IDs encode the property group, value type, and area kind in the
// upper bits, so a raw ID is self-describing on the wire.

// ValueType is the payload type encoded in a property ID.
type ValueType int32

const (
	TypeString   ValueType = 0x00100000
	TypeBoolean  ValueType = 0x00200000
	TypeInt32    ValueType = 0x00400000
	TypeInt32Vec ValueType = 0x00410000
	TypeInt64    ValueType = 0x00500000
	TypeInt64Vec ValueType = 0x00510000
	TypeFloat    ValueType = 0x00600000
	TypeFloatVec ValueType = 0x00610000
	TypeBytes    ValueType = 0x00700000
	TypeMixed    ValueType = 0x00e00000
)

// String returns the value type name.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "STRING"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInt32:
		return "INT32"
	case TypeInt32Vec:
		return "INT32_VEC"
	case TypeInt64:
		return "INT64"
	case TypeInt64Vec:
		return "INT64_VEC"
	case TypeFloat:
		return "FLOAT"
	case TypeFloatVec:
		return "FLOAT_VEC"
	case TypeBytes:
		return "BYTES"
	case TypeMixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// AreaKind is the zoning scheme encoded in a property ID.
type AreaKind int32

const (
	AreaGlobal AreaKind = 0x01000000
	AreaWindow AreaKind = 0x03000000
	AreaMirror AreaKind = 0x04000000
	AreaSeat   AreaKind = 0x05000000
	AreaDoor   AreaKind = 0x06000000
	AreaWheel  AreaKind = 0x07000000
)

// Property ID bit masks and groups.
const (
	GroupMask int32 = int32(-0x10000000) // 0xf0000000
	TypeMask  int32 = 0x00ff0000
	AreaMask  int32 = 0x0f000000

	GroupSystem int32 = 0x10000000
	GroupVendor int32 = 0x20000000
)

// TypeOf extracts the payload type from a property ID.
func TypeOf(prop int32) ValueType {
	return ValueType(prop & TypeMask)
}

// AreaKindOf extracts the area kind from a property ID.
func AreaKindOf(prop int32) AreaKind {
	return AreaKind(prop & AreaMask)
}

// IsGlobal returns true if the property has a single global area.
func IsGlobal(prop int32) bool {
	return AreaKindOf(prop) == AreaGlobal
}

// System property IDs.
const (
	InfoVin          int32 = 0x0100 | GroupSystem | int32(AreaGlobal) | int32(TypeString)
	InfoMake         int32 = 0x0101 | GroupSystem | int32(AreaGlobal) | int32(TypeString)
	InfoModel        int32 = 0x0102 | GroupSystem | int32(AreaGlobal) | int32(TypeString)
	InfoModelYear    int32 = 0x0103 | GroupSystem | int32(AreaGlobal) | int32(TypeInt32)
	InfoFuelCapacity int32 = 0x0104 | GroupSystem | int32(AreaGlobal) | int32(TypeFloat)
	InfoFuelType     int32 = 0x0105 | GroupSystem | int32(AreaGlobal) | int32(TypeInt32Vec)

	PerfOdometer     int32 = 0x0204 | GroupSystem | int32(AreaGlobal) | int32(TypeFloat)
	PerfVehicleSpeed int32 = 0x0207 | GroupSystem | int32(AreaGlobal) | int32(TypeFloat)

	FuelLevel     int32 = 0x0301 | GroupSystem | int32(AreaGlobal) | int32(TypeFloat)
	EngineOilTemp int32 = 0x0304 | GroupSystem | int32(AreaGlobal) | int32(TypeFloat)
	EngineRpm     int32 = 0x0305 | GroupSystem | int32(AreaGlobal) | int32(TypeFloat)
	WheelTick     int32 = 0x0306 | GroupSystem | int32(AreaGlobal) | int32(TypeInt64Vec)

	GearSelection  int32 = 0x0400 | GroupSystem | int32(AreaGlobal) | int32(TypeInt32)
	ParkingBrakeOn int32 = 0x0402 | GroupSystem | int32(AreaGlobal) | int32(TypeBoolean)
	NightMode      int32 = 0x0407 | GroupSystem | int32(AreaGlobal) | int32(TypeBoolean)

	HvacFanSpeed       int32 = 0x0500 | GroupSystem | int32(AreaSeat) | int32(TypeInt32)
	HvacTemperatureSet int32 = 0x0503 | GroupSystem | int32(AreaSeat) | int32(TypeFloat)
	HvacPowerOn        int32 = 0x0508 | GroupSystem | int32(AreaSeat) | int32(TypeBoolean)

	FuelConsumptionUnitsDistanceOverVolume int32 = 0x0604 | GroupSystem | int32(AreaGlobal) | int32(TypeBoolean)

	HwKeyInput int32 = 0x0a10 | GroupSystem | int32(AreaGlobal) | int32(TypeInt32Vec)

	HvacTemperatureValueSuggestion int32 = 0x0a20 | GroupSystem | int32(AreaGlobal) | int32(TypeFloatVec)

	EpochTime int32 = 0x0a30 | GroupSystem | int32(AreaGlobal) | int32(TypeInt64)

	DoorLock int32 = 0x0b02 | GroupSystem | int32(AreaDoor) | int32(TypeBoolean)

	// VhalHeartbeat carries the liveness counter emitted by the HAL itself.
	VhalHeartbeat int32 = 0x0f31 | GroupSystem | int32(AreaGlobal) | int32(TypeInt64)
)

// MixedTypePropertyForTest is a vendor property with a non-trivial schema,
// kept in the defaults table to exercise configArray validation.
const MixedTypePropertyForTest int32 = 0x1111 | GroupVendor | int32(AreaGlobal) | int32(TypeMixed)

// Seat area bit flags.
const (
	SeatRow1Left   int32 = 0x0001
	SeatRow1Center int32 = 0x0002
	SeatRow1Right  int32 = 0x0004
	SeatRow2Left   int32 = 0x0010
	SeatRow2Center int32 = 0x0020
	SeatRow2Right  int32 = 0x0040
)

// HVAC zone area IDs used by the default configuration.
const (
	HVACLeft  = SeatRow1Left | SeatRow2Left | SeatRow2Center
	HVACRight = SeatRow1Right | SeatRow2Right
	HVACAll   = HVACLeft | SeatRow1Center | HVACRight
)

// Door area bit flags.
const (
	DoorRow1Left  int32 = 0x0001
	DoorRow1Right int32 = 0x0004
	DoorRow2Left  int32 = 0x0010
	DoorRow2Right int32 = 0x0040
)

// Hardware key input actions, carried as the first int32 of HwKeyInput events.
const (
	KeyActionDown int32 = 0
	KeyActionUp   int32 = 1
)

// Fuel types reported by InfoFuelType.
const (
	FuelTypeUnleaded int32 = 1
	FuelTypeLeaded   int32 = 2
	FuelTypeDiesel1  int32 = 3
	FuelTypeDiesel2  int32 = 4
	FuelTypeElectric int32 = 9
)

// Gear selections reported by GearSelection.
const (
	GearNeutral int32 = 0x0001
	GearReverse int32 = 0x0002
	GearPark    int32 = 0x0004
	GearDrive   int32 = 0x0008
)
