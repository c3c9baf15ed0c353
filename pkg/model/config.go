package model

// ConfigArray slot indices for MIXED-type properties. Each entry declares
// how many payload entries of that kind a valid value carries, walked left
// to right: string (0/1), int32, boolean, int32 vector, int64, int64 vector,
// float, float vector, bytes.
const (
	ConfigIdxString = iota
	ConfigIdxInt32
	ConfigIdxBoolean
	ConfigIdxInt32Vec
	ConfigIdxInt64
	ConfigIdxInt64Vec
	ConfigIdxFloat
	ConfigIdxFloatVec
	ConfigIdxBytes

	// ConfigArrayLen is the required length of a MIXED property's schema.
	ConfigArrayLen = 9
)

// AreaConfig declares per-area value bounds. A bound applies only when the
// min and max for the value's type differ; min == max == 0 means unchecked.
type AreaConfig struct {
	// AreaID is the area (or bitwise union of areas) this config covers.
	AreaID int32

	MinInt32Value int32
	MaxInt32Value int32

	MinInt64Value int64
	MaxInt64Value int64

	MinFloatValue float32
	MaxFloatValue float32
}

// PropertyConfig is the immutable declaration of a property: its access and
// change semantics, payload schema, and sampling bounds.
type PropertyConfig struct {
	// Prop is the property ID. Unique within a store.
	Prop int32

	// Access declares the supported directions.
	Access Access

	// ChangeMode declares how values are produced.
	ChangeMode ChangeMode

	// ConfigArray is the payload schema for MIXED properties; empty for
	// properties whose schema is implied by the ID's value type.
	ConfigArray []int32

	// AreaConfigs declares per-area bounds. Empty means unbounded.
	AreaConfigs []AreaConfig

	// MinSampleRate and MaxSampleRate bound subscription rates in Hz.
	// Only meaningful for CONTINUOUS properties.
	MinSampleRate float32
	MaxSampleRate float32
}

// AreaConfigFor returns the area config that covers areaID, or nil if the
// property declares none. Global properties use their first (only) entry;
// zoned properties match when the requested area's bits are covered.
func (c *PropertyConfig) AreaConfigFor(areaID int32) *AreaConfig {
	if len(c.AreaConfigs) == 0 {
		return nil
	}
	if IsGlobal(c.Prop) {
		return &c.AreaConfigs[0]
	}
	for i := range c.AreaConfigs {
		if areaID&c.AreaConfigs[i].AreaID == areaID {
			return &c.AreaConfigs[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the config.
func (c *PropertyConfig) Clone() *PropertyConfig {
	n := *c
	if len(c.ConfigArray) > 0 {
		n.ConfigArray = append([]int32(nil), c.ConfigArray...)
	}
	if len(c.AreaConfigs) > 0 {
		n.AreaConfigs = append([]AreaConfig(nil), c.AreaConfigs...)
	}
	return &n
}
