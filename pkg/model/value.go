package model

import (
	"fmt"
	"strings"
)

// RawValue is the tagged payload of a property value. Which slots are
// populated, and how many entries each holds, is dictated by the property's
// schema.
type RawValue struct {
	// Int32Values holds int32 and boolean (0/1) entries.
	Int32Values []int32

	// Int64Values holds int64 entries.
	Int64Values []int64

	// FloatValues holds float entries.
	FloatValues []float32

	// Bytes holds raw byte entries.
	Bytes []byte

	// StringValue holds the string entry, if the schema declares one.
	StringValue string
}

// Clone returns a deep copy of the raw value.
func (v RawValue) Clone() RawValue {
	c := RawValue{StringValue: v.StringValue}
	if len(v.Int32Values) > 0 {
		c.Int32Values = append([]int32(nil), v.Int32Values...)
	}
	if len(v.Int64Values) > 0 {
		c.Int64Values = append([]int64(nil), v.Int64Values...)
	}
	if len(v.FloatValues) > 0 {
		c.FloatValues = append([]float32(nil), v.FloatValues...)
	}
	if len(v.Bytes) > 0 {
		c.Bytes = append([]byte(nil), v.Bytes...)
	}
	return c
}

// PropertyValue is one sampled or written value of a property, scoped to a
// single area.
type PropertyValue struct {
	// Prop is the property ID.
	Prop int32

	// AreaID narrows the value to one area (0 for global properties).
	AreaID int32

	// Timestamp is the production time in nanoseconds. The store stamps a
	// fresh timestamp on every accepted write.
	Timestamp int64

	// Status is the availability of the value. External writes must leave
	// this at StatusAvailable.
	Status PropertyStatus

	// Value is the typed payload.
	Value RawValue
}

// Clone returns a deep copy of the property value.
func (v *PropertyValue) Clone() *PropertyValue {
	c := *v
	c.Value = v.Value.Clone()
	return &c
}

// Clear resets the value to the zero state so its backing storage can be
// reused. Slice capacity is retained.
func (v *PropertyValue) Clear() {
	v.Prop = 0
	v.AreaID = 0
	v.Timestamp = 0
	v.Status = StatusAvailable
	v.Value.Int32Values = v.Value.Int32Values[:0]
	v.Value.Int64Values = v.Value.Int64Values[:0]
	v.Value.FloatValues = v.Value.FloatValues[:0]
	v.Value.Bytes = v.Value.Bytes[:0]
	v.Value.StringValue = ""
}

// String renders the value in the diagnostic dump format.
func (v *PropertyValue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Property: 0x%x, area: 0x%x, status: %s, timestamp: %d, value: {",
		v.Prop, v.AreaID, v.Status, v.Timestamp)
	sep := ""
	if len(v.Value.Int32Values) > 0 {
		fmt.Fprintf(&b, "int32: %v", v.Value.Int32Values)
		sep = ", "
	}
	if len(v.Value.Int64Values) > 0 {
		fmt.Fprintf(&b, "%sint64: %v", sep, v.Value.Int64Values)
		sep = ", "
	}
	if len(v.Value.FloatValues) > 0 {
		fmt.Fprintf(&b, "%sfloat: %v", sep, v.Value.FloatValues)
		sep = ", "
	}
	if len(v.Value.Bytes) > 0 {
		fmt.Fprintf(&b, "%sbytes: %d", sep, len(v.Value.Bytes))
		sep = ", "
	}
	if v.Value.StringValue != "" {
		fmt.Fprintf(&b, "%sstring: %q", sep, v.Value.StringValue)
	}
	b.WriteString("}")
	return b.String()
}
