package model

// CheckValue validates a value's payload against the property's schema: the
// availability status must be StatusAvailable and the populated slots must
// match the cardinality the schema declares, in either direction. Any
// mismatch is a single StatusInvalidArg; nothing is partially applied.
func CheckValue(cfg *PropertyConfig, v *PropertyValue) Status {
	if v.Status != StatusAvailable {
		// Callers set data, not availability.
		return StatusInvalidArg
	}
	switch TypeOf(cfg.Prop) {
	case TypeString:
		return StatusOK
	case TypeBoolean, TypeInt32:
		if len(v.Value.Int32Values) != 1 {
			return StatusInvalidArg
		}
	case TypeInt32Vec:
		if len(v.Value.Int32Values) < 1 {
			return StatusInvalidArg
		}
	case TypeInt64:
		if len(v.Value.Int64Values) != 1 {
			return StatusInvalidArg
		}
	case TypeInt64Vec:
		if len(v.Value.Int64Values) < 1 {
			return StatusInvalidArg
		}
	case TypeFloat:
		if len(v.Value.FloatValues) != 1 {
			return StatusInvalidArg
		}
	case TypeFloatVec:
		if len(v.Value.FloatValues) < 1 {
			return StatusInvalidArg
		}
	case TypeBytes:
		if len(v.Value.Bytes) < 1 {
			return StatusInvalidArg
		}
	case TypeMixed:
		return checkMixed(cfg, v)
	default:
		return StatusInvalidArg
	}
	return StatusOK
}

// checkMixed walks the configArray left to right comparing declared against
// actual counts per typed slot.
func checkMixed(cfg *PropertyConfig, v *PropertyValue) Status {
	ca := cfg.ConfigArray
	if len(ca) != ConfigArrayLen {
		return StatusInvalidArg
	}
	// An empty string is indistinguishable from an absent one, so a declared
	// string slot accepts both; an undeclared one rejects any string.
	if ca[ConfigIdxString] == 0 && v.Value.StringValue != "" {
		return StatusInvalidArg
	}
	int32Count := ca[ConfigIdxInt32] + ca[ConfigIdxBoolean] + ca[ConfigIdxInt32Vec]
	if int32(len(v.Value.Int32Values)) != int32Count {
		return StatusInvalidArg
	}
	int64Count := ca[ConfigIdxInt64] + ca[ConfigIdxInt64Vec]
	if int32(len(v.Value.Int64Values)) != int64Count {
		return StatusInvalidArg
	}
	floatCount := ca[ConfigIdxFloat] + ca[ConfigIdxFloatVec]
	if int32(len(v.Value.FloatValues)) != floatCount {
		return StatusInvalidArg
	}
	if int32(len(v.Value.Bytes)) != ca[ConfigIdxBytes] {
		return StatusInvalidArg
	}
	return StatusOK
}

// CheckRange validates numeric payload entries against the bounds declared
// for the value's target area. Properties or areas without declared bounds
// pass unchecked. Out-of-range in either direction is StatusInvalidArg;
// values exactly at a bound are accepted. No clamping.
func CheckRange(cfg *PropertyConfig, v *PropertyValue) Status {
	area := cfg.AreaConfigFor(v.AreaID)
	if area == nil {
		return StatusOK
	}
	switch TypeOf(cfg.Prop) {
	case TypeInt32, TypeInt32Vec, TypeBoolean:
		if area.MinInt32Value == area.MaxInt32Value {
			return StatusOK
		}
		for _, n := range v.Value.Int32Values {
			if n < area.MinInt32Value || n > area.MaxInt32Value {
				return StatusInvalidArg
			}
		}
	case TypeInt64, TypeInt64Vec:
		if area.MinInt64Value == area.MaxInt64Value {
			return StatusOK
		}
		for _, n := range v.Value.Int64Values {
			if n < area.MinInt64Value || n > area.MaxInt64Value {
				return StatusInvalidArg
			}
		}
	case TypeFloat, TypeFloatVec:
		if area.MinFloatValue == area.MaxFloatValue {
			return StatusOK
		}
		for _, f := range v.Value.FloatValues {
			if f < area.MinFloatValue || f > area.MaxFloatValue {
				return StatusInvalidArg
			}
		}
	}
	return StatusOK
}
