package model

// ChangeMode describes how a property's value changes over time.
type ChangeMode uint8

const (
	// ChangeModeStatic indicates the value never changes after boot.
	ChangeModeStatic ChangeMode = 0

	// ChangeModeOnChange indicates events are produced only when the value
	// changes (i.e. on an accepted write).
	ChangeModeOnChange ChangeMode = 1

	// ChangeModeContinuous indicates the value is sampled periodically at a
	// subscriber-chosen rate, whether or not it changed.
	ChangeModeContinuous ChangeMode = 2
)

// String returns the change mode name.
func (m ChangeMode) String() string {
	switch m {
	case ChangeModeStatic:
		return "STATIC"
	case ChangeModeOnChange:
		return "ON_CHANGE"
	case ChangeModeContinuous:
		return "CONTINUOUS"
	default:
		return "UNKNOWN"
	}
}

// Access describes which directions a property supports.
type Access uint8

const (
	// AccessRead allows reading the property.
	AccessRead Access = 1

	// AccessWrite allows writing the property.
	AccessWrite Access = 2

	// AccessReadWrite allows both reading and writing.
	AccessReadWrite Access = 3
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access mode name.
func (a Access) String() string {
	switch a {
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	case AccessReadWrite:
		return "READ_WRITE"
	default:
		return "UNKNOWN"
	}
}

// PropertyStatus describes the availability of a property value.
type PropertyStatus uint8

const (
	// StatusAvailable indicates the value carries valid data.
	StatusAvailable PropertyStatus = 0

	// StatusUnavailable indicates the value is temporarily unavailable.
	StatusUnavailable PropertyStatus = 1

	// StatusError indicates the signal source reported an error.
	StatusError PropertyStatus = 2
)

// String returns the property status name.
func (s PropertyStatus) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusUnavailable:
		return "UNAVAILABLE"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
