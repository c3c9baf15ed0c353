package model

// Status represents the result of a property operation.
type Status uint8

const (
	// StatusOK indicates the operation completed successfully.
	StatusOK Status = 0

	// StatusTryAgain indicates a transient failure; the caller may retry.
	StatusTryAgain Status = 1

	// StatusInvalidArg indicates a caller-input error: unknown property,
	// schema mismatch, out-of-range value, bad status flag, or bad sample rate.
	StatusInvalidArg Status = 2

	// StatusNotAvailable indicates the property is recognized but currently
	// unavailable. Reserved for store-internal use; writes may not set it.
	StatusNotAvailable Status = 3

	// StatusAccessDenied indicates the caller lacks access to the property.
	StatusAccessDenied Status = 4

	// StatusInternalError indicates an unexpected internal failure.
	StatusInternalError Status = 5
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusTryAgain:
		return "TRY_AGAIN"
	case StatusInvalidArg:
		return "INVALID_ARG"
	case StatusNotAvailable:
		return "NOT_AVAILABLE"
	case StatusAccessDenied:
		return "ACCESS_DENIED"
	case StatusInternalError:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsOK returns true if the status indicates success.
func (s Status) IsOK() bool {
	return s == StatusOK
}
