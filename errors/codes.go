package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the client configuration is unusable.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
