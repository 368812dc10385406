package xerrors

// ErrorCode is the machine-readable code carried in the service's error
// payload (the "error" field).
type ErrorCode string

// Error codes emitted by the remote user service.
const (
	CodeValidationError     ErrorCode = "VALIDATION_ERROR"
	CodeDuplicateUsername   ErrorCode = "DUPLICATE_USERNAME"
	CodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeDatabaseUnavailable ErrorCode = "DATABASE_UNAVAILABLE"
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

var knownCodes = map[ErrorCode]struct{}{
	CodeValidationError:     {},
	CodeDuplicateUsername:   {},
	CodeInvalidCredentials:  {},
	CodeUserNotFound:        {},
	CodeDatabaseUnavailable: {},
	CodeInternalError:       {},
}

// Known reports whether the code is one the service is documented to send.
// Unknown codes still surface verbatim; this only drives classification.
func (c ErrorCode) Known() bool {
	_, ok := knownCodes[c]
	return ok
}

func (c ErrorCode) String() string {
	return string(c)
}
