package types

import "fmt"

// ErrorCode is the machine-readable failure class embedded in API responses.
// Clients branch on the code, never on error prose.
type ErrorCode string

const (
	// ErrCodeMissingCredentials indicates the credential triple is incomplete
	ErrCodeMissingCredentials ErrorCode = "MISSING_CREDENTIALS"
	// ErrCodeConfigRequired indicates a required query input is missing
	ErrCodeConfigRequired ErrorCode = "CONFIG_REQUIRED"
	// ErrCodeInvalidCredentials indicates the identity check returned HTTP 401
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeConnectionError indicates a network-level failure
	ErrCodeConnectionError ErrorCode = "CONNECTION_ERROR"
	// ErrCodeUpstreamError indicates a non-2xx response from the issue tracker
	ErrCodeUpstreamError ErrorCode = "UPSTREAM_ERROR"
	// ErrCodeInternal is the fallback for uncategorized failures
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// String returns the string representation
func (c ErrorCode) String() string {
	return string(c)
}

// AuthFailedCode builds the code for a non-401 identity check failure,
// embedding the numeric status for diagnosability
func AuthFailedCode(status int) ErrorCode {
	return ErrorCode(fmt.Sprintf("AUTH_FAILED_%d", status))
}
