package remote

import (
	"errors"
	"fmt"
)

// Errors shared by every remote operation, mapped from HTTP statuses.
var (
	// The requested record does not exist upstream.
	ErrNotFound = errors.New("requested resource not found")

	// The bearer credential was rejected. Callers treat this as "session
	// invalid": the console surfaces it and the frontend re-authenticates.
	ErrAuthentication = errors.New("session is invalid or expired")

	// The caller is authenticated but not allowed to perform the operation.
	ErrForbidden = errors.New("operation not allowed for the current user")
)

// APIError carries a non-2xx response the taxonomy above doesn't cover,
// including upstream validation failures on finalize.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tournament api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("tournament api: request failed with status %d", e.StatusCode)
}
