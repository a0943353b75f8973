package client

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the client and the services wraps one
// of these, so callers branch with errors.Is.
var (
	// ErrAuth: bad credentials, invalid or expired token.
	ErrAuth = errors.New("authentication failed")
	// ErrUnauthorized: no credential present, detected locally.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation: malformed or incomplete request, detected locally.
	ErrValidation = errors.New("validation error")
	// ErrInsufficientBalance: the server refused the job for lack of points.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNetwork: no HTTP response was obtained.
	ErrNetwork = errors.New("network error")
	// ErrServer: any other non-success HTTP status.
	ErrServer = errors.New("server error")
)

// APIError carries a human-readable message next to its kind. Status is the
// HTTP status code, or zero when the failure happened before a response.
type APIError struct {
	Kind    error
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

func newError(kind error, status int, msg string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: msg}
}

// Validationf builds an ErrValidation error.
func Validationf(format string, args ...any) error {
	return newError(ErrValidation, 0, fmt.Sprintf(format, args...))
}

// AuthFailed builds an ErrAuth error with msg.
func AuthFailed(msg string) error {
	return newError(ErrAuth, 0, msg)
}

// Unauthorized builds an ErrUnauthorized error with msg.
func Unauthorized(msg string) error {
	return newError(ErrUnauthorized, 0, msg)
}

// Message extracts the user-facing message from err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
