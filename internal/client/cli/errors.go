package cli

import (
	"errors"

	"github.com/dmitrijs2005/videogenius/internal/client/client"
)

var errPasswordMismatch = errors.New("passwords do not match")

// describeError turns a command error into the line shown to the user.
func describeError(err error) string {
	msg := client.Message(err)

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Not logged in: " + msg + ". Use 'login' first."
	case errors.Is(err, client.ErrInsufficientBalance):
		return "Not enough points: " + msg + ". Top up your balance and try again."
	case errors.Is(err, client.ErrAuth):
		return "Authentication failed: " + msg
	case errors.Is(err, client.ErrValidation):
		return "Invalid input: " + msg
	case errors.Is(err, client.ErrNetwork):
		return "Network error: " + msg
	case errors.Is(err, client.ErrServer):
		return "Server error: " + msg
	default:
		return "Error: " + msg
	}
}
