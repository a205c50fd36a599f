package primary

import "errors"

// Error taxonomy surfaced to the transport layer. Handlers map these
// to status codes; anything else is an internal failure.
var (
	// ErrValidation marks missing or invalid required fields.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced task that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientBalance marks a redemption exceeding the score.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
