package errs

import "errors"

// Shared outcome vocabulary for the usecase and handler layers
var (
	// Identity
	ErrUnauthenticated = errors.New("unauthenticated")

	// Pass lifecycle
	ErrPassNotFound     = errors.New("pass not found")
	ErrAlreadyActivated = errors.New("pass already activated")
	ErrPassNotActive    = errors.New("pass is not active")

	// Catalog
	ErrResortNotFound = errors.New("resort not found")

	// Accounts
	ErrEmailTaken = errors.New("email already registered")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Store or identity backend failed or timed out
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)
