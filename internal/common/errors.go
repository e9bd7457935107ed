// Package common defines the sentinel errors shared by the storage,
// marketplace and presentation layers of LawnBook. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	// Signup / profile errors.
	ErrEmailTaken = errors.New("email already registered")
	ErrValidation = errors.New("validation error")

	// Provider errors.
	ErrNotProvider         = errors.New("user is not a provider")
	ErrNotApproved         = errors.New("provider is not approved")
	ErrProviderUnavailable = errors.New("provider is not available")

	// Booking errors.
	ErrNoProviderSelected = errors.New("no provider selected")
	ErrAlreadyCompleted   = errors.New("booking already completed")
)
