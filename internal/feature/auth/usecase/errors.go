// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// Validation failures for registration and profile updates.
// Each check reports distinctly so the delivery layer can render a
// specific message; any other error from a repository is a store failure.
var (
	// ErrNameTooShort is returned when a display name is shorter than 3 characters.
	ErrNameTooShort = errors.New("name is too short")

	// ErrEmailTooShort is returned when an email is shorter than 5 characters.
	ErrEmailTooShort = errors.New("email is not valid")

	// ErrPasswordTooShort is returned when a password is shorter than 8 characters.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmailTaken is returned when the email is already registered to another account.
	ErrEmailTaken = errors.New("email already exists")
)

// Login failures. The two reasons are distinguishable for user feedback,
// an accepted tradeoff over strict non-enumerability.
var (
	// ErrEmailNotRegistered is returned when no account exists for the email.
	ErrEmailNotRegistered = errors.New("email is not registered")

	// ErrWrongPassword is returned when the password does not match the account.
	ErrWrongPassword = errors.New("password is wrong")
)

// Session and authorization failures.
var (
	// ErrNotAuthenticated is returned when a token does not resolve to a valid session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionNotFresh is returned when an operation requires a fresh login
	// and the session's freshness window has elapsed.
	ErrSessionNotFresh = errors.New("session is not fresh")

	// ErrForbidden is returned when the caller's identity does not match the
	// target of a mutation. Deliberately generic.
	ErrForbidden = errors.New("operation not permitted")
)

// Repository-level sentinels mapped by adapters.
var (
	// ErrAccountNotFound is returned when an account cannot be found by email or ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
