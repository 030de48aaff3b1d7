// Package apperrors defines the domain error taxonomy. Services and stores
// wrap these sentinels with context; handlers match them with errors.Is to
// pick a status code or redirect target.
package apperrors

import "errors"

var (
	// ErrValidation: a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrConflict: the record already exists (duplicate phone on signup).
	ErrConflict = errors.New("already exists")
	// ErrAuth: bad credentials on login.
	ErrAuth = errors.New("invalid credentials")
	// ErrNotFound: unknown competition id, or unknown phone on reset.
	ErrNotFound = errors.New("not found")
	// ErrState: an operation attempted outside its required state, e.g. a
	// password reset without a pending-reset identity.
	ErrState = errors.New("invalid state")
)
