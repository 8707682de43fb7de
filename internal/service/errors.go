package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/validators"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")

	// ErrInvalidCredentials is returned by signin for an unknown email, a role
	// mismatch and a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrExpiredToken    = fmt.Errorf("%w: token is expired", ErrUnauthenticated)

	ErrForbidden = errors.New("forbidden")

	// ErrValidationFailed is the validators sentinel, so a
	// *validators.ValidationError matches it with errors.Is.
	ErrValidationFailed = validators.ErrValidationFailed

	// ErrPreconditionFailed marks a programming error such as a role guard
	// running without a resolved identity.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrUnavailable reports a transient storage failure; the client may
	// retry the request.
	ErrUnavailable = errors.New("service unavailable")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// fromStoreError translates storage sentinels into service sentinels and
// wraps everything else with msg.
func fromStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrTemporarilyUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
