package crypto

import "errors"

var (
	// ErrHashingFailed is returned when a password cannot be hashed or a
	// stored hash cannot be checked.
	ErrHashingFailed = errors.New("password hashing failed")
)
