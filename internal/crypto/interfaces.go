package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing one-way
// hashes and checks candidates against them.
//
// Every call to Hash uses a fresh random salt, so hashing the same password
// twice yields different outputs that both verify. The salt and cost are
// embedded in the output; nothing else needs to be stored.
type PasswordHasher interface {
	// Hash returns the encoded hash of plain.
	// Fails with ErrHashingFailed if the hash cannot be produced.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash.
	// A mismatch is (false, nil). A malformed hash or an internal failure is
	// reported as an error wrapping ErrHashingFailed and never as a match.
	Verify(plain, hash string) (bool, error)
}
