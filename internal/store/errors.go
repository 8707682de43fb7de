package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAlreadyExists is returned when an insert or update violates a unique
	// constraint (email, item name, notes title).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotFound is returned when a query expected to match a record
	// produces an empty result set, or a referenced record is missing.
	ErrNotFound = errors.New("record not found")

	// ErrNothingToUpdate is returned by UpdateUser for an update without fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrInvalidFilename is returned by upload storages for names that could
	// escape the storage root.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrTemporarilyUnavailable is returned when the database rejected the
	// operation for a transient reason (lost connection, deadlock,
	// serialization failure, busy sqlite file). The operation may succeed
	// if attempted again.
	ErrTemporarilyUnavailable = errors.New("database temporarily unavailable")

	// ErrUnsupportedDriver is returned by NewConnect for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or statement
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
