package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when a contact id does not exist.
	ErrContactNotFound = errors.New("contact not found")

	// ErrContactAlreadyExists is returned when an insert collides with an
	// existing contact id.
	ErrContactAlreadyExists = errors.New("contact already exists")

	// ErrImageNotFound is returned when a stored image does not exist.
	ErrImageNotFound = errors.New("image not found")

	// ErrInvalidImageName is returned for image names that would escape the
	// storage directory.
	ErrInvalidImageName = errors.New("invalid image name")
)

// Client-side store errors. Every failure of the device address book and
// the history key-value store is wrapped in one of these so the services
// can absorb them.
var (
	// ErrPermissionDenied is returned by every device store call when the
	// user has not granted access to the address book.
	ErrPermissionDenied = errors.New("device contacts permission denied")

	// ErrDeviceStore wraps any other device address book failure.
	ErrDeviceStore = errors.New("device contact store error")

	// ErrDeviceContactNotFound is returned when updating or deleting a device
	// contact that no longer exists. It is always wrapped in ErrDeviceStore.
	ErrDeviceContactNotFound = errors.New("device contact not found")

	// ErrPersistence wraps key-value store failures.
	ErrPersistence = errors.New("persistence error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
