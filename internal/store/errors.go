package store

import "errors"

// Sentinel errors returned by collection stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownBackend is returned by [NewStorages] for a backend name it
	// cannot construct.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrEncodingRecord is returned when a record cannot be serialized for
	// a persistent backend.
	ErrEncodingRecord = errors.New("failed to encode record")

	// ErrDecodingRecord is returned when a stored record body cannot be
	// decoded back into its type.
	ErrDecodingRecord = errors.New("failed to decode record")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan collection rows")
)
