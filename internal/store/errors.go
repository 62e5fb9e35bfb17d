package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup matches no row, or when an
	// UPDATE or DELETE affects zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownFilter is returned when a named filter is not declared for
	// the table.
	ErrUnknownFilter = errors.New("unknown filter")
)

// Low-level database operation errors. These wrap the driver error so that
// the PostgreSQL error code stays reachable through [errors.As].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT, or an INSERT with a
	// RETURNING clause, fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
