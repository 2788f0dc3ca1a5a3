package store

import "errors"

// Sentinel errors returned by the settings store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedDSN is returned by [Open] when the DSN names neither a
	// PostgreSQL server nor a SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrSettingNotFound is returned when a delete targets a setting that
	// does not exist in the given scope.
	ErrSettingNotFound = errors.New("setting was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a settings row fails.
	ErrScanningRows = errors.New("failed to scan settings rows")
)
