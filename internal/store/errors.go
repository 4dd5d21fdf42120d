package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new agent
	// fails because an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrAgentNotFound is returned when a lookup expected to match exactly
	// one agent account produces an empty result set.
	ErrAgentNotFound = errors.New("no agent was found")

	// ErrClientNotFound is returned when a delete targets a client record
	// (identified by id and owner username) that does not exist. It covers
	// both a genuinely absent id and an id owned by a different agent; the
	// two cases are deliberately indistinguishable to the caller.
	ErrClientNotFound = errors.New("client record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan client record row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan client record rows")
)
