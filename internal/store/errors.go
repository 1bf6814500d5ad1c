package store

import (
	"errors"
	"fmt"
)

// Constraint classes reported by an [ErrorClassificator]. Repositories
// translate them into the domain sentinels below.
var (
	// ErrNotFound is returned when a queried row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUniqueViolation is returned when a write breaks a UNIQUE constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation is returned when a write references a missing row.
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrUsernameAlreadyExists is returned when a user insert or update
	// collides with an existing username.
	ErrUsernameAlreadyExists = fmt.Errorf("username already exists: %w", ErrUniqueViolation)

	// ErrPostNotFound is returned when no post matches the given id.
	ErrPostNotFound = fmt.Errorf("post %w", ErrNotFound)

	// ErrAuthorNotFound is returned when a post references a user that does
	// not exist.
	ErrAuthorNotFound = fmt.Errorf("author %w: %w", ErrNotFound, ErrForeignKeyViolation)
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned for a database driver the store
	// cannot connect with.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
