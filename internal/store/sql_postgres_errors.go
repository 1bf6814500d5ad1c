package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassificator maps driver specific errors to the constraint classes
// [ErrUniqueViolation] and [ErrForeignKeyViolation]. Classify returns nil
// for every other error.
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html (class 23).
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ErrForeignKeyViolation
	}

	return nil
}
