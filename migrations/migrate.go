// Package migrations holds the embedded database schema and applies it with
// goose. Every supported SQL dialect has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect names a supported SQL dialect. The value is the goose dialect name.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

var ErrUnknownDialect = errors.New("unknown dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of the dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	return run(db, dialect, goose.Up)
}

// Reset rolls back every applied migration and applies them again,
// leaving an empty, current schema.
func Reset(db *sql.DB, dialect Dialect) error {
	if err := run(db, dialect, goose.Reset); err != nil {
		return err
	}
	return Migrate(db, dialect)
}

func run(db *sql.DB, dialect Dialect, command func(*sql.DB, string, ...goose.OptionsFunc) error) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := dialect.dir()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := command(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func (d Dialect) dir() (string, error) {
	switch d {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
	}
}
