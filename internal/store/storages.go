package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages groups the repositories and the transactor sharing one database.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	Transactor     Transactor

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		Transactor:     db,
		db:             db,
	}
}

// Reset drops every table and recreates the schema.
func (s *Storages) Reset() error {
	return s.db.Reset()
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
