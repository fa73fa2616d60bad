package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
)

// Storages groups the server-side storage backends.
type Storages struct {
	ContactRepository ContactRepository
	ImageStorage      ImageStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and prepares the
// image directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageFileStorage(cfg.Files, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		ContactRepository: NewContactRepository(db, logger),
		ImageStorage:      images,
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
