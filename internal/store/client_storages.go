package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
)

// ClientStorages groups the client-side repositories: the device address
// book (behind the access gate) and the key-value store holding the search
// history. Both share one SQLite file.
type ClientStorages struct {
	DeviceContacts DeviceContactRepository
	KeyValue       KeyValueRepository

	db *DB
}

// NewClientStorages opens the SQLite database named in cfg.Device.DSN,
// creating it if needed, and runs the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Device, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DeviceContacts: NewDeviceAccessGate(NewDeviceContactRepository(db, logger), cfg.Device.AccessGranted),
		KeyValue:       NewKeyValueRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
