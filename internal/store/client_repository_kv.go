package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/logger"
)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs the SQLite implementation of
// [KeyValueRepository] over the "kv_store" table.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
	}
}

func (k *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.DB.QueryRowContext(ctx, getKeyValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", false, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (k *keyValueRepository) Set(ctx context.Context, key, value string) error {
	if _, err := k.DB.ExecContext(ctx, setKeyValue, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueRepository.Set").
			Str("key", key).
			Msg("failed to write value")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingStatement, err)
	}

	return nil
}
