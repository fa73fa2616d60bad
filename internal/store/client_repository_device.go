package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/phone"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

type deviceContactRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewDeviceContactRepository constructs the SQLite implementation of
// [DeviceContactRepository]. Each phone number is stored next to its
// normalized key so lookups by key use an index.
func NewDeviceContactRepository(db *DB, logger *logger.Logger) DeviceContactRepository {
	return &deviceContactRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (d *deviceContactRepository) ListAll(ctx context.Context) ([]models.DeviceContact, error) {
	return d.query(ctx, "deviceContactRepository.ListAll", listAllDeviceContacts)
}

func (d *deviceContactRepository) FindByPhoneKey(ctx context.Context, key string) ([]models.DeviceContact, error) {
	if key == "" {
		return []models.DeviceContact{}, nil
	}
	return d.query(ctx, "deviceContactRepository.FindByPhoneKey", findDeviceContactsByPhoneKey, key)
}

func (d *deviceContactRepository) Add(ctx context.Context, contact models.DeviceContact) (models.DeviceContact, error) {
	log := logger.FromContext(ctx)

	if contact.ID == "" {
		contact.ID = d.ids.Generate()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = d.now()
	}

	err := d.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertDeviceContact,
			contact.ID,
			contact.GivenName,
			contact.FamilyName,
			contact.Thumbnail,
			contact.CreatedAt,
		); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return insertPhones(ctx, tx, contact)
	})
	if err != nil {
		log.Err(err).
			Str("func", "deviceContactRepository.Add").
			Str("id", contact.ID).
			Msg("failed to add device contact")
		return models.DeviceContact{}, fmt.Errorf("%w: %w", ErrDeviceStore, err)
	}

	return contact, nil
}

func (d *deviceContactRepository) Update(ctx context.Context, contact models.DeviceContact) error {
	log := logger.FromContext(ctx)

	err := d.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateDeviceContact,
			contact.GivenName,
			contact.FamilyName,
			contact.Thumbnail,
			contact.ID,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = requireAffected(result, contact.ID); err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, deleteDeviceContactPhones, contact.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return insertPhones(ctx, tx, contact)
	})
	if err != nil {
		log.Err(err).
			Str("func", "deviceContactRepository.Update").
			Str("id", contact.ID).
			Msg("failed to update device contact")
		return fmt.Errorf("%w: %w", ErrDeviceStore, err)
	}

	return nil
}

func (d *deviceContactRepository) Delete(ctx context.Context, contact models.DeviceContact) error {
	log := logger.FromContext(ctx)

	err := d.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteDeviceContactPhones, contact.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, deleteDeviceContact, contact.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return requireAffected(result, contact.ID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "deviceContactRepository.Delete").
			Str("id", contact.ID).
			Msg("failed to delete device contact")
		return fmt.Errorf("%w: %w", ErrDeviceStore, err)
	}

	return nil
}

// query runs a contact/phone join and folds consecutive rows of one contact
// into a single [models.DeviceContact].
func (d *deviceContactRepository) query(ctx context.Context, fn, query string, args ...any) ([]models.DeviceContact, error) {
	log := logger.FromContext(ctx)

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query device contacts")
		return nil, fmt.Errorf("%w: %w: %w", ErrDeviceStore, ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.DeviceContact, 0, 16)
	for rows.Next() {
		var (
			c      models.DeviceContact
			label  sql.NullString
			number sql.NullString
		)
		if err = rows.Scan(&c.ID, &c.GivenName, &c.FamilyName, &c.Thumbnail, &c.CreatedAt, &label, &number); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan device contact row")
			return nil, fmt.Errorf("%w: %w: %w", ErrDeviceStore, ErrScanningRow, err)
		}

		if n := len(contacts); n == 0 || contacts[n-1].ID != c.ID {
			c.PhoneNumbers = []models.DevicePhoneNumber{}
			contacts = append(contacts, c)
		}
		if number.Valid {
			last := &contacts[len(contacts)-1]
			last.PhoneNumbers = append(last.PhoneNumbers, models.DevicePhoneNumber{Label: label.String, Number: number.String})
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrDeviceStore, ErrScanningRows, err)
	}

	return contacts, nil
}

func (d *deviceContactRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func insertPhones(ctx context.Context, tx *sql.Tx, contact models.DeviceContact) error {
	for i, n := range contact.PhoneNumbers {
		label := n.Label
		if label == "" {
			label = models.DefaultPhoneLabel
		}
		if _, err := tx.ExecContext(ctx, insertDeviceContactPhone,
			contact.ID,
			i,
			label,
			n.Number,
			phone.Normalize(n.Number),
		); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func requireAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrDeviceContactNotFound, id)
	}
	return nil
}
