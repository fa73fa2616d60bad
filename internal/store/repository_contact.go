package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository] over the "contacts" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures carry the request's
// trace id.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.PhoneNumber,
		&c.ProfileImageURL,
		&c.CreatedAt,
	)
	return c, err
}

// CreateContact inserts contact and returns the stored row.
// Returns [ErrContactAlreadyExists] on an id collision.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanContact(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.CreateContact").
			Str("id", contact.ID).
			Stringer("classification", r.classify(err)).
			Msg("failed to insert contact")
		if isUniqueViolation(err) {
			return models.Contact{}, fmt.Errorf("%w: %s", ErrContactAlreadyExists, contact.ID)
		}
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetContact returns the contact with id or [ErrContactNotFound].
func (r *contactRepository) GetContact(ctx context.Context, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContactQuery(ctx, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, fmt.Errorf("%w: %s", ErrContactNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.GetContact").
			Str("id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to select contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// ListContacts returns every contact ordered by creation time.
// Returns an empty slice when the table is empty.
func (r *contactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.ListContacts").
			Stringer("classification", r.classify(err)).
			Msg("failed to execute query for listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, 50)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "contactRepository.ListContacts").
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contactRepository.ListContacts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return contacts, nil
}

// UpdateContact replaces the writable fields of contact.ID and returns the
// stored row, or [ErrContactNotFound].
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanContact(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, fmt.Errorf("%w: %s", ErrContactNotFound, contact.ID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.UpdateContact").
			Str("id", contact.ID).
			Stringer("classification", r.classify(err)).
			Msg("failed to update contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteContact removes contact id or returns [ErrContactNotFound].
func (r *contactRepository) DeleteContact(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.DeleteContact").
			Str("id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to delete contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrContactNotFound, id)
	}

	return nil
}

func (r *contactRepository) classify(err error) ErrorClassification {
	if r.errorClassificator == nil {
		return NonRetryable
	}
	return r.errorClassificator.Classify(err)
}
