package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/validators"
	"github.com/MKhiriev/go-phonebook/models"
)

// ContactValidationService checks every request with the same validity
// rules the client applies before delegating to the wrapped service.
// Failures wrap [ErrInvalidInput].
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) CreateContact(ctx context.Context, payload models.ContactPayload) (models.Contact, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return v.inner.CreateContact(ctx, payload)
}

func (v *ContactValidationService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Contact{}, err
	}
	return v.inner.GetContact(ctx, id)
}

func (v *ContactValidationService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return v.inner.ListContacts(ctx)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, id string, payload models.ContactPayload) (models.Contact, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Contact{}, err
	}
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return v.inner.UpdateContact(ctx, id, payload)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, id string) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}
	return v.inner.DeleteContact(ctx, id)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}

func (v *ContactValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Contact{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
