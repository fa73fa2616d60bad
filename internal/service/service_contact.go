package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/metrics"
	"github.com/MKhiriev/go-phonebook/internal/phone"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	ids               *utils.UUIDGenerator
	metrics           *metrics.Metrics

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, metrics *metrics.Metrics, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		ids:               utils.NewUUIDGenerator(),
		metrics:           metrics,
		logger:            logger,
	}
}

func (c *contactService) CreateContact(ctx context.Context, payload models.ContactPayload) (models.Contact, error) {
	contact := normalizeContact(models.Contact{ID: c.ids.Generate()}, payload)

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, err
	}
	c.metrics.IncrementContactsCreated()

	return created, nil
}

func (c *contactService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	return c.contactRepository.GetContact(ctx, id)
}

func (c *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return c.contactRepository.ListContacts(ctx)
}

func (c *contactService) UpdateContact(ctx context.Context, id string, payload models.ContactPayload) (models.Contact, error) {
	updated, err := c.contactRepository.UpdateContact(ctx, normalizeContact(models.Contact{ID: id}, payload))
	if err != nil {
		return models.Contact{}, err
	}
	c.metrics.IncrementContactsUpdated()

	return updated, nil
}

func (c *contactService) DeleteContact(ctx context.Context, id string) error {
	if err := c.contactRepository.DeleteContact(ctx, id); err != nil {
		return err
	}
	c.metrics.IncrementContactsDeleted()

	return nil
}

// normalizeContact applies the storage form: trimmed names, digits-only
// phone number.
func normalizeContact(c models.Contact, payload models.ContactPayload) models.Contact {
	c.FirstName = strings.TrimSpace(payload.FirstName)
	c.LastName = strings.TrimSpace(payload.LastName)
	c.PhoneNumber = phone.Digits(payload.PhoneNumber)
	c.ProfileImageURL = strings.TrimSpace(payload.ProfileImageURL)
	return c
}
