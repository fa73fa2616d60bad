package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ContactRepository persists contact records on the server.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ImageStorage keeps uploaded profile images.
type ImageStorage interface {
	// Save stores the content of r under name and returns the number of
	// bytes written.
	Save(ctx context.Context, name string, r io.Reader) (int64, error)
	// Open returns the stored image; the caller closes it.
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
}
