package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContactService manages contact records on the server.
type ContactService interface {
	CreateContact(ctx context.Context, payload models.ContactPayload) (models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContact(ctx context.Context, id string, payload models.ContactPayload) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// ImageService stores uploaded profile images and serves them back.
type ImageService interface {
	// SaveImage stores r and returns the absolute URL it is served from.
	SaveImage(ctx context.Context, contentType string, r io.Reader) (string, error)
	// OpenImage returns a stored image; the caller closes it.
	OpenImage(ctx context.Context, name string) (io.ReadSeekCloser, error)
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
