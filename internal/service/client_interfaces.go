package service

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientContactService is the reconciliation orchestrator. Every mutation
// writes to the remote store first and then mirrors the change into the
// device address book on a best-effort basis.
//
// The returned error reports the remote phase only ([ErrInvalidInput],
// [ErrUpload], [ErrNetwork], [ErrServer], [ErrContactNotFound]). The mirror
// phase is reported in [models.MutationResult] and never produces an error.
type ClientContactService interface {
	// Create validates req, uploads a local image if one is attached,
	// creates the remote record and, when req.SaveToDevice is set and no
	// device contact has the same phone key, adds it to the device.
	Create(ctx context.Context, req models.SaveRequest) (models.MutationResult, error)

	// Update is Create for an existing record (req.ID). When req.Previous
	// matches a device contact by its old phone key, that contact is updated
	// in place.
	Update(ctx context.Context, req models.SaveRequest) (models.MutationResult, error)

	// Delete removes the remote record and then the first device contact
	// sharing its phone key.
	Delete(ctx context.Context, contact models.Contact) (models.MutationResult, error)

	// Get returns the remote record with id, tagged with device presence.
	Get(ctx context.Context, id string) (models.Contact, error)
}

// ClientDirectoryService runs the fetch, match, index and search pipeline.
type ClientDirectoryService interface {
	// Fetch loads remote and device contacts concurrently and tags every
	// remote contact with its device presence. A device failure degrades to
	// "nothing present"; only a remote failure is returned.
	Fetch(ctx context.Context) ([]models.Contact, error)

	// Load is Fetch followed by filtering with query and sectioning.
	Load(ctx context.Context, query string) (models.DirectoryView, error)

	// View filters and sections an already fetched snapshot.
	View(contacts []models.Contact, query string) models.DirectoryView
}

// ClientHistoryService persists the search history. It satisfies
// search.HistoryPersister.
type ClientHistoryService interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, history []string) error
}

// ClientDeviceService gives direct access to the device address book.
type ClientDeviceService interface {
	List(ctx context.Context) ([]models.DeviceContact, error)
	Add(ctx context.Context, contact models.DeviceContact) (models.DeviceContact, error)
}
