package store

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DeviceContactRepository is the local device address book.
// Every error wraps [ErrPermissionDenied] or [ErrDeviceStore].
type DeviceContactRepository interface {
	ListAll(ctx context.Context) ([]models.DeviceContact, error)
	// FindByPhoneKey returns the device contacts having at least one number
	// that normalizes to key, in creation order. An empty key matches
	// nothing.
	FindByPhoneKey(ctx context.Context, key string) ([]models.DeviceContact, error)
	// Add stores contact and returns it with its assigned id.
	Add(ctx context.Context, contact models.DeviceContact) (models.DeviceContact, error)
	Update(ctx context.Context, contact models.DeviceContact) error
	Delete(ctx context.Context, contact models.DeviceContact) error
}

// KeyValueRepository is a small persisted string map.
// Every error wraps [ErrPersistence].
type KeyValueRepository interface {
	// Get returns the value of key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
