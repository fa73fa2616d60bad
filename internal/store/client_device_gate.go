package store

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

// deviceAccessGate stands in for the OS address book permission. When
// access is not granted every call fails with [ErrPermissionDenied] before
// touching the underlying repository.
type deviceAccessGate struct {
	repo    DeviceContactRepository
	granted bool
}

// NewDeviceAccessGate wraps repo with the permission check.
func NewDeviceAccessGate(repo DeviceContactRepository, granted bool) DeviceContactRepository {
	return &deviceAccessGate{repo: repo, granted: granted}
}

func (g *deviceAccessGate) ListAll(ctx context.Context) ([]models.DeviceContact, error) {
	if !g.granted {
		return nil, ErrPermissionDenied
	}
	return g.repo.ListAll(ctx)
}

func (g *deviceAccessGate) FindByPhoneKey(ctx context.Context, key string) ([]models.DeviceContact, error) {
	if !g.granted {
		return nil, ErrPermissionDenied
	}
	return g.repo.FindByPhoneKey(ctx, key)
}

func (g *deviceAccessGate) Add(ctx context.Context, contact models.DeviceContact) (models.DeviceContact, error) {
	if !g.granted {
		return models.DeviceContact{}, ErrPermissionDenied
	}
	return g.repo.Add(ctx, contact)
}

func (g *deviceAccessGate) Update(ctx context.Context, contact models.DeviceContact) error {
	if !g.granted {
		return ErrPermissionDenied
	}
	return g.repo.Update(ctx, contact)
}

func (g *deviceAccessGate) Delete(ctx context.Context, contact models.DeviceContact) error {
	if !g.granted {
		return ErrPermissionDenied
	}
	return g.repo.Delete(ctx, contact)
}
