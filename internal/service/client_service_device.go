package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

type clientDeviceService struct {
	device store.DeviceContactRepository

	logger *logger.Logger
}

func NewClientDeviceService(device store.DeviceContactRepository, logger *logger.Logger) ClientDeviceService {
	return &clientDeviceService{device: device, logger: logger}
}

func (s *clientDeviceService) List(ctx context.Context) ([]models.DeviceContact, error) {
	ctx, _ = withTrace(ctx, s.logger, "device_list")
	return s.device.ListAll(ctx)
}

// Add stores a device contact as typed; numbers keep their raw form.
func (s *clientDeviceService) Add(ctx context.Context, contact models.DeviceContact) (models.DeviceContact, error) {
	ctx, _ = withTrace(ctx, s.logger, "device_add")

	contact.GivenName = strings.TrimSpace(contact.GivenName)
	contact.FamilyName = strings.TrimSpace(contact.FamilyName)

	return s.device.Add(ctx, contact)
}
