package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/mock"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

func TestClientDeviceService_Add_TrimsNames(t *testing.T) {
	device := mock.NewMockDeviceContactRepository(gomock.NewController(t))
	svc := service.NewClientDeviceService(device, logger.Nop())

	in := models.DeviceContact{
		GivenName:    "  Ada ",
		FamilyName:   " Lovelace",
		PhoneNumbers: []models.DevicePhoneNumber{{Label: "home", Number: "+44 20 7946 0000"}},
	}
	want := models.DeviceContact{
		GivenName:    "Ada",
		FamilyName:   "Lovelace",
		PhoneNumbers: []models.DevicePhoneNumber{{Label: "home", Number: "+44 20 7946 0000"}},
	}

	device.EXPECT().Add(gomock.Any(), want).DoAndReturn(func(_ context.Context, dc models.DeviceContact) (models.DeviceContact, error) {
		dc.ID = "d-1"
		return dc, nil
	})

	got, err := svc.Add(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "d-1", got.ID)
	assert.Equal(t, "Ada", got.GivenName)
}

func TestClientDeviceService_List(t *testing.T) {
	device := mock.NewMockDeviceContactRepository(gomock.NewController(t))
	svc := service.NewClientDeviceService(device, logger.Nop())

	device.EXPECT().ListAll(gomock.Any()).Return(nil, store.ErrPermissionDenied)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, store.ErrPermissionDenied)
}
