package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

func TestDeviceList(t *testing.T) {
	ta := newTestApp(t)
	ta.device.EXPECT().List(gomock.Any()).Return([]models.DeviceContact{{
		ID:           "d-1",
		GivenName:    "Ada",
		FamilyName:   "Lovelace",
		PhoneNumbers: []models.DevicePhoneNumber{{Label: "home", Number: "555 123 4567"}},
	}}, nil)

	require.NoError(t, ta.run("device", "list"))

	assert.Contains(t, ta.out.String(), "Ada Lovelace")
	assert.Contains(t, ta.out.String(), "home:555 123 4567")
}

func TestDeviceList_PermissionDenied(t *testing.T) {
	ta := newTestApp(t)
	ta.device.EXPECT().List(gomock.Any()).Return(nil, store.ErrPermissionDenied)

	err := ta.run("device", "list")

	assert.ErrorIs(t, err, store.ErrPermissionDenied)
}

func TestDeviceAdd(t *testing.T) {
	ta := newTestApp(t)
	want := models.DeviceContact{
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		PhoneNumbers: []models.DevicePhoneNumber{
			{Label: "work", Number: "5551234567"},
			{Label: models.DefaultPhoneLabel, Number: "+44 20 7946 0000"},
		},
	}
	created := want
	created.ID = "d-9"
	ta.device.EXPECT().Add(gomock.Any(), want).Return(created, nil)

	require.NoError(t, ta.run("device", "add",
		"--first", "Ada", "--last", "Lovelace",
		"--phone", "work:5551234567", "--phone", "+44 20 7946 0000",
	))

	assert.Contains(t, ta.out.String(), "d-9")
}

func TestParsePhoneFlags(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []models.DevicePhoneNumber
		wantErr bool
	}{
		{name: "none", in: nil, want: []models.DevicePhoneNumber{}},
		{name: "labelled", in: []string{" home : 123 "}, want: []models.DevicePhoneNumber{{Label: "home", Number: "123"}}},
		{name: "unlabelled", in: []string{"123"}, want: []models.DevicePhoneNumber{{Label: models.DefaultPhoneLabel, Number: "123"}}},
		{name: "empty number", in: []string{"home:"}, wantErr: true},
		{name: "empty label", in: []string{":123"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePhoneFlags(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhoneFlag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
