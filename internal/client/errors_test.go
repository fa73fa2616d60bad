package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "invalid input",
			err:  fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrEmptyLastName),
			want: "Invalid contact: last name is required",
		},
		{name: "upload", err: fmt.Errorf("%w: timeout", service.ErrUpload), want: "The profile image could not be uploaded. Nothing was saved."},
		{name: "network", err: service.ErrNetwork, want: "The contact server is unreachable. Check your connection and try again."},
		{name: "not found", err: fmt.Errorf("%w: %w", service.ErrServer, service.ErrContactNotFound), want: "The contact no longer exists. Refresh the list and try again."},
		{name: "server", err: service.ErrServer, want: "The contact server rejected the request. Try again later."},
		{name: "permission", err: store.ErrPermissionDenied, want: "Access to the device address book is not granted."},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestMirrorMessage(t *testing.T) {
	assert.Equal(t, "unknown error", mirrorMessage(nil))
	assert.Equal(t, "access not granted", mirrorMessage(fmt.Errorf("wrap: %w", store.ErrPermissionDenied)))
	assert.Equal(t, "io", mirrorMessage(errors.New("io")))
}
