package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

var (
	ErrUnknownHistoryEntry = errors.New("no such history entry")
	ErrInvalidPhoneFlag    = errors.New("phone must be label:number or number")
)

// userMessages holds the text shown for the service errors. The wrapped
// cause is appended for invalid input only.
var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrUpload, "The profile image could not be uploaded. Nothing was saved."},
	{service.ErrNetwork, "The contact server is unreachable. Check your connection and try again."},
	{service.ErrContactNotFound, "The contact no longer exists. Refresh the list and try again."},
	{service.ErrServer, "The contact server rejected the request. Try again later."},
	{store.ErrPermissionDenied, "Access to the device address book is not granted."},
}

// UserMessage converts err into the message printed by the CLI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return "Invalid contact: " + strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return err.Error()
}

func mirrorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	if errors.Is(err, store.ErrPermissionDenied) {
		return "access not granted"
	}
	return err.Error()
}
