// Package presence decides which remote contacts already exist in the device
// address book by comparing normalized phone keys.
package presence

import (
	"github.com/MKhiriev/go-phonebook/internal/phone"
	"github.com/MKhiriev/go-phonebook/models"
)

// IndexDevice returns the set of normalized keys of every number of every
// device contact. Numbers without a usable key are skipped.
func IndexDevice(device []models.DeviceContact) map[string]struct{} {
	index := make(map[string]struct{}, len(device))
	for _, dc := range device {
		for _, n := range dc.PhoneNumbers {
			if key := phone.Normalize(n.Number); key != "" {
				index[key] = struct{}{}
			}
		}
	}
	return index
}

// ComputePresence maps the phone key of every remote contact to whether a
// device contact shares it. Contacts with an empty key are left out and so
// read as not present.
func ComputePresence(remote []models.Contact, device []models.DeviceContact) map[string]bool {
	index := IndexDevice(device)

	presence := make(map[string]bool, len(remote))
	for _, c := range remote {
		key := phone.Normalize(c.PhoneNumber)
		if key == "" {
			continue
		}
		_, ok := index[key]
		presence[key] = ok
	}
	return presence
}

// IsPresent looks up c in a mapping built by [ComputePresence].
func IsPresent(presence map[string]bool, c models.Contact) bool {
	key := phone.Normalize(c.PhoneNumber)
	return key != "" && presence[key]
}

// Tag returns a copy of remote with InDeviceContacts set from presence.
// A nil presence tags every contact as not present.
func Tag(remote []models.Contact, presence map[string]bool) []models.Contact {
	tagged := make([]models.Contact, len(remote))
	for i, c := range remote {
		c.InDeviceContacts = IsPresent(presence, c)
		tagged[i] = c
	}
	return tagged
}
