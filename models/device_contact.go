package models

import "time"

// DeviceContact is an entry of the local address book. It is not
// authoritative: the client re-queries the device store whenever presence
// has to be known and never caches it beyond one reconciliation pass.
type DeviceContact struct {
	// ID is the device-local identifier.
	ID string `json:"id"`

	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`

	// PhoneNumbers holds raw, non-normalized numbers. A device contact may
	// carry several of them.
	PhoneNumbers []DevicePhoneNumber `json:"phoneNumbers"`

	// Thumbnail is an optional image reference (local path or URL).
	Thumbnail string `json:"thumbnail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DevicePhoneNumber is a single labelled number of a [DeviceContact].
type DevicePhoneNumber struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// DefaultPhoneLabel is the label used for numbers mirrored from the remote
// store.
const DefaultPhoneLabel = "mobile"
