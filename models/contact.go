package models

import (
	"strings"
	"time"
)

// Contact is a directory record owned by the remote contact store.
// The remote store is authoritative; the client only keeps a read-through
// copy for the duration of one fetch cycle.
type Contact struct {
	// ID is the opaque identifier assigned by the remote store.
	// It is empty until the record has been persisted remotely.
	ID string `json:"id"`

	// FirstName and LastName are both required (non-empty after trim)
	// for a record to be valid.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// PhoneNumber is stored in digits-only form.
	PhoneNumber string `json:"phoneNumber"`

	// ProfileImageURL is an absolute URL or an empty string.
	ProfileImageURL string `json:"profileImageUrl"`

	// CreatedAt is set by the remote store on creation.
	CreatedAt time.Time `json:"createdAt"`

	// InDeviceContacts reports whether a device contact shares this
	// contact's phone key. It is derived on every fetch and never sent
	// over the wire.
	InDeviceContacts bool `json:"-"`
}

// FullName returns the lowercased, trimmed "{firstName} {lastName}" string
// used for both search matching and in-section ordering.
func (c Contact) FullName() string {
	return strings.ToLower(strings.TrimSpace(c.FirstName + " " + c.LastName))
}

// DisplayName returns the contact's name as entered, without case folding.
func (c Contact) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Initials returns up to two upper-cased initials, used by list renderers.
func (c Contact) Initials() string {
	var b strings.Builder
	for _, part := range []string{c.FirstName, c.LastName} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

// ContactPayload is the writable subset of [Contact] sent on create and
// update.
type ContactPayload struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// Payload extracts the writable fields of c.
func (c Contact) Payload() ContactPayload {
	return ContactPayload{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		PhoneNumber:     c.PhoneNumber,
		ProfileImageURL: c.ProfileImageURL,
	}
}

// IsRemoteImage reports whether ref already points at an uploaded image
// (an http or https URL) rather than a local file reference.
func IsRemoteImage(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
