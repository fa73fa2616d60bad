package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/phone"
	"github.com/MKhiriev/go-phonebook/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID requires a non-empty contact id (update, delete).
	FieldID = "id"

	// FieldNoID requires the id to be empty (create).
	FieldNoID = "no_id"

	FieldFirstName = "first_name"
	FieldLastName  = "last_name"

	// FieldPhoneNumber requires a number whose phone key is complete and
	// whose digits-only form fits the storage limit.
	FieldPhoneNumber = "phone_number"

	// FieldProfileImageURL requires the image to be empty or an absolute
	// http(s) URL. Local file references are only valid before upload.
	FieldProfileImageURL = "profile_image_url"
)

// ContactValidator implements [Validator] for contact records and the
// requests carrying them. Value and pointer forms are both accepted.
type ContactValidator struct {
}

// NewContactValidator constructs a new ContactValidator.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate dispatches on the dynamic type of obj:
//   - models.Contact: id is not checked unless requested
//   - models.ContactPayload: the writable fields
//   - models.SaveRequest: names and phone number of the payload
//
// Without fields, names and phone number are validated (plus the image URL
// for Contact and ContactPayload). Returns the first failure.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)

	case models.ContactPayload:
		return v.validateContact(ctx, models.Contact{
			FirstName:       value.FirstName,
			LastName:        value.LastName,
			PhoneNumber:     value.PhoneNumber,
			ProfileImageURL: value.ProfileImageURL,
		}, fields...)
	case *models.ContactPayload:
		return v.Validate(ctx, *value, fields...)

	case models.SaveRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateContact(_ context.Context, c models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldPhoneNumber, FieldProfileImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrInvalidID
			}
		case FieldNoID:
			if c.ID != "" {
				return ErrUnexpectedID
			}
		case FieldFirstName:
			if strings.TrimSpace(c.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(c.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldPhoneNumber:
			if err := validatePhoneNumber(c.PhoneNumber); err != nil {
				return err
			}
		case FieldProfileImageURL:
			if !isAbsoluteHTTPURL(c.ProfileImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSaveRequest checks a client-side save. The image is left alone:
// a local reference is uploaded later.
func (v *ContactValidator) validateSaveRequest(ctx context.Context, req models.SaveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldPhoneNumber}
	}

	return v.validateContact(ctx, models.Contact{
		ID:          req.ID,
		FirstName:   req.Payload.FirstName,
		LastName:    req.Payload.LastName,
		PhoneNumber: req.Payload.PhoneNumber,
	}, fields...)
}

func validatePhoneNumber(raw string) error {
	if !phone.IsComplete(raw) {
		return ErrInvalidPhoneNumber
	}
	if len(phone.Digits(raw)) > phone.MaxDigits {
		return ErrPhoneNumberTooLong
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
