package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName     = errors.New("first name is required")
	ErrEmptyLastName      = errors.New("last name is required")
	ErrInvalidPhoneNumber = errors.New("phone number must have at least 10 significant digits")
	ErrPhoneNumberTooLong = errors.New("phone number is too long")
	ErrInvalidID          = errors.New("contact id is required")
	ErrUnexpectedID       = errors.New("contact id must be empty on create")
	ErrInvalidImageURL    = errors.New("profile image must be an absolute http(s) url")
)
